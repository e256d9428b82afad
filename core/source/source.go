package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"peerdiff/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
)

// S3Scheme prefixes identifiers that live in object storage.
const S3Scheme = "s3://"

// ErrUnreadable is returned when a source cannot be opened or read.
var ErrUnreadable = errors.New("source unreadable")

// Reader reads router configuration text from local files or object storage.
type Reader struct {
	fs     afero.Fs
	client storage.Client
}

// NewReader creates a Reader. client may be nil when no s3:// sources are used.
func NewReader(fs afero.Fs, client storage.Client) *Reader {
	return &Reader{fs: fs, client: client}
}

// Read returns the full text behind id.
//
// Local identifiers are file paths. Identifiers of the form s3://bucket/key read a
// single object; s3://bucket/prefix/ (trailing slash) concatenates every object
// under the prefix in key order.
func (r *Reader) Read(ctx context.Context, id string) (string, error) {
	if strings.HasPrefix(id, S3Scheme) {
		return r.readObject(ctx, id)
	}

	data, err := afero.ReadFile(r.fs, id)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, id, err)
	}
	return string(data), nil
}

func (r *Reader) readObject(ctx context.Context, id string) (string, error) {
	if r.client == nil {
		return "", fmt.Errorf("%w: %s: object storage is not configured", ErrUnreadable, id)
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(id, S3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return "", fmt.Errorf("%w: %s: expected s3://bucket/key", ErrUnreadable, id)
	}

	if !strings.HasSuffix(key, "/") {
		return r.getObject(ctx, bucket, key)
	}

	// Cancelling on return stops the listing when it is abandoned early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var sb strings.Builder
	for obj := range r.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: key, Recursive: true}) {
		if obj.Err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrUnreadable, id, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		text, err := r.getObject(ctx, bucket, obj.Key)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

func (r *Reader) getObject(ctx context.Context, bucket, key string) (string, error) {
	obj, err := r.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("%w: s3://%s/%s: %v", ErrUnreadable, bucket, key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("%w: s3://%s/%s: %v", ErrUnreadable, bucket, key, err)
	}
	return string(data), nil
}
