// Package storage provides access to S3-compatible object storage.
//
// Router configurations are often collected into a bucket by a config-backup job
// rather than read from the router's own filesystem. This package wraps the MinIO
// Go client so such objects can be used as router-config sources.
//
// # Client Interface
//
// The Client interface abstracts the provider, making it easy to mock storage
// interactions in unit tests (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the bucket.
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	obj, err := client.GetObject(ctx, "configs", "edge1/bgpd.conf", minio.GetObjectOptions{})
package storage
