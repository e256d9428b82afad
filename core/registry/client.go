package registry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os/exec"
	"time"
)

// DefaultPort is the well-known whois port.
const DefaultPort = "43"

// maxResponse caps a single whois answer.
const maxResponse = 8 << 20

// ErrLookup is returned when the registry cannot be reached or does not answer.
var ErrLookup = errors.New("registry lookup failed")

// Client retrieves raw registry text for a query such as "AS64500".
type Client interface {
	Query(ctx context.Context, target, server string) (string, error)
}

// New returns the client selected by cfg.Mode.
func New(cfg Config) (Client, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	switch cfg.Mode {
	case ModeTCP, "":
		return &WhoisClient{Timeout: timeout}, nil
	case ModeExec:
		return &CommandClient{Bin: cfg.WhoisBin, Timeout: timeout}, nil
	default:
		return nil, fmt.Errorf("unknown registry mode: %s", cfg.Mode)
	}
}

// WhoisClient speaks the whois protocol (RFC 3912) directly.
type WhoisClient struct {
	// Timeout bounds a single query, zero means no bound besides ctx.
	Timeout time.Duration
	// Dialer is used to open connections; nil uses a default net.Dialer.
	Dialer Dialer
}

// Dialer opens network connections.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Query sends target to server and returns everything the server writes before closing.
func (c *WhoisClient) Query(ctx context.Context, target, server string) (string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	address := server
	if _, _, err := net.SplitHostPort(server); err != nil {
		address = net.JoinHostPort(server, DefaultPort)
	}

	var dialer Dialer = &net.Dialer{}
	if c.Dialer != nil {
		dialer = c.Dialer
	}

	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return "", fmt.Errorf("%w: dial %s: %v", ErrLookup, address, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := io.WriteString(conn, target+"\r\n"); err != nil {
		return "", fmt.Errorf("%w: write query: %v", ErrLookup, err)
	}

	body, err := io.ReadAll(io.LimitReader(conn, maxResponse))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrLookup, err)
	}

	return string(body), nil
}

// CommandClient runs an external whois binary as `<bin> -h <server> <target>`.
type CommandClient struct {
	Bin     string
	Timeout time.Duration
}

// Query runs the whois binary and returns its standard output.
func (c *CommandClient) Query(ctx context.Context, target, server string) (string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Bin, "-h", server, target)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s -h %s %s: %v: %s", ErrLookup, c.Bin, server, target, err, bytes.TrimSpace(stderr.Bytes()))
	}

	return stdout.String(), nil
}
