// Package fetcher defines the interface for retrieving pages and binary
// resources over HTTP. Implement the Fetcher interface to supply custom
// transports with specific authentication or proxying requirements.
package fetcher

import (
	"context"
	"fmt"
)

// Fetcher abstracts HTTP retrieval.
type Fetcher interface {
	// Text retrieves a resource and returns its body as a string.
	Text(ctx context.Context, url string) (string, error)

	// Binary retrieves a resource and returns its raw bytes along with the
	// Content-Type response header.
	Binary(ctx context.Context, url string) ([]byte, string, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// TransportError indicates the server answered with a non-success status.
// Check with errors.As.
type TransportError struct {
	Status     int
	StatusText string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("HTTP %d %s", e.Status, e.StatusText)
}
