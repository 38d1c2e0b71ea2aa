package storage

import (
	"context"
	"io"
)

// Store holds uploaded product images. Save returns the public URL the
// image will be served from; Remove takes that same URL back.
type Store interface {
	Save(ctx context.Context, filename string, contentType string, r io.Reader) (string, error)
	Remove(ctx context.Context, publicURL string) error
}
