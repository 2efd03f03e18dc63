package media

import (
	"context"
	"io"
)

// Service resolves a source video to a local file. The returned cleanup
// func removes the file and must be called once the request is done with
// it.
type Service interface {
	FromURL(ctx context.Context, rawURL string) (string, func(), error)
	FromUpload(ctx context.Context, name string, r io.Reader) (string, func(), error)
}
