package ports

import (
	"context"
	"io"
)

type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ImageStore persists a workshop image and returns its stable public URL.
type ImageStore interface {
	Upload(ctx context.Context, folder string, img ImageUpload) (string, error)
}
