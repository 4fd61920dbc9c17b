package service

import (
	"context"
	"io"
)

type Uploader interface {
	// UploadRaw stores a non-media file and returns its secure URL.
	UploadRaw(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
}
