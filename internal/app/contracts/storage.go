package contracts

import (
	"context"
	"io"
	"time"
)

type AttachmentStorage interface {
	Upload(ctx context.Context, objectKey string, file io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
}
