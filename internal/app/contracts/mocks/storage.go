package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

type AttachmentStorage struct {
	mock.Mock
}

func (m *AttachmentStorage) Upload(ctx context.Context, objectKey string, file io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, objectKey, file, size, contentType)
	return args.Error(0)
}

func (m *AttachmentStorage) PresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiry)
	return args.String(0), args.Error(1)
}
