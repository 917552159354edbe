package storage

import (
	"context"
	"mime/multipart"
)

// StorageService defines the interface for media storage operations.
type StorageService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
}
