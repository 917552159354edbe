package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"devmitra/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// maxImageSize caps uploads at 5 MB.
const maxImageSize = 5 << 20

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService creates a new CloudinaryStorageService.
func NewCloudinaryStorageService(cloudName, apiKey, apiSecret string) (*CloudinaryStorageService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

// UploadImage uploads an image to Cloudinary into the given folder and
// returns the secure delivery URL. Only image content types up to 5 MB are
// accepted.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if file == nil {
		return "", utils.NewValidationError("file is required")
	}
	if file.Size > maxImageSize {
		return "", utils.NewValidationError("file exceeds the 5MB limit")
	}
	if ct := file.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return "", utils.NewValidationError("only image uploads are allowed")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	result, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no URL returned for upload")
	}
	return result.SecureURL, nil
}
