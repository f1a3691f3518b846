package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/internet-kid/notes-api/internal/storage"
)

var ErrUnsupportedImageType = errors.New("unsupported image type")

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// UploadService stores uploaded images under random object keys.
type UploadService struct {
	uploader storage.Uploader
}

// NewUploadService creates a new UploadService
func NewUploadService(uploader storage.Uploader) *UploadService {
	return &UploadService{uploader: uploader}
}

// UploadImage validates the file extension, stores the payload under a
// random key, and returns the public file location.
func (s *UploadService) UploadImage(ctx context.Context, filename string, body io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return "", ErrUnsupportedImageType
	}

	key := uuid.NewString() + ext

	location, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return location, nil
}
