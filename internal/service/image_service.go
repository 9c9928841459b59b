package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"go-blog/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// ImageService validates uploaded post images and hands them to an ImageStore.
type ImageService struct {
	store   ImageStore
	maxSize int64
}

func NewImageService(store ImageStore, maxSize int64) *ImageService {
	if maxSize <= 0 {
		maxSize = 5 * 1024 * 1024
	}
	return &ImageService{store: store, maxSize: maxSize}
}

// Store saves file under posts/ and returns its key.
func (s *ImageService) Store(ctx context.Context, file *multipart.FileHeader, userID uint) (string, error) {
	if file.Size > s.maxSize {
		return "", fmt.Errorf("%w: max size is %d KB", ErrImageTooLarge, s.maxSize/1024)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	mime, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("failed to detect image type: %w", err)
	}
	if !mimetype.EqualsAny(mime.String(), allowedImageTypes...) {
		return "", ErrImageType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	key := "posts/" + uuid.NewString() + mime.Extension()
	if err := s.store.Save(ctx, key, mime.String(), src); err != nil {
		return "", err
	}

	logger.L.Info("Image stored",
		zap.String("key", key),
		zap.String("name", file.Filename),
		zap.String("mimeType", mime.String()),
		zap.Int64("size", file.Size),
		zap.Uint("userID", userID))
	return key, nil
}

// Discard removes an image that was stored for a write that did not happen.
func (s *ImageService) Discard(ctx context.Context, key string) {
	if s == nil || key == "" {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		logger.L.Warn("Failed to discard image", zap.String("key", key), zap.Error(err))
	}
}

func (s *ImageService) URL(key string) string {
	return s.store.URL(key)
}
