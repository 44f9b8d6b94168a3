package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"pizzaria-storefront/models"
	"pizzaria-storefront/utils"
)

// UploadService turns admin image uploads into hosted product image URLs
type UploadService struct {
	drive DriveServiceInterface
	now   func() time.Time
}

// NewUploadService creates a new UploadService
func NewUploadService(drive DriveServiceInterface) *UploadService {
	return &UploadService{drive: drive, now: time.Now}
}

// UploadProductImage validates the file name, re-encodes the image and uploads it
func (s *UploadService) UploadProductImage(ctx context.Context, originalName string, data []byte) (*models.ImageUploadResponse, error) {
	fileName, err := utils.BuildImageFileName(originalName, s.now())
	if err != nil {
		return nil, err
	}

	optimized, err := OptimizeImage(data, ImageSizeProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to process image: %w", err)
	}

	fileID, url, err := s.drive.UploadImage(ctx, fileName, optimized)
	if err != nil {
		log.Printf("❌ UploadProductImage: Drive upload failed for %s: %v", fileName, err)
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	log.Printf("✅ UploadProductImage: %s -> %s (%d bytes)", originalName, fileID, len(optimized))
	return &models.ImageUploadResponse{URL: url, FileID: fileID, Size: len(optimized)}, nil
}
