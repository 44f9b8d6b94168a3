package service

import "context"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	// UploadImage stores a JPEG publicly readable and returns its file id and public URL
	UploadImage(ctx context.Context, fileName string, data []byte) (fileID string, url string, err error)
}
