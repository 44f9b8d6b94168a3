package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveService handles Google Drive API operations
type DriveService struct {
	client   *drive.Service
	folderID string
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
// folderID is the Drive folder product images are uploaded into
func NewDriveService(ctx context.Context, credentialsPath, folderID string) (*DriveService, error) {
	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client:   driveService,
		folderID: folderID,
	}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// UploadImage uploads a JPEG into the configured folder and shares it with anyone holding the link
func (ds *DriveService) UploadImage(ctx context.Context, fileName string, data []byte) (string, string, error) {
	file := &drive.File{
		Name:     fileName,
		MimeType: "image/jpeg",
	}
	if ds.folderID != "" {
		file.Parents = []string{ds.folderID}
	}

	created, err := ds.client.Files.Create(file).
		Media(bytes.NewReader(data)).
		Fields("id, name").
		Context(ctx).
		Do()
	if err != nil {
		return "", "", fmt.Errorf("failed to upload file: %w", err)
	}

	permission := &drive.Permission{Type: "anyone", Role: "reader"}
	if _, err := ds.client.Permissions.Create(created.Id, permission).Context(ctx).Do(); err != nil {
		return "", "", fmt.Errorf("failed to share file %s: %w", created.Id, err)
	}

	imageURL := fmt.Sprintf("https://drive.google.com/uc?id=%s", created.Id)
	log.Printf("✓ Uploaded %s to Drive: id=%s", fileName, created.Id)
	return created.Id, imageURL, nil
}
