package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveService stores logos in a Google Drive folder
type DriveService struct {
	client   *drive.Service
	folderID string
}

// NewDriveService creates a new DriveService instance.
// credentialsPath should be the path to the Service Account JSON file.
func NewDriveService(ctx context.Context, credentialsPath string, folderID string) (*DriveService, error) {
	// option.WithCredentialsFile handles Service Account authentication
	driveService, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(drive.DriveFileScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client:   driveService,
		folderID: folderID,
	}, nil
}

// Ensure DriveService implements LogoStore
var _ LogoStore = (*DriveService)(nil)

// Save uploads a JPEG logo into the folder, shares it with anyone holding the link
// and returns its public URL
func (ds *DriveService) Save(ctx context.Context, name string, data []byte) (string, error) {
	file := &drive.File{
		Name:     name,
		MimeType: "image/jpeg",
		Parents:  []string{ds.folderID},
	}

	created, err := ds.client.Files.Create(file).
		Media(bytes.NewReader(data)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		log.Printf("❌ Drive upload failed for %s: %v", name, err)
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}

	_, err = ds.client.Permissions.Create(created.Id, &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}).Context(ctx).Do()
	if err != nil {
		log.Printf("❌ Drive permission failed for %s: %v", created.Id, err)
		return "", fmt.Errorf("failed to share logo: %w", err)
	}

	log.Printf("✓ Uploaded logo %s to Drive (id=%s)", name, created.Id)
	return fmt.Sprintf("https://drive.google.com/uc?id=%s", created.Id), nil
}
