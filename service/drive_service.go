package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveService handles Google Drive API operations
type DriveService struct {
	client *drive.Service
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath string) (*DriveService, error) {
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

var imageMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/gif":  true,
}

// DownloadImage downloads the content of an image file stored in Drive
func (ds *DriveService) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	file, err := ds.client.Files.Get(fileID).Fields("id, name, mimeType").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get file metadata: %w", err)
	}
	if !imageMimeTypes[strings.ToLower(file.MimeType)] {
		return nil, fmt.Errorf("file %s is %s, not an image", file.Name, file.MimeType)
	}

	resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("drive download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	log.Printf("📥 Drive: downloaded %s (%s, %d bytes)", file.Name, file.MimeType, len(data))
	return data, nil
}

// DriveLogoSource reads the logo from a Google Drive file
type DriveLogoSource struct {
	drive  DriveServiceInterface
	fileID string
}

// Ensure DriveLogoSource implements LogoSource
var _ LogoSource = (*DriveLogoSource)(nil)

// NewDriveLogoSource creates a LogoSource backed by a Drive file
func NewDriveLogoSource(drive DriveServiceInterface, fileID string) *DriveLogoSource {
	return &DriveLogoSource{drive: drive, fileID: fileID}
}

func (s *DriveLogoSource) Name() string {
	return "drive:" + s.fileID
}

func (s *DriveLogoSource) Fetch(ctx context.Context) ([]byte, error) {
	return s.drive.DownloadImage(ctx, s.fileID)
}
