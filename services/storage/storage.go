package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines the interface for project file storage operations.
type StorageService interface {
	UploadFile(ctx context.Context, file io.Reader, fileName, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}

// CloudinaryStorage implements StorageService on top of Cloudinary.
type CloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a CloudinaryStorage instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &CloudinaryStorage{cld: cld, cloudName: cloudName}
}

// UploadFile uploads a file into the specified folder and returns the
// permanent public identifier.
func (s *CloudinaryStorage) UploadFile(ctx context.Context, file io.Reader, fileName, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   destFolder,
		PublicID: fileName,
	})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("storage: no public ID returned")
	}
	return result.PublicID, nil
}

// DeleteFile deletes a file given its public ID.
func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: failed to delete file: %w", err)
	}
	return nil
}

// GetDownloadURL constructs a public URL for a stored file. The expires
// argument is accepted for interface symmetry; public assets do not expire.
func (s *CloudinaryStorage) GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error) {
	asset, err := s.cld.Media(publicID)
	if err != nil {
		return "", fmt.Errorf("storage: failed to get asset: %w", err)
	}
	url, err := asset.String()
	if err != nil {
		return "", fmt.Errorf("storage: failed to build URL: %w", err)
	}
	return url, nil
}
