package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	folder    string
}

// NewStorageService creates a new CloudinaryStorageService instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &CloudinaryStorageService{
		cld:       cld,
		cloudName: cloudName,
		folder:    "student-documents",
	}
}

// UploadBase64 uploads a base64-encoded payload and returns its public URL.
// Cloudinary accepts data URIs directly; bare base64 strings get a generic
// data URI prefix first.
func (s *CloudinaryStorageService) UploadBase64(ctx context.Context, data, title string) (string, error) {
	if data == "" {
		return "", fmt.Errorf("CloudinaryStorageService: empty payload")
	}
	if !strings.HasPrefix(data, "data:") {
		data = "data:application/octet-stream;base64," + data
	}

	result, err := s.cld.Upload.Upload(ctx, data, uploader.UploadParams{
		Folder:   s.folder,
		PublicID: title,
	})
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorageService: failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("CloudinaryStorageService: no URL returned")
	}
	return result.SecureURL, nil
}

// DeleteFile deletes a file from Cloudinary given its public ID.
func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("CloudinaryStorageService: failed to delete file: %w", err)
	}
	return nil
}
