package storage

import "context"

// StorageService uploads student documents (study certificates, payment QR
// images) and hands back the public URL. Only the URL ever enters the wizard
// draft; raw file bytes never touch the draft store.
type StorageService interface {
	// UploadBase64 stores a base64-encoded payload under the given title and
	// returns its public URL.
	UploadBase64(ctx context.Context, data, title string) (string, error)
	// DeleteFile removes a previously uploaded file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}
