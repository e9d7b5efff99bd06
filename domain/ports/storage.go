package ports

import "io"

// StoragePort stores product images; implemented by local disk and S3-compatible storage.
type StoragePort interface {
	// UploadFile stores file under path and returns its public URL.
	UploadFile(file io.Reader, path string, contentType string) (string, error)

	DeleteFile(path string) error

	GetFileURL(path string) string

	// GetProviderName returns "local" or "s3".
	GetProviderName() string
}
