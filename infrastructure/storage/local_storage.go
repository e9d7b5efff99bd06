package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/DsDac0/Website/domain/ports"
)

// LocalStorage keeps product images on disk; the API serves BasePath under BaseURL.
type LocalStorage struct {
	basePath string
	baseURL  string
}

type LocalStorageConfig struct {
	BasePath string // ./uploads
	BaseURL  string // http://localhost:5000/files
}

func NewLocalStorage(config LocalStorageConfig) (ports.StoragePort, error) {
	if err := os.MkdirAll(config.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{
		basePath: config.BasePath,
		baseURL:  strings.TrimSuffix(config.BaseURL, "/"),
	}, nil
}

func (l *LocalStorage) UploadFile(file io.Reader, path string, contentType string) (string, error) {
	key, err := cleanKey(path)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(l.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return l.GetFileURL(key), nil
}

// DeleteFile treats a missing file as already deleted.
func (l *LocalStorage) DeleteFile(path string) error {
	key, err := cleanKey(path)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(l.basePath, filepath.FromSlash(key))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (l *LocalStorage) GetFileURL(path string) string {
	key, err := cleanKey(path)
	if err != nil {
		return l.baseURL
	}
	return l.baseURL + "/" + key
}

func (l *LocalStorage) GetProviderName() string {
	return "local"
}
