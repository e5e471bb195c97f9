package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage persists uploaded files and returns the path under which they were
// stored. Paths are plain strings resolved against the uploads base URL at
// render time; there is no versioning or content hashing.
type Storage interface {
	Save(file *multipart.FileHeader, namespace string) (string, error)
	Delete(path string) error
}

// DiskStorage writes uploads below a root directory, one subdirectory per
// namespace ("categories", "products"). Stored names are uuid-based so
// concurrent uploads of files with the same client name cannot collide.
type DiskStorage struct {
	root string
}

func NewDiskStorage(root string) (*DiskStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads root: %w", err)
	}
	return &DiskStorage{root: root}, nil
}

func (s *DiskStorage) Save(file *multipart.FileHeader, namespace string) (string, error) {
	dir := filepath.Join(s.root, namespace)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create namespace dir: %w", err)
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	rel := filepath.ToSlash(filepath.Join(namespace, name))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, namespace, name))
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return rel, nil
}

func (s *DiskStorage) Delete(path string) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}
