package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"sync"
)

var ErrUnavailable = errors.New("storage unavailable")

// MemoryStorage is an in-memory Storage used by tests. It records stored and
// deleted paths and can be told to fail after N successful saves.
type MemoryStorage struct {
	mu      sync.Mutex
	nextID  int
	Saved   []string
	Deleted []string

	// FailAfter makes Save fail once that many saves succeeded. Negative
	// means never fail.
	FailAfter int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{FailAfter: -1}
}

func (s *MemoryStorage) Save(file *multipart.FileHeader, namespace string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailAfter >= 0 && len(s.Saved) >= s.FailAfter {
		return "", ErrUnavailable
	}

	s.nextID++
	name := file.Filename
	if name == "" {
		name = "blob"
	}
	path := fmt.Sprintf("%s/%d-%s", namespace, s.nextID, name)
	s.Saved = append(s.Saved, path)
	return path, nil
}

func (s *MemoryStorage) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deleted = append(s.Deleted, path)
	return nil
}
