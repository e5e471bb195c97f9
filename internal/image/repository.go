package image

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("image not found")
)

type Repository interface {
	// ListByProduct returns a product's images in display order.
	ListByProduct(productID int) ([]Image, error)
	GetByID(id int) (Image, error)
	// MaxPosition returns the highest position among a product's images,
	// or -1 when the product has none.
	MaxPosition(productID int) (int, error)
	Insert(img Image) (Image, error)
	ClearPrimary(productID int) error
	MarkPrimary(id int) error
	Delete(id int) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Image
	nextID  int
}

func NewInMemoryRepository(seed []Image) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Image, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, img := range seed {
		r.storage = append(r.storage, img)
		if img.ID > maxID {
			maxID = img.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) ListByProduct(productID int) ([]Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Image, 0)
	for _, img := range r.storage {
		if img.ProductID == productID {
			out = append(out, img)
		}
	}
	SortDisplay(out)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, img := range r.storage {
		if img.ID == id {
			return img, nil
		}
	}
	return Image{}, ErrNotFound
}

func (r *InMemoryRepository) MaxPosition(productID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	max := -1
	for _, img := range r.storage {
		if img.ProductID == productID && img.Position > max {
			max = img.Position
		}
	}
	return max, nil
}

func (r *InMemoryRepository) Insert(img Image) (Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if img.ID == 0 {
		img.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, img)
	return img, nil
}

func (r *InMemoryRepository) ClearPrimary(productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ProductID == productID {
			r.storage[i].IsPrimary = false
		}
	}
	return nil
}

func (r *InMemoryRepository) MarkPrimary(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].IsPrimary = true
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
