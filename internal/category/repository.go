package category

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNotFound    = errors.New("category not found")
	ErrHasProducts = errors.New("category still has products")
)

type Repository interface {
	// List returns one newest-first page of categories plus the total count.
	List(page, perPage int) ([]Category, int, error)
	GetByID(id int) (Category, error)
	Exists(id int) (bool, error)
	// HasProducts reports whether any product still references the category.
	HasProducts(id int) (bool, error)
	Create(c Category) (Category, error)
	Update(id int, c Category) (Category, error)
	Delete(id int) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests.
type InMemoryRepository struct {
	mu         sync.RWMutex
	storage    []Category
	productRef map[int]int // category id -> product count
	nextID     int
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	r := &InMemoryRepository{
		storage:    make([]Category, 0, len(seed)),
		productRef: map[int]int{},
		nextID:     1,
	}

	maxID := 0
	for _, c := range seed {
		r.storage = append(r.storage, c)
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

// SetProductCount wires a fake product count for HasProducts in tests.
func (r *InMemoryRepository) SetProductCount(categoryID, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.productRef[categoryID] = n
}

func (r *InMemoryRepository) List(page, perPage int) ([]Category, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := make([]Category, len(r.storage))
	copy(sorted, r.storage)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].CreatedAt.After(sorted[i].CreatedAt) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	start := (page - 1) * perPage
	if start >= len(sorted) {
		return []Category{}, len(sorted), nil
	}
	end := start + perPage
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end], len(sorted), nil
}

func (r *InMemoryRepository) GetByID(id int) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.storage {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) Exists(id int) (bool, error) {
	_, err := r.GetByID(id)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *InMemoryRepository) HasProducts(id int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.productRef[id] > 0, nil
}

func (r *InMemoryRepository) Create(c Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
		c.UpdatedAt = c.CreatedAt
	}
	r.storage = append(r.storage, c)
	return c, nil
}

func (r *InMemoryRepository) Update(id int, c Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			c.ID = id
			c.CreatedAt = r.storage[i].CreatedAt
			c.UpdatedAt = time.Now().UTC()
			r.storage[i] = c
			return c, nil
		}
	}
	return Category{}, ErrNotFound
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
