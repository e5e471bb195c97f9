package product

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/modernhome/storefront-backend/internal/image"
)

var (
	ErrNotFound         = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTagNotFound      = errors.New("tag not found")
)

type Repository interface {
	// List returns one newest-first page of products with category names and
	// tags attached, plus the total count.
	List(page, perPage int) ([]Product, int, error)
	GetByID(id int) (Product, error)
	CategoryExists(id int) (bool, error)
	// CountTags returns how many of the given tag ids exist.
	CountTags(ids []int) (int, error)
	// Create inserts the product row, its tag links and its initial image
	// rows in a single transaction; blob writes happen before and outside it.
	Create(p Product, tagIDs []int, imgs []image.Image) (Product, error)
	// Update rewrites the product row and resyncs its tag set.
	Update(id int, p Product, tagIDs []int) (Product, error)
	Delete(id int) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests.
// It shares an image repository so created image rows are visible to the
// image manager, the way a shared database would be.
type InMemoryRepository struct {
	mu         sync.RWMutex
	storage    []Product
	categories map[int]string
	tags       map[int]string
	images     *image.InMemoryRepository
	nextID     int
}

func NewInMemoryRepository(seed []Product, images *image.InMemoryRepository) *InMemoryRepository {
	r := &InMemoryRepository{
		storage:    make([]Product, 0, len(seed)),
		categories: map[int]string{},
		tags:       map[int]string{},
		images:     images,
		nextID:     1,
	}

	maxID := 0
	for _, p := range seed {
		r.storage = append(r.storage, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

// SetCategory registers a known category id/name pair for existence checks.
func (r *InMemoryRepository) SetCategory(id int, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[id] = name
}

// SetTag registers a known tag for existence checks.
func (r *InMemoryRepository) SetTag(id int, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags[id] = name
}

func (r *InMemoryRepository) List(page, perPage int) ([]Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := make([]Product, len(r.storage))
	copy(sorted, r.storage)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	total := len(sorted)
	start := (page - 1) * perPage
	if start >= total {
		return []Product{}, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return sorted[start:end], total, nil
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) CategoryExists(id int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.categories[id]
	return ok, nil
}

func (r *InMemoryRepository) CountTags(ids []int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, id := range ids {
		if _, ok := r.tags[id]; ok {
			n++
		}
	}
	return n, nil
}

func (r *InMemoryRepository) Create(p Product, tagIDs []int, imgs []image.Image) (Product, error) {
	r.mu.Lock()
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
		p.UpdatedAt = p.CreatedAt
	}
	p.Tags = r.tagSet(tagIDs)
	r.storage = append(r.storage, p)
	r.mu.Unlock()

	for _, img := range imgs {
		img.ProductID = p.ID
		if _, err := r.images.Insert(img); err != nil {
			return Product{}, err
		}
	}
	return p, nil
}

func (r *InMemoryRepository) Update(id int, p Product, tagIDs []int) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			p.ID = id
			p.CreatedAt = r.storage[i].CreatedAt
			p.UpdatedAt = time.Now().UTC()
			p.Tags = r.tagSet(tagIDs)
			r.storage[i] = p
			return p, nil
		}
	}
	return Product{}, ErrNotFound
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

func (r *InMemoryRepository) tagSet(ids []int) []Tag {
	out := make([]Tag, 0, len(ids))
	for _, id := range ids {
		if name, ok := r.tags[id]; ok {
			out = append(out, Tag{ID: id, Name: name})
		}
	}
	return out
}
