package dashboard

import (
	"sort"
	"sync"
)

type Repository interface {
	CountProducts() (int, error)
	CountCategories() (int, error)
	// RecentProducts returns up to limit products, newest first.
	RecentProducts(limit int) ([]ProductSummary, error)
}

type InMemoryRepository struct {
	mu         sync.RWMutex
	products   []ProductSummary
	categories int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) AddProduct(p ProductSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, p)
}

func (r *InMemoryRepository) SetCategoryCount(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = n
}

func (r *InMemoryRepository) CountProducts() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

func (r *InMemoryRepository) CountCategories() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.categories, nil
}

func (r *InMemoryRepository) RecentProducts(limit int) ([]ProductSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ProductSummary, len(r.products))
	copy(out, r.products)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
