package home

import (
	"sort"
	"sync"

	"github.com/modernhome/storefront-backend/internal/category"
	"github.com/modernhome/storefront-backend/internal/product"
)

type Repository interface {
	// ActiveCategories returns active categories, featured ones first, then
	// by name.
	ActiveCategories() ([]category.Category, error)
	// NewestActiveProducts returns up to limit active products in the
	// category, newest first.
	NewestActiveProducts(categoryID, limit int) ([]product.Product, error)
	GetProduct(id int) (product.Product, error)
	// SimilarProducts returns up to limit active products sharing the
	// category, excluding excludeID, newest first.
	SimilarProducts(categoryID, excludeID, limit int) ([]product.Product, error)
}

type InMemoryRepository struct {
	mu         sync.RWMutex
	categories map[int]category.Category
	products   map[int]product.Product
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		categories: make(map[int]category.Category),
		products:   make(map[int]product.Product),
	}
}

func (r *InMemoryRepository) SetCategory(c category.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = c
}

func (r *InMemoryRepository) AddProduct(p product.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
}

func (r *InMemoryRepository) ActiveCategories() ([]category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []category.Category{}
	for _, c := range r.categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsFeatured != out[j].IsFeatured {
			return out[i].IsFeatured
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *InMemoryRepository) NewestActiveProducts(categoryID, limit int) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []product.Product{}
	for _, p := range r.products {
		if p.IsActive && p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	sortNewest(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryRepository) GetProduct(id int) (product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return product.Product{}, product.ErrNotFound
	}
	if c, ok := r.categories[p.CategoryID]; ok {
		name := c.Name
		p.CategoryName = &name
	}
	return p, nil
}

func (r *InMemoryRepository) SimilarProducts(categoryID, excludeID, limit int) ([]product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []product.Product{}
	for _, p := range r.products {
		if p.IsActive && p.CategoryID == categoryID && p.ID != excludeID {
			out = append(out, p)
		}
	}
	sortNewest(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortNewest(ps []product.Product) {
	sort.SliceStable(ps, func(i, j int) bool {
		if !ps[i].CreatedAt.Equal(ps[j].CreatedAt) {
			return ps[i].CreatedAt.After(ps[j].CreatedAt)
		}
		return ps[i].ID > ps[j].ID
	})
}
