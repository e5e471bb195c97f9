package catalogue

import (
	"sort"
	"strings"
	"sync"

	"github.com/modernhome/storefront-backend/internal/product"
)

type Repository interface {
	// Query returns one page of active products matching the filters plus
	// the total match count. Images are attached by the service.
	Query(f Filters) ([]product.Product, int, error)
	// ActiveCategories lists active categories that have at least one
	// active product, ordered by name.
	ActiveCategories() ([]CategoryOption, error)
}

// InMemoryRepository mirrors the SQL query semantics over a product slice;
// used by tests and local seeding.
type InMemoryRepository struct {
	mu         sync.RWMutex
	products   []product.Product
	categories map[int]categoryState
}

type categoryState struct {
	name   string
	active bool
}

func NewInMemoryRepository(seed []product.Product) *InMemoryRepository {
	return &InMemoryRepository{
		products:   append([]product.Product(nil), seed...),
		categories: map[int]categoryState{},
	}
}

// SetCategory registers a category for the side list.
func (r *InMemoryRepository) SetCategory(id int, name string, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[id] = categoryState{name: name, active: active}
}

// Add appends a product to the backing slice.
func (r *InMemoryRepository) Add(p product.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, p)
}

func (r *InMemoryRepository) Query(f Filters) ([]product.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f = f.Normalize()

	matched := make([]product.Product, 0)
	search := strings.ToLower(f.Search)
	for _, p := range r.products {
		if !p.IsActive {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if f.CategoryID != 0 && p.CategoryID != f.CategoryID {
			continue
		}
		matched = append(matched, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].EffectivePrice() < matched[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].EffectivePrice() > matched[j].EffectivePrice()
		})
	case SortNameAsc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Name < matched[j].Name
		})
	default:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	}

	total := len(matched)
	start := (f.Page - 1) * PerPage
	if start >= total {
		return []product.Product{}, total, nil
	}
	end := start + PerPage
	if end > total {
		end = total
	}
	out := make([]product.Product, end-start)
	copy(out, matched[start:end])
	return out, total, nil
}

func (r *InMemoryRepository) ActiveCategories() ([]CategoryOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]CategoryOption, 0)
	for id, c := range r.categories {
		if !c.active {
			continue
		}
		hasActive := false
		for _, p := range r.products {
			if p.CategoryID == id && p.IsActive {
				hasActive = true
				break
			}
		}
		if hasActive {
			out = append(out, CategoryOption{ID: id, Name: c.name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
