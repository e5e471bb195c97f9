package catalogue

import (
	"github.com/modernhome/storefront-backend/internal/image"
)

// Service builds the public catalogue page: filtered, sorted and paginated
// products with their display-ordered images, plus the category side list.
type Service struct {
	repo   Repository
	images *image.Manager
}

func NewService(repo Repository, images *image.Manager) *Service {
	return &Service{repo: repo, images: images}
}

func (s *Service) Browse(f Filters) (Page, error) {
	f = f.Normalize()

	products, total, err := s.repo.Query(f)
	if err != nil {
		return Page{}, err
	}
	for i := range products {
		imgs, err := s.images.ListByProduct(products[i].ID)
		if err != nil {
			return Page{}, err
		}
		products[i].Images = imgs
	}

	categories, err := s.repo.ActiveCategories()
	if err != nil {
		return Page{}, err
	}

	lastPage := (total + PerPage - 1) / PerPage
	if lastPage < 1 {
		lastPage = 1
	}

	return Page{
		Products:    products,
		Total:       total,
		PerPage:     PerPage,
		CurrentPage: f.Page,
		LastPage:    lastPage,
		Filters:     f,
		Categories:  categories,
	}, nil
}
