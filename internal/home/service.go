package home

import (
	"github.com/modernhome/storefront-backend/internal/image"
	"github.com/modernhome/storefront-backend/internal/product"
)

// Service assembles the public landing page and product detail page.
type Service struct {
	repo   Repository
	images *image.Manager
}

func NewService(repo Repository, images *image.Manager) *Service {
	return &Service{repo: repo, images: images}
}

// Landing returns one section per active category, featured categories
// first. Categories without active products still appear, with an empty
// product list.
func (s *Service) Landing() ([]Section, error) {
	categories, err := s.repo.ActiveCategories()
	if err != nil {
		return nil, err
	}

	sections := make([]Section, 0, len(categories))
	for _, c := range categories {
		products, err := s.repo.NewestActiveProducts(c.ID, SectionLimit)
		if err != nil {
			return nil, err
		}
		if err := s.attachImages(products); err != nil {
			return nil, err
		}
		sections = append(sections, Section{Category: c, Products: products})
	}
	return sections, nil
}

// Show returns the product page: the product with its images, plus similar
// products from the same category.
func (s *Service) Show(id int) (Detail, error) {
	p, err := s.repo.GetProduct(id)
	if err != nil {
		return Detail{}, err
	}
	imgs, err := s.images.ListByProduct(p.ID)
	if err != nil {
		return Detail{}, err
	}
	p.Images = imgs

	similar, err := s.repo.SimilarProducts(p.CategoryID, p.ID, SectionLimit)
	if err != nil {
		return Detail{}, err
	}
	if err := s.attachImages(similar); err != nil {
		return Detail{}, err
	}

	return Detail{Product: p, Similar: similar}, nil
}

func (s *Service) attachImages(products []product.Product) error {
	for i := range products {
		imgs, err := s.images.ListByProduct(products[i].ID)
		if err != nil {
			return err
		}
		products[i].Images = imgs
	}
	return nil
}
