package product

import (
	"errors"
	"mime/multipart"

	"github.com/modernhome/storefront-backend/internal/image"
)

// ErrForbidden is returned when a mutating call arrives without an acting
// admin.
var ErrForbidden = errors.New("acting admin required")

// Service orchestrates admin product CRUD over the repository, the image
// manager and the blob store. Every mutating call names the acting admin
// explicitly.
type Service struct {
	repo   Repository
	images *image.Manager
}

func NewService(repo Repository, images *image.Manager) *Service {
	return &Service{repo: repo, images: images}
}

func (s *Service) List(page, perPage int) ([]Product, int, error) {
	products, total, err := s.repo.List(page, perPage)
	if err != nil {
		return nil, 0, err
	}
	for i := range products {
		imgs, err := s.images.ListByProduct(products[i].ID)
		if err != nil {
			return nil, 0, err
		}
		products[i].Images = imgs
	}
	return products, total, nil
}

func (s *Service) GetByID(id int) (Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	imgs, err := s.images.ListByProduct(id)
	if err != nil {
		return Product{}, err
	}
	p.Images = imgs
	return p, nil
}

// Create stores the uploaded blobs first, then inserts the product row, tag
// links and image rows in one transaction. primaryImageIndex addresses the
// upload batch by input order; nil or negative means no primary image. Blobs
// written before a failed transaction stay orphaned (accepted risk).
func (s *Service) Create(actor int, cmd Command, files []*multipart.FileHeader) (Product, error) {
	if actor <= 0 {
		return Product{}, ErrForbidden
	}
	if err := s.checkReferences(cmd); err != nil {
		return Product{}, err
	}

	p := commandProduct(cmd)

	primaryIndex := -1
	if cmd.PrimaryImageIndex != nil {
		primaryIndex = *cmd.PrimaryImageIndex
	}

	paths, err := s.images.StoreBatch(files)
	if err != nil {
		return Product{}, err
	}
	imgs := make([]image.Image, 0, len(paths))
	for i, path := range paths {
		imgs = append(imgs, image.Image{
			Path:      path,
			Position:  i,
			IsPrimary: i == primaryIndex,
		})
	}

	created, err := s.repo.Create(p, cmd.TagIDs, imgs)
	if err != nil {
		return Product{}, err
	}
	return s.GetByID(created.ID)
}

// Update rewrites the product and its tag set, appends any new images after
// the existing ones and, when primaryImageIndex is provided, re-points the
// primary flag by display-order index (a negative index clears it).
func (s *Service) Update(actor, id int, cmd Command, files []*multipart.FileHeader) (Product, error) {
	if actor <= 0 {
		return Product{}, ErrForbidden
	}
	if err := s.checkReferences(cmd); err != nil {
		return Product{}, err
	}

	if _, err := s.repo.Update(id, commandProduct(cmd), cmd.TagIDs); err != nil {
		return Product{}, err
	}

	if _, err := s.images.Append(id, files, -1); err != nil {
		return Product{}, err
	}
	if cmd.PrimaryImageIndex != nil {
		if err := s.images.SetPrimary(id, *cmd.PrimaryImageIndex); err != nil {
			return Product{}, err
		}
	}

	return s.GetByID(id)
}

// Delete removes the product's image blobs, then the row; image rows go away
// with the database cascade.
func (s *Service) Delete(actor, id int) error {
	if actor <= 0 {
		return ErrForbidden
	}
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := s.images.RemoveAllBlobs(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// RemoveImage deletes a single image belonging to the product.
func (s *Service) RemoveImage(actor, productID, imageID int) error {
	if actor <= 0 {
		return ErrForbidden
	}
	return s.images.Remove(productID, imageID)
}

func (s *Service) checkReferences(cmd Command) error {
	ok, err := s.repo.CategoryExists(cmd.CategoryID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}
	if len(cmd.TagIDs) > 0 {
		n, err := s.repo.CountTags(cmd.TagIDs)
		if err != nil {
			return err
		}
		if n != len(cmd.TagIDs) {
			return ErrTagNotFound
		}
	}
	return nil
}

func commandProduct(cmd Command) Product {
	p := Product{
		CategoryID:    cmd.CategoryID,
		Name:          cmd.Name,
		Description:   cmd.Description,
		Price:         cmd.Price,
		SalePrice:     cmd.SalePrice,
		StockQuantity: cmd.StockQuantity,
		IsActive:      true,
	}
	if cmd.IsActive != nil {
		p.IsActive = *cmd.IsActive
	}
	if cmd.IsFeatured != nil {
		p.IsFeatured = *cmd.IsFeatured
	}
	return p
}
