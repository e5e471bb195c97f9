package category

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/modernhome/storefront-backend/internal/storage"
)

// ErrForbidden is returned when a mutating call arrives without an acting
// admin.
var ErrForbidden = errors.New("acting admin required")

// Service orchestrates category CRUD over the repository and the blob store.
// Every mutating call names the acting admin explicitly.
type Service struct {
	repo  Repository
	store storage.Storage
}

func NewService(repo Repository, store storage.Storage) *Service {
	return &Service{repo: repo, store: store}
}

func (s *Service) List(page, perPage int) ([]Category, int, error) {
	return s.repo.List(page, perPage)
}

func (s *Service) GetByID(id int) (Category, error) {
	return s.repo.GetByID(id)
}

// Create stores the optional image first, then the row. A failed row insert
// leaves the stored blob orphaned; that risk is accepted, see DESIGN.md.
func (s *Service) Create(actor int, cmd Command, imageFile *multipart.FileHeader) (Category, error) {
	if actor <= 0 {
		return Category{}, ErrForbidden
	}

	c := Category{
		Name:        cmd.Name,
		Description: cmd.Description,
		IsActive:    true,
	}
	if cmd.IsActive != nil {
		c.IsActive = *cmd.IsActive
	}
	if cmd.IsFeatured != nil {
		c.IsFeatured = *cmd.IsFeatured
	}

	if imageFile != nil {
		path, err := s.store.Save(imageFile, "categories")
		if err != nil {
			return Category{}, fmt.Errorf("store category image: %w", err)
		}
		c.Image = &path
	}

	return s.repo.Create(c)
}

// Update replaces the image only when a new file is provided; the previous
// blob is deleted only after the replacement stored successfully.
func (s *Service) Update(actor, id int, cmd Command, imageFile *multipart.FileHeader) (Category, error) {
	if actor <= 0 {
		return Category{}, ErrForbidden
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Category{}, err
	}

	c := existing
	c.Name = cmd.Name
	c.Description = cmd.Description
	if cmd.IsActive != nil {
		c.IsActive = *cmd.IsActive
	}
	if cmd.IsFeatured != nil {
		c.IsFeatured = *cmd.IsFeatured
	}

	if imageFile != nil {
		path, err := s.store.Save(imageFile, "categories")
		if err != nil {
			return Category{}, fmt.Errorf("store category image: %w", err)
		}
		if existing.Image != nil {
			if err := s.store.Delete(*existing.Image); err != nil {
				return Category{}, fmt.Errorf("delete replaced image: %w", err)
			}
		}
		c.Image = &path
	}

	return s.repo.Update(id, c)
}

// Delete refuses to remove a category that still owns products; products are
// never cascaded or reassigned here.
func (s *Service) Delete(actor, id int) error {
	if actor <= 0 {
		return ErrForbidden
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	inUse, err := s.repo.HasProducts(id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrHasProducts
	}

	if existing.Image != nil {
		if err := s.store.Delete(*existing.Image); err != nil {
			return fmt.Errorf("delete category image: %w", err)
		}
	}
	return s.repo.Delete(id)
}
