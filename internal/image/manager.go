package image

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/modernhome/storefront-backend/internal/storage"
)

var (
	// ErrNotOwned is returned when an image does not belong to the product
	// named in the request.
	ErrNotOwned = errors.New("image does not belong to product")
)

// Manager maintains a product's ordered image collection and its
// single-primary invariant: at most one image per product carries
// is_primary, and when one exists it leads the display order.
type Manager struct {
	repo  Repository
	store storage.Storage
}

func NewManager(repo Repository, store storage.Storage) *Manager {
	return &Manager{repo: repo, store: store}
}

// ListByProduct returns the product's images in display order.
func (m *Manager) ListByProduct(productID int) ([]Image, error) {
	return m.repo.ListByProduct(productID)
}

// Append stores each file and creates an image row for it, positioned after
// all existing images and preserving the input order. primaryIndex addresses
// the batch by input order: the matching new image becomes the product's only
// primary image. primaryIndex < 0 leaves primary flags untouched.
//
// A storage failure aborts the batch; blobs already written in the failed
// attempt are not rolled back, the caller may retry the whole operation.
func (m *Manager) Append(productID int, files []*multipart.FileHeader, primaryIndex int) ([]Image, error) {
	if len(files) == 0 {
		return []Image{}, nil
	}

	maxPos, err := m.repo.MaxPosition(productID)
	if err != nil {
		return nil, err
	}

	if primaryIndex >= 0 && primaryIndex < len(files) {
		if err := m.repo.ClearPrimary(productID); err != nil {
			return nil, err
		}
	}

	created := make([]Image, 0, len(files))
	for offset, file := range files {
		path, err := m.store.Save(file, "products")
		if err != nil {
			return nil, fmt.Errorf("store image %d: %w", offset, err)
		}
		img, err := m.repo.Insert(Image{
			ProductID: productID,
			Path:      path,
			Position:  maxPos + 1 + offset,
			IsPrimary: primaryIndex == offset,
		})
		if err != nil {
			return nil, err
		}
		created = append(created, img)
	}
	return created, nil
}

// StoreBatch saves uploads to the blob store without creating rows. The
// product-create path uses it so the rows can join the product's insert
// transaction. A failure aborts the batch; blobs already written stay.
func (m *Manager) StoreBatch(files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for offset, file := range files {
		path, err := m.store.Save(file, "products")
		if err != nil {
			return nil, fmt.Errorf("store image %d: %w", offset, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// SetPrimary re-points the product's primary flag. index addresses images by
// display order as currently persisted (primary first, then position
// ascending). An index below zero or past the end leaves the product with no
// primary image; that is an acceptable terminal state, not an error.
func (m *Manager) SetPrimary(productID, index int) error {
	imgs, err := m.repo.ListByProduct(productID)
	if err != nil {
		return err
	}

	if err := m.repo.ClearPrimary(productID); err != nil {
		return err
	}
	if index < 0 || index >= len(imgs) {
		return nil
	}
	return m.repo.MarkPrimary(imgs[index].ID)
}

// Remove deletes one image: the blob first, then the row. Sibling positions
// are not renumbered and the primary flag is not reassigned; if the removed
// image was primary the product has none until an admin sets a new one.
func (m *Manager) Remove(productID, imageID int) error {
	img, err := m.repo.GetByID(imageID)
	if err != nil {
		return err
	}
	if img.ProductID != productID {
		return ErrNotOwned
	}

	if err := m.store.Delete(img.Path); err != nil {
		return fmt.Errorf("delete image blob: %w", err)
	}
	return m.repo.Delete(imageID)
}

// RemoveAllBlobs deletes the stored blobs for every image of a product. It is
// used when the product itself is being deleted; the rows go away with the
// product's cascade.
func (m *Manager) RemoveAllBlobs(productID int) error {
	imgs, err := m.repo.ListByProduct(productID)
	if err != nil {
		return err
	}
	for _, img := range imgs {
		if err := m.store.Delete(img.Path); err != nil {
			return fmt.Errorf("delete image blob: %w", err)
		}
	}
	return nil
}
