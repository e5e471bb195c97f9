package home

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/modernhome/storefront-backend/internal/category"
	"github.com/modernhome/storefront-backend/internal/image"
	"github.com/modernhome/storefront-backend/internal/product"
	"github.com/modernhome/storefront-backend/internal/storage"
)

func newTestService() (*Service, *InMemoryRepository, *image.InMemoryRepository) {
	repo := NewInMemoryRepository()
	imageRepo := image.NewInMemoryRepository(nil)
	svc := NewService(repo, image.NewManager(imageRepo, storage.NewMemoryStorage()))
	return svc, repo, imageRepo
}

func TestLandingOrdersFeaturedFirst(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.SetCategory(category.Category{ID: 1, Name: "Sofas", IsActive: true})
	repo.SetCategory(category.Category{ID: 2, Name: "Beds", IsActive: true, IsFeatured: true})
	repo.SetCategory(category.Category{ID: 3, Name: "Armchairs", IsActive: true})
	repo.SetCategory(category.Category{ID: 4, Name: "Hidden", IsActive: false})

	sections, err := svc.Landing()
	if err != nil {
		t.Fatalf("landing: %v", err)
	}
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	got := []string{sections[0].Category.Name, sections[1].Category.Name, sections[2].Category.Name}
	want := []string{"Beds", "Armchairs", "Sofas"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	if sections[1].Products == nil || len(sections[1].Products) != 0 {
		t.Fatalf("empty category should carry an empty product list, got %v", sections[1].Products)
	}
}

func TestLandingCapsSectionProducts(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.SetCategory(category.Category{ID: 1, Name: "Sofas", IsActive: true})

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 10; i++ {
		repo.AddProduct(product.Product{
			ID:         i,
			CategoryID: 1,
			Name:       fmt.Sprintf("Sofa %d", i),
			IsActive:   true,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		})
	}
	repo.AddProduct(product.Product{ID: 11, CategoryID: 1, Name: "Retired", IsActive: false, CreatedAt: base.Add(24 * time.Hour)})

	sections, err := svc.Landing()
	if err != nil {
		t.Fatalf("landing: %v", err)
	}
	products := sections[0].Products
	if len(products) != SectionLimit {
		t.Fatalf("expected %d products, got %d", SectionLimit, len(products))
	}
	if products[0].ID != 10 {
		t.Fatalf("expected newest product first, got #%d", products[0].ID)
	}
	for _, p := range products {
		if !p.IsActive {
			t.Fatalf("inactive product %d leaked onto the landing page", p.ID)
		}
	}
}

func TestShowReturnsSimilarProducts(t *testing.T) {
	svc, repo, imageRepo := newTestService()
	repo.SetCategory(category.Category{ID: 1, Name: "Sofas", IsActive: true})

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.AddProduct(product.Product{ID: 1, CategoryID: 1, Name: "Shown", IsActive: true, CreatedAt: base})
	repo.AddProduct(product.Product{ID: 2, CategoryID: 1, Name: "Sibling", IsActive: true, CreatedAt: base.Add(time.Hour)})
	repo.AddProduct(product.Product{ID: 3, CategoryID: 1, Name: "Retired", IsActive: false, CreatedAt: base.Add(2 * time.Hour)})
	repo.AddProduct(product.Product{ID: 4, CategoryID: 2, Name: "Elsewhere", IsActive: true, CreatedAt: base.Add(3 * time.Hour)})

	imageRepo.Insert(image.Image{ProductID: 1, Path: "products/b.jpg", Position: 1})
	imageRepo.Insert(image.Image{ProductID: 1, Path: "products/a.jpg", Position: 2, IsPrimary: true})

	detail, err := svc.Show(1)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if detail.Product.CategoryName == nil || *detail.Product.CategoryName != "Sofas" {
		t.Fatalf("expected category name attached, got %v", detail.Product.CategoryName)
	}
	if len(detail.Product.Images) != 2 || detail.Product.Images[0].Path != "products/a.jpg" {
		t.Fatalf("expected primary image first, got %v", detail.Product.Images)
	}
	if len(detail.Similar) != 1 || detail.Similar[0].ID != 2 {
		t.Fatalf("expected only the active sibling, got %v", detail.Similar)
	}
}

func TestShowMissingProduct(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Show(99); !errors.Is(err, product.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
