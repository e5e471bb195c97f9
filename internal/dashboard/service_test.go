package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/modernhome/storefront-backend/internal/contact"
)

func TestOverviewCountsAndRecents(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.SetCategoryCount(3)
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 7; i++ {
		repo.AddProduct(ProductSummary{
			ID:        i,
			Name:      fmt.Sprintf("Product %d", i),
			Price:     float64(100 * i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	messages := contact.NewInMemoryRepository(nil)
	for i := 1; i <= 6; i++ {
		if _, err := messages.Create(contact.Message{Message: fmt.Sprintf("enquiry %d", i)}); err != nil {
			t.Fatalf("seed message: %v", err)
		}
	}

	stats, err := NewService(repo, messages).Overview()
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if stats.TotalProducts != 7 || stats.TotalCategories != 3 || stats.TotalMessages != 6 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if len(stats.RecentProducts) != RecentLimit || stats.RecentProducts[0].ID != 7 {
		t.Fatalf("expected %d recent products newest first, got %v", RecentLimit, stats.RecentProducts)
	}
	if len(stats.RecentMessages) != RecentLimit || stats.RecentMessages[0].ID != 6 {
		t.Fatalf("expected %d recent messages newest first, got %v", RecentLimit, stats.RecentMessages)
	}
}

func TestOverviewEmptyStore(t *testing.T) {
	stats, err := NewService(NewInMemoryRepository(), contact.NewInMemoryRepository(nil)).Overview()
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if stats.TotalProducts != 0 || len(stats.RecentProducts) != 0 || len(stats.RecentMessages) != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
}
