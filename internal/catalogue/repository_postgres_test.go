package catalogue

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestQueryAppliesFiltersAndPaging(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products p`).
		WithArgs("%oak%", 3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`COALESCE\(p.sale_price, p.price\) ASC`).
		WithArgs("%oak%", 3, PerPage, 12).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "category_id", "name", "name", "description", "price", "sale_price",
			"stock_quantity", "is_active", "is_featured", "created_at", "updated_at",
		}).AddRow(7, 3, "Tables", "Oak Table", "solid", 100.0, 80.0, 2, true, false, now, now))

	products, total, err := repo.Query(Filters{Search: "oak", CategoryID: 3, Sort: SortPriceAsc, Page: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("expected 1 product, got %d/%d", len(products), total)
	}
	if products[0].SalePrice == nil || products[0].EffectivePrice() != 80 {
		t.Fatalf("sale price not scanned: %+v", products[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestActiveCategoriesUsesExistsSubquery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Armchairs").
			AddRow(2, "Bookcases"))

	opts, err := repo.ActiveCategories()
	if err != nil {
		t.Fatalf("active categories: %v", err)
	}
	if len(opts) != 2 || opts[0].Name != "Armchairs" {
		t.Fatalf("unexpected options: %+v", opts)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
