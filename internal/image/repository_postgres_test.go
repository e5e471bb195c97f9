package image

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListByProductDisplayOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "product_id", "path", "position", "is_primary"}).
		AddRow(2, 7, "products/b.jpg", 1, true).
		AddRow(1, 7, "products/a.jpg", 0, false)
	mock.ExpectQuery("FROM product_images").WithArgs(7).WillReturnRows(rows)

	imgs, err := repo.ListByProduct(7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(imgs) != 2 {
		t.Fatalf("expected 2 images, got %d", len(imgs))
	}
	if imgs[0].ID != 2 || !imgs[0].IsPrimary {
		t.Fatalf("unexpected first image %+v", imgs[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMaxPositionEmptyProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"coalesce"}).AddRow(-1)
	mock.ExpectQuery("COALESCE\\(MAX\\(position\\), -1\\)").WithArgs(7).WillReturnRows(rows)

	max, err := repo.MaxPosition(7)
	if err != nil {
		t.Fatalf("max position: %v", err)
	}
	if max != -1 {
		t.Fatalf("expected -1 for empty product, got %d", max)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestInsertReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id"}).AddRow(11)
	mock.ExpectQuery("INSERT INTO product_images").
		WithArgs(7, "products/a.jpg", 3, false).
		WillReturnRows(rows)

	img, err := repo.Insert(Image{ProductID: 7, Path: "products/a.jpg", Position: 3})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if img.ID != 11 {
		t.Fatalf("expected id 11, got %d", img.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteMissingImage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM product_images").WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
