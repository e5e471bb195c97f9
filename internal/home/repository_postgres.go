package home

import (
	"database/sql"

	"github.com/modernhome/storefront-backend/internal/category"
	"github.com/modernhome/storefront-backend/internal/product"
)

const (
	activeCategoriesQuery = `SELECT id, name, description, image, is_active, is_featured, created_at, updated_at
FROM categories WHERE is_active = TRUE ORDER BY is_featured DESC, name ASC`
	newestActiveQuery = `SELECT p.id, p.category_id, c.name, p.name, p.description, p.price, p.sale_price,
	p.stock_quantity, p.is_active, p.is_featured, p.created_at, p.updated_at
FROM products p JOIN categories c ON c.id = p.category_id
WHERE p.is_active = TRUE AND p.category_id = $1
ORDER BY p.created_at DESC, p.id DESC LIMIT $2`
	getProductQuery = `SELECT p.id, p.category_id, c.name, p.name, p.description, p.price, p.sale_price,
	p.stock_quantity, p.is_active, p.is_featured, p.created_at, p.updated_at
FROM products p JOIN categories c ON c.id = p.category_id
WHERE p.id = $1`
	similarProductsQuery = `SELECT p.id, p.category_id, c.name, p.name, p.description, p.price, p.sale_price,
	p.stock_quantity, p.is_active, p.is_featured, p.created_at, p.updated_at
FROM products p JOIN categories c ON c.id = p.category_id
WHERE p.is_active = TRUE AND p.category_id = $1 AND p.id <> $2
ORDER BY p.created_at DESC, p.id DESC LIMIT $3`
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (product.Product, error) {
	var p product.Product
	var categoryName string
	var salePrice sql.NullFloat64
	if err := row.Scan(
		&p.ID,
		&p.CategoryID,
		&categoryName,
		&p.Name,
		&p.Description,
		&p.Price,
		&salePrice,
		&p.StockQuantity,
		&p.IsActive,
		&p.IsFeatured,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return product.Product{}, err
	}
	p.CategoryName = &categoryName
	if salePrice.Valid {
		p.SalePrice = &salePrice.Float64
	}
	return p, nil
}

func (r *PostgresRepository) ActiveCategories() ([]category.Category, error) {
	rows, err := r.db.Query(activeCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []category.Category{}
	for rows.Next() {
		var c category.Category
		var img sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &img, &c.IsActive, &c.IsFeatured, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		if img.Valid {
			c.Image = &img.String
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) NewestActiveProducts(categoryID, limit int) ([]product.Product, error) {
	return r.queryProducts(newestActiveQuery, categoryID, limit)
}

func (r *PostgresRepository) GetProduct(id int) (product.Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductQuery, id))
	if err == sql.ErrNoRows {
		return product.Product{}, product.ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) SimilarProducts(categoryID, excludeID, limit int) ([]product.Product, error) {
	return r.queryProducts(similarProductsQuery, categoryID, excludeID, limit)
}

func (r *PostgresRepository) queryProducts(query string, args ...any) ([]product.Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []product.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
