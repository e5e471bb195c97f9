package product

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/modernhome/storefront-backend/internal/image"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listProductsQuery = `
		SELECT p.id, p.category_id, c.name, p.name, p.description, p.price, p.sale_price,
		       p.stock_quantity, p.is_active, p.is_featured, p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1 OFFSET $2
	`
	countProductsQuery  = `SELECT COUNT(*) FROM products`
	getProductByIDQuery = `
		SELECT p.id, p.category_id, c.name, p.name, p.description, p.price, p.sale_price,
		       p.stock_quantity, p.is_active, p.is_featured, p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`
	categoryExistsQuery = `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`
	countTagsQuery      = `SELECT COUNT(*) FROM tags WHERE id = ANY($1::int[])`
	insertProductQuery  = `
		INSERT INTO products (category_id, name, description, price, sale_price, stock_quantity, is_active, is_featured, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now())
		RETURNING id, created_at, updated_at
	`
	updateProductQuery = `
		UPDATE products
		SET category_id = $1,
			name = $2,
			description = $3,
			price = $4,
			sale_price = $5,
			stock_quantity = $6,
			is_active = $7,
			is_featured = $8,
			updated_at = now()
		WHERE id = $9
	`
	deleteProductQuery = `DELETE FROM products WHERE id = $1`
	insertTagLinkQuery = `INSERT INTO product_tag (product_id, tag_id) VALUES ($1,$2) ON CONFLICT DO NOTHING`
	clearTagLinksQuery = `DELETE FROM product_tag WHERE product_id = $1`
	insertImageQuery   = `INSERT INTO product_images (product_id, path, position, is_primary) VALUES ($1,$2,$3,$4)`
	productTagsQuery   = `
		SELECT pt.product_id, t.id, t.name
		FROM product_tag pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.product_id = ANY($1::int[])
		ORDER BY t.name
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	var p Product
	var categoryName string
	var salePrice sql.NullFloat64
	if err := scanner.Scan(
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
		return Product{}, err
	}
	p.CategoryName = &categoryName
	if salePrice.Valid {
		p.SalePrice = &salePrice.Float64
	}
	return p, nil
}

func (r *PostgresRepository) List(page, perPage int) ([]Product, int, error) {
	var total int
	if err := r.db.QueryRow(countProductsQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(listProductsQuery, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachTags(out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}

	single := []Product{p}
	if err := r.attachTags(single); err != nil {
		return Product{}, err
	}
	return single[0], nil
}

func (r *PostgresRepository) CategoryExists(id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(categoryExistsQuery, id).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) CountTags(ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int
	err := r.db.QueryRow(countTagsQuery, pq.Array(ids)).Scan(&n)
	return n, err
}

// Create runs the product row, tag links and initial image rows in one
// transaction so a mid-batch failure leaves no partially created product.
func (r *PostgresRepository) Create(p Product, tagIDs []int, imgs []image.Image) (Product, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Product{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	err = tx.QueryRow(insertProductQuery,
		p.CategoryID,
		p.Name,
		p.Description,
		p.Price,
		p.SalePrice,
		p.StockQuantity,
		p.IsActive,
		p.IsFeatured,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Product{}, err
	}

	for _, tagID := range tagIDs {
		if _, err := tx.Exec(insertTagLinkQuery, p.ID, tagID); err != nil {
			return Product{}, err
		}
	}
	for _, img := range imgs {
		if _, err := tx.Exec(insertImageQuery, p.ID, img.Path, img.Position, img.IsPrimary); err != nil {
			return Product{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Product{}, err
	}
	return r.GetByID(p.ID)
}

func (r *PostgresRepository) Update(id int, p Product, tagIDs []int) (Product, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Product{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.Exec(updateProductQuery,
		p.CategoryID,
		p.Name,
		p.Description,
		p.Price,
		p.SalePrice,
		p.StockQuantity,
		p.IsActive,
		p.IsFeatured,
		id,
	)
	if err != nil {
		return Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}

	if _, err := tx.Exec(clearTagLinksQuery, id); err != nil {
		return Product{}, err
	}
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(insertTagLinkQuery, id, tagID); err != nil {
			return Product{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Product{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) attachTags(products []Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]int, 0, len(products))
	index := make(map[int]int, len(products))
	for i, p := range products {
		ids = append(ids, p.ID)
		index[p.ID] = i
	}

	rows, err := r.db.Query(productTagsQuery, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var productID int
		var t Tag
		if err := rows.Scan(&productID, &t.ID, &t.Name); err != nil {
			return err
		}
		i := index[productID]
		products[i].Tags = append(products[i].Tags, t)
	}
	return rows.Err()
}
