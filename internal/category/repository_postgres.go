package category

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCategoriesQuery = `
		SELECT id, name, description, image, is_active, is_featured, created_at, updated_at
		FROM categories
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	countCategoriesQuery = `SELECT COUNT(*) FROM categories`
	getCategoryByIDQuery = `
		SELECT id, name, description, image, is_active, is_featured, created_at, updated_at
		FROM categories
		WHERE id = $1
	`
	categoryExistsQuery = `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`
	hasProductsQuery    = `SELECT EXISTS (SELECT 1 FROM products WHERE category_id = $1)`
	insertCategoryQuery = `
		INSERT INTO categories (name, description, image, is_active, is_featured, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,now(),now())
		RETURNING id, created_at, updated_at
	`
	updateCategoryQuery = `
		UPDATE categories
		SET name = $1,
			description = $2,
			image = $3,
			is_active = $4,
			is_featured = $5,
			updated_at = now()
		WHERE id = $6
	`
	deleteCategoryQuery = `DELETE FROM categories WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(scanner rowScanner) (Category, error) {
	var c Category
	var image sql.NullString
	if err := scanner.Scan(&c.ID, &c.Name, &c.Description, &image, &c.IsActive, &c.IsFeatured, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return Category{}, err
	}
	if image.Valid {
		c.Image = &image.String
	}
	return c, nil
}

func (r *PostgresRepository) List(page, perPage int) ([]Category, int, error) {
	var total int
	if err := r.db.QueryRow(countCategoriesQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(listCategoriesQuery, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Category, error) {
	c, err := scanCategory(r.db.QueryRow(getCategoryByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Category{}, ErrNotFound
		}
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Exists(id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(categoryExistsQuery, id).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) HasProducts(id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(hasProductsQuery, id).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) Create(c Category) (Category, error) {
	err := r.db.QueryRow(insertCategoryQuery, c.Name, c.Description, c.Image, c.IsActive, c.IsFeatured).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Update(id int, c Category) (Category, error) {
	result, err := r.db.Exec(updateCategoryQuery, c.Name, c.Description, c.Image, c.IsActive, c.IsFeatured, id)
	if err != nil {
		return Category{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Category{}, err
	}
	if affected == 0 {
		return Category{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteCategoryQuery, id)
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
