package image

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listImagesQuery = `
		SELECT id, product_id, path, position, is_primary
		FROM product_images
		WHERE product_id = $1
		ORDER BY is_primary DESC, position ASC
	`
	getImageByIDQuery = `
		SELECT id, product_id, path, position, is_primary
		FROM product_images
		WHERE id = $1
	`
	maxPositionQuery  = `SELECT COALESCE(MAX(position), -1) FROM product_images WHERE product_id = $1`
	insertImageQuery  = `INSERT INTO product_images (product_id, path, position, is_primary) VALUES ($1,$2,$3,$4) RETURNING id`
	clearPrimaryQuery = `UPDATE product_images SET is_primary = FALSE WHERE product_id = $1`
	markPrimaryQuery  = `UPDATE product_images SET is_primary = TRUE WHERE id = $1`
	deleteImageQuery  = `DELETE FROM product_images WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByProduct(productID int) ([]Image, error) {
	rows, err := r.db.Query(listImagesQuery, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Image, 0)
	for rows.Next() {
		var img Image
		if err := rows.Scan(&img.ID, &img.ProductID, &img.Path, &img.Position, &img.IsPrimary); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Image, error) {
	var img Image
	err := r.db.QueryRow(getImageByIDQuery, id).Scan(&img.ID, &img.ProductID, &img.Path, &img.Position, &img.IsPrimary)
	if err != nil {
		if err == sql.ErrNoRows {
			return Image{}, ErrNotFound
		}
		return Image{}, err
	}
	return img, nil
}

func (r *PostgresRepository) MaxPosition(productID int) (int, error) {
	var max int
	if err := r.db.QueryRow(maxPositionQuery, productID).Scan(&max); err != nil {
		return -1, err
	}
	return max, nil
}

func (r *PostgresRepository) Insert(img Image) (Image, error) {
	var id int
	err := r.db.QueryRow(insertImageQuery, img.ProductID, img.Path, img.Position, img.IsPrimary).Scan(&id)
	if err != nil {
		return Image{}, err
	}
	img.ID = id
	return img, nil
}

func (r *PostgresRepository) ClearPrimary(productID int) error {
	_, err := r.db.Exec(clearPrimaryQuery, productID)
	return err
}

func (r *PostgresRepository) MarkPrimary(id int) error {
	result, err := r.db.Exec(markPrimaryQuery, id)
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

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteImageQuery, id)
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
