package dashboard

import "database/sql"

const (
	countProductsQuery   = `SELECT COUNT(*) FROM products`
	countCategoriesQuery = `SELECT COUNT(*) FROM categories`
	recentProductsQuery  = `SELECT id, name, price, is_featured, created_at
FROM products ORDER BY created_at DESC, id DESC LIMIT $1`
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountProducts() (int, error) {
	var n int
	err := r.db.QueryRow(countProductsQuery).Scan(&n)
	return n, err
}

func (r *PostgresRepository) CountCategories() (int, error) {
	var n int
	err := r.db.QueryRow(countCategoriesQuery).Scan(&n)
	return n, err
}

func (r *PostgresRepository) RecentProducts(limit int) ([]ProductSummary, error) {
	rows, err := r.db.Query(recentProductsQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ProductSummary{}
	for rows.Next() {
		var p ProductSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.IsFeatured, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
