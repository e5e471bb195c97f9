package catalogue

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/modernhome/storefront-backend/internal/product"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `p.id, p.category_id, c.name, p.name, p.description, p.price, p.sale_price,
		p.stock_quantity, p.is_active, p.is_featured, p.created_at, p.updated_at`
	activeCategoriesQuery = `
		SELECT c.id, c.name
		FROM categories c
		WHERE c.is_active = TRUE
		  AND EXISTS (
			SELECT 1 FROM products p
			WHERE p.category_id = c.id AND p.is_active = TRUE
		  )
		ORDER BY c.name
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// buildWhere assembles the filter clause. The visibility filter comes first
// and is always applied; search and category narrow it further.
func buildWhere(f Filters) (string, []any) {
	clauses := []string{"p.is_active = TRUE"}
	args := []any{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", n, n))
	}
	if f.CategoryID != 0 {
		args = append(args, f.CategoryID)
		clauses = append(clauses, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	return strings.Join(clauses, " AND "), args
}

func orderClause(sortKey string) string {
	switch sortKey {
	case SortPriceAsc:
		return "COALESCE(p.sale_price, p.price) ASC, p.id"
	case SortPriceDesc:
		return "COALESCE(p.sale_price, p.price) DESC, p.id"
	case SortNameAsc:
		return "p.name ASC, p.id"
	default:
		return "p.created_at DESC, p.id DESC"
	}
}

func (r *PostgresRepository) Query(f Filters) ([]product.Product, int, error) {
	f = f.Normalize()
	where, args := buildWhere(f)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM products p WHERE %s`, where)
	var total int
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, productColumns, where, orderClause(f.Sort), len(args)+1, len(args)+2)
	args = append(args, PerPage, (f.Page-1)*PerPage)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]product.Product, 0)
	for rows.Next() {
		var p product.Product
		var categoryName string
		var salePrice sql.NullFloat64
		if err := rows.Scan(
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
			return nil, 0, err
		}
		p.CategoryName = &categoryName
		if salePrice.Valid {
			p.SalePrice = &salePrice.Float64
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepository) ActiveCategories() ([]CategoryOption, error) {
	rows, err := r.db.Query(activeCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CategoryOption, 0)
	for rows.Next() {
		var opt CategoryOption
		if err := rows.Scan(&opt.ID, &opt.Name); err != nil {
			return nil, err
		}
		out = append(out, opt)
	}
	return out, rows.Err()
}
