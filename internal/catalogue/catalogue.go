package catalogue

import "github.com/modernhome/storefront-backend/internal/product"

// PerPage is the fixed public catalogue page size.
const PerPage = 12

// Sort options accepted by the catalogue. Price sorts order by the effective
// selling price, COALESCE(sale_price, price), so a discounted item sorts by
// what the customer actually pays.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
)

// Filters is the query configuration; zero values mean the defaults.
type Filters struct {
	Search     string `json:"search"`
	CategoryID int    `json:"categoryId"`
	Sort       string `json:"sort"`
	Page       int    `json:"page"`
}

// Normalize fills defaults and discards unknown sort values.
func (f Filters) Normalize() Filters {
	switch f.Sort {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNewest:
	default:
		f.Sort = SortNewest
	}
	if f.Page < 1 {
		f.Page = 1
	}
	return f
}

// CategoryOption is one entry of the filter side list: an active category
// that has at least one active product.
type CategoryOption struct {
	ID   int    `json:"categoryId"`
	Name string `json:"name"`
}

// Page is one catalogue result page. The applied filters are echoed back so
// a client can rebuild pagination links without resending implicit defaults.
type Page struct {
	Products    []product.Product `json:"products"`
	Total       int               `json:"total"`
	PerPage     int               `json:"perPage"`
	CurrentPage int               `json:"currentPage"`
	LastPage    int               `json:"lastPage"`
	Filters     Filters           `json:"filters"`
	Categories  []CategoryOption  `json:"categories"`
}
