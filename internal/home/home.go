package home

import (
	"github.com/modernhome/storefront-backend/internal/category"
	"github.com/modernhome/storefront-backend/internal/product"
)

// SectionLimit caps how many products each landing-page category shows and
// how many similar products a detail page suggests.
const SectionLimit = 8

// Section is one landing-page row: an active category with its newest
// active products.
type Section struct {
	Category category.Category `json:"category"`
	Products []product.Product `json:"products"`
}

// Detail is the public product page payload.
type Detail struct {
	Product product.Product   `json:"product"`
	Similar []product.Product `json:"similar"`
}
