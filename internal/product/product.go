package product

import (
	"time"

	"github.com/modernhome/storefront-backend/internal/image"
)

// Product maps to the `products` table. JSON tags follow the camelCase
// convention used elsewhere in the project.
type Product struct {
	ID            int           `json:"productId"`
	CategoryID    int           `json:"categoryId"`
	CategoryName  *string       `json:"categoryName,omitempty"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Price         float64       `json:"price"`
	SalePrice     *float64      `json:"salePrice,omitempty"`
	StockQuantity int           `json:"stockQuantity"`
	IsActive      bool          `json:"isActive"`
	IsFeatured    bool          `json:"isFeatured"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	Tags          []Tag         `json:"tags,omitempty"`
	Images        []image.Image `json:"images,omitempty"`
}

// Tag is a label attached to products, many-to-many via `product_tag`.
type Tag struct {
	ID   int    `json:"tagId"`
	Name string `json:"name"`
}

// EffectivePrice is what the customer actually pays: the sale price when one
// is set, the regular price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// Command is the typed payload for product create and update.
type Command struct {
	CategoryID        int      `json:"categoryId" form:"categoryId"`
	Name              string   `json:"name" form:"name"`
	Description       string   `json:"description" form:"description"`
	Price             float64  `json:"price" form:"price"`
	SalePrice         *float64 `json:"salePrice" form:"salePrice"`
	StockQuantity     int      `json:"stockQuantity" form:"stockQuantity"`
	IsActive          *bool    `json:"isActive" form:"isActive"`
	IsFeatured        *bool    `json:"isFeatured" form:"isFeatured"`
	TagIDs            []int    `json:"tagIds" form:"tagIds"`
	PrimaryImageIndex *int     `json:"primaryImageIndex" form:"primaryImageIndex"`
}

// ValidateCommand checks a command and returns all field-level messages
// together; an empty map means the command is valid. Existence checks against
// the store happen in the service, not here.
func ValidateCommand(cmd Command) map[string]string {
	errs := map[string]string{}
	if cmd.CategoryID <= 0 {
		errs["categoryId"] = "category is required"
	}
	if cmd.Name == "" {
		errs["name"] = "name is required"
	} else if len(cmd.Name) > 255 {
		errs["name"] = "name exceeds maximum length"
	}
	if cmd.Price < 0 {
		errs["price"] = "price cannot be less than 0"
	}
	if cmd.SalePrice != nil {
		if *cmd.SalePrice < 0 {
			errs["salePrice"] = "sale price cannot be less than 0"
		} else if *cmd.SalePrice >= cmd.Price {
			errs["salePrice"] = "sale price must be less than regular price"
		}
	}
	if cmd.StockQuantity < 0 {
		errs["stockQuantity"] = "stock quantity cannot be less than 0"
	}
	return errs
}
