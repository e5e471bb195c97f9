package dashboard

import "time"

// RecentLimit is how many recent rows each dashboard list shows.
const RecentLimit = 5

// Stats is the admin dashboard payload.
type Stats struct {
	TotalProducts   int              `json:"totalProducts"`
	TotalCategories int              `json:"totalCategories"`
	TotalMessages   int              `json:"totalMessages"`
	RecentProducts  []ProductSummary `json:"recentProducts"`
	RecentMessages  []MessageSummary `json:"recentMessages"`
}

type ProductSummary struct {
	ID         int       `json:"productId"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	IsFeatured bool      `json:"isFeatured"`
	CreatedAt  time.Time `json:"createdAt"`
}

type MessageSummary struct {
	ID        int       `json:"messageId"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Subject   *string   `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}
