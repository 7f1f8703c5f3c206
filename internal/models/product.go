package models

import "time"

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// PricedProduct is a Product with the caller's membership discount applied.
type PricedProduct struct {
	Product
	DiscountPercent int     `json:"discount_percent"`
	DiscountedPrice float64 `json:"discounted_price"`
}
