package models

import "time"

// PaymentOrder tracks one membership purchase attempt against the payment
// gateway. GatewayOrderID is the gateway's opaque order handle; the row moves
// from "created" to "paid" only after signature verification succeeds.
type PaymentOrder struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Plan           string    `json:"plan"`
	AmountPaise    int64     `json:"amount_paise"`
	Currency       string    `json:"currency"`
	GatewayOrderID string    `json:"gateway_order_id"`
	Receipt        string    `json:"receipt"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

const (
	OrderStatusCreated = "created"
	OrderStatusPaid    = "paid"
)
