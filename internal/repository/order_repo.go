package repository

import (
	"context"

	"github.com/himanshu123g/fitlife-plus/internal/models"
)

type CreateOrderInput struct {
	UserID         int64
	Plan           string
	AmountPaise    int64
	Currency       string
	GatewayOrderID string
	Receipt        string
}

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = "id, user_id, plan, amount_paise, currency, gateway_order_id, receipt, status, created_at, updated_at"

func scanOrder(row interface{ Scan(dest ...any) error }, order *models.PaymentOrder) error {
	return row.Scan(
		&order.ID,
		&order.UserID,
		&order.Plan,
		&order.AmountPaise,
		&order.Currency,
		&order.GatewayOrderID,
		&order.Receipt,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
}

func (r *OrderRepository) Create(ctx context.Context, input CreateOrderInput) (*models.PaymentOrder, error) {
	query := `
		INSERT INTO payment_orders (user_id, plan, amount_paise, currency, gateway_order_id, receipt, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'created')
		RETURNING ` + orderColumns

	var order models.PaymentOrder
	err := scanOrder(r.db.QueryRow(
		ctx,
		query,
		input.UserID,
		input.Plan,
		input.AmountPaise,
		input.Currency,
		input.GatewayOrderID,
		input.Receipt,
	), &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*models.PaymentOrder, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM payment_orders
		WHERE gateway_order_id = $1
	`
	var order models.PaymentOrder
	if err := scanOrder(r.db.QueryRow(ctx, query, gatewayOrderID), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// MarkPaidIfCreated flips an order from created to paid. A miss surfaces as
// pgx.ErrNoRows, which callers treat as "already processed".
func (r *OrderRepository) MarkPaidIfCreated(ctx context.Context, orderID int64) (*models.PaymentOrder, error) {
	query := `
		UPDATE payment_orders
		SET status = 'paid', updated_at = NOW()
		WHERE id = $1 AND status = 'created'
		RETURNING ` + orderColumns

	var order models.PaymentOrder
	if err := scanOrder(r.db.QueryRow(ctx, query, orderID), &order); err != nil {
		return nil, err
	}
	return &order, nil
}
