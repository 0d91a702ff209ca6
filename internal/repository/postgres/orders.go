package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

const orderColumns = `
    order_id,
    merchant_order_id,
    amount,
    created_at,
    status,
    webhook_url,
    webhook_retry_count,
    webhook_last_tried_at,
    webhook_success_at`

func scanOrder(row pgx.Row) (model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.OrderID,
		&o.MerchantOrderID,
		&o.Amount,
		&o.CreatedAt,
		&o.Status,
		&o.WebhookURL,
		&o.WebhookRetryCount,
		&o.WebhookLastTriedAt,
		&o.WebhookSuccessAt,
	)
	return o, err
}

// CreateOrder inserts a pending order and returns the stored row.
func (r *Repository) CreateOrder(ctx context.Context, merchantOrderID string, amount decimal.Decimal, webhookURL string) (order model.Order, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("create_order", err, started)
	}()

	const query = `
INSERT INTO order_records (order_id, merchant_order_id, amount, webhook_url)
VALUES ($1, $2, $3, $4)
RETURNING` + orderColumns

	return scanOrder(r.pool.QueryRow(ctx, query, uuid.New(), merchantOrderID, amount, webhookURL))
}

// GetOrder returns an order by id, or ErrOrderNotFound.
func (r *Repository) GetOrder(ctx context.Context, orderID uuid.UUID) (order model.Order, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("get_order", err, started)
	}()

	const query = `SELECT` + orderColumns + ` FROM order_records WHERE order_id = $1`

	order, err = scanOrder(r.pool.QueryRow(ctx, query, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Order{}, ErrOrderNotFound
	}
	return order, err
}

// ListOrders returns orders newest-first with optional status filtering.
func (r *Repository) ListOrders(ctx context.Context, status *model.OrderStatus, limit, offset int64) (orders []model.Order, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("list_orders", err, started)
	}()

	const query = `
SELECT` + orderColumns + `
FROM order_records
WHERE ($1::order_status IS NULL OR status = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		o, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// CancelOrder moves a pending order to cancelled and removes its deposits.
// Returns the deposits that were removed so the caller can emit events.
func (r *Repository) CancelOrder(ctx context.Context, orderID uuid.UUID) (removed []model.PendingDeposit, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("cancel_order", err, started)
	}()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tag, err := tx.Exec(ctx, `
UPDATE order_records SET status = 'cancelled'
WHERE order_id = $1 AND status = 'pending'`, orderID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrOrderNotPending
	}

	removed, err = deleteDepositsForOrdersTx(ctx, tx, []uuid.UUID{orderID})
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return removed, nil
}

// IncrementOrderWebhookRetry mirrors a failed delivery onto the order row.
func (r *Repository) IncrementOrderWebhookRetry(ctx context.Context, orderID uuid.UUID) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("increment_order_webhook_retry", err, started)
	}()

	_, err = r.pool.Exec(ctx, `
UPDATE order_records
SET webhook_retry_count = webhook_retry_count + 1,
    webhook_last_tried_at = now()
WHERE order_id = $1`, orderID)
	return err
}

// MarkOrderWebhookSuccess records the first successful delivery time.
func (r *Repository) MarkOrderWebhookSuccess(ctx context.Context, orderID uuid.UUID) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("mark_order_webhook_success", err, started)
	}()

	_, err = r.pool.Exec(ctx, `
UPDATE order_records
SET webhook_success_at = now()
WHERE order_id = $1 AND webhook_success_at IS NULL`, orderID)
	return err
}
