package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

// FulfillMatch executes one fulfillment atomically:
//   - the transfer becomes matched and records the deposit id,
//   - the parent order flips to paid,
//   - every deposit of the order (the matched one and its siblings on any
//     network) is deleted,
//   - an order_status_changed outbox row is enqueued.
//
// Returns the deposits that were removed so the caller can emit
// PendingDepositChanged events after commit. A transfer or order that
// already left its expected state aborts the whole transaction.
func (r *Repository) FulfillMatch(ctx context.Context, f model.Fulfillment) (removed []model.PendingDeposit, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("fulfill_match", err, started)
	}()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tag, err := tx.Exec(ctx, fmt.Sprintf(`
UPDATE %s
SET status = 'matched', fulfillment_id = $2
WHERE id = $1 AND status = 'waiting_for_match'`, transfersTable(f.Network)), f.TransferID, f.DepositID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("transfer %d is not waiting for match", f.TransferID)
	}

	tag, err = tx.Exec(ctx, `
UPDATE order_records SET status = 'paid'
WHERE order_id = $1 AND status = 'pending'`, f.OrderID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrOrderNotPending
	}

	removed, err = deleteDepositsForOrdersTx(ctx, tx, []uuid.UUID{f.OrderID})
	if err != nil {
		return nil, err
	}

	if err = enqueueWebhookTx(ctx, tx, outboxInsert{
		OrderID: &f.OrderID,
		Kind:    model.WebhookOrderStatusChanged,
	}); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return removed, nil
}

// ExpireOrders moves every pending order older than ttl to expired, deletes
// its deposits and enqueues a webhook, all in one transaction.
func (r *Repository) ExpireOrders(ctx context.Context, ttl time.Duration) (expired []model.ExpiredOrder, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("expire_orders", err, started)
	}()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	rows, err := tx.Query(ctx, `
UPDATE order_records SET status = 'expired'
WHERE status = 'pending' AND created_at + make_interval(secs => $1) <= now()
RETURNING`+orderColumns, ttl.Seconds())
	if err != nil {
		return nil, err
	}
	var orders []model.Order
	for rows.Next() {
		o, scanErr := scanOrder(rows)
		if scanErr != nil {
			rows.Close()
			return nil, scanErr
		}
		orders = append(orders, o)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, tx.Commit(ctx)
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.OrderID)
	}
	removed, err := deleteDepositsForOrdersTx(ctx, tx, orderIDs)
	if err != nil {
		return nil, err
	}

	removedByOrder := make(map[uuid.UUID][]model.PendingDeposit, len(orders))
	for _, d := range removed {
		removedByOrder[d.OrderID] = append(removedByOrder[d.OrderID], d)
	}

	for _, o := range orders {
		orderID := o.OrderID
		if err = enqueueWebhookTx(ctx, tx, outboxInsert{
			OrderID: &orderID,
			Kind:    model.WebhookOrderStatusChanged,
		}); err != nil {
			return nil, err
		}
		expired = append(expired, model.ExpiredOrder{Order: o, Removed: removedByOrder[orderID]})
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return expired, nil
}
