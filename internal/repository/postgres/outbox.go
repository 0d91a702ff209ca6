package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

// ErrOutboxRowNotFound is returned when an outbox row id resolves to no row.
var ErrOutboxRowNotFound = errors.New("webhook outbox row not found")

type outboxInsert struct {
	OrderID    *uuid.UUID
	TransferID *int64
	Kind       model.WebhookKind
}

func enqueueWebhookTx(ctx context.Context, tx pgx.Tx, ins outboxInsert) error {
	_, err := tx.Exec(ctx, `
INSERT INTO webhook_outbox (event_id, order_id, transfer_id, kind)
VALUES ($1, $2, $3, $4)`, uuid.New(), ins.OrderID, ins.TransferID, ins.Kind)
	return err
}

// EnqueueUnknownPaymentWebhook queues an unknown-payment notification for a
// transfer outside any active deposit.
func (r *Repository) EnqueueUnknownPaymentWebhook(ctx context.Context, transferID int64) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("enqueue_unknown_payment_webhook", err, started)
	}()

	_, err = r.pool.Exec(ctx, `
INSERT INTO webhook_outbox (event_id, transfer_id, kind)
VALUES ($1, $2, 'unknown_payment')`, uuid.New(), transferID)
	return err
}

const outboxColumns = `
    id,
    event_id,
    order_id,
    transfer_id,
    kind,
    payload_hash,
    created_at,
    retry_count,
    next_attempt_at,
    last_error,
    state`

func scanOutboxRow(row pgx.Row) (model.WebhookOutboxRow, error) {
	var w model.WebhookOutboxRow
	err := row.Scan(
		&w.ID,
		&w.EventID,
		&w.OrderID,
		&w.TransferID,
		&w.Kind,
		&w.PayloadHash,
		&w.CreatedAt,
		&w.RetryCount,
		&w.NextAttemptAt,
		&w.LastError,
		&w.State,
	)
	return w, err
}

// DueWebhooks returns deliverable rows ordered by next_attempt_at.
func (r *Repository) DueWebhooks(ctx context.Context, limit int) (due []model.WebhookOutboxRow, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("due_webhooks", err, started)
	}()

	rows, err := r.pool.Query(ctx, `
SELECT`+outboxColumns+`
FROM webhook_outbox
WHERE state IN ('queued', 'retry_pending') AND next_attempt_at <= now()
ORDER BY next_attempt_at
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		w, scanErr := scanOutboxRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		due = append(due, w)
	}
	return due, rows.Err()
}

// MarkWebhookDelivered finalizes a successful delivery and records the
// payload hash of the body that was sent.
func (r *Repository) MarkWebhookDelivered(ctx context.Context, id int64, payloadHash string) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("mark_webhook_delivered", err, started)
	}()

	_, err = r.pool.Exec(ctx, `
UPDATE webhook_outbox
SET state = 'delivered', payload_hash = $2
WHERE id = $1`, id, payloadHash)
	return err
}

// MarkWebhookFailed advances the retry state machine of a failed attempt.
// dead finalizes the row; otherwise it is scheduled at nextAttempt.
func (r *Repository) MarkWebhookFailed(ctx context.Context, id int64, lastError string, nextAttempt time.Time, dead bool) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("mark_webhook_failed", err, started)
	}()

	if dead {
		_, err = r.pool.Exec(ctx, `
UPDATE webhook_outbox
SET state = 'dead', retry_count = retry_count + 1, last_error = $2
WHERE id = $1`, id, lastError)
		return err
	}
	_, err = r.pool.Exec(ctx, `
UPDATE webhook_outbox
SET state = 'retry_pending',
    retry_count = retry_count + 1,
    next_attempt_at = $3,
    last_error = $2
WHERE id = $1`, id, lastError, nextAttempt)
	return err
}

// ResendWebhook inserts a fresh delivery chain referencing the same order or
// transfer as an existing row. History is never mutated.
func (r *Repository) ResendWebhook(ctx context.Context, id int64) (row model.WebhookOutboxRow, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("resend_webhook", err, started)
	}()

	row, err = scanOutboxRow(r.pool.QueryRow(ctx, `
INSERT INTO webhook_outbox (event_id, order_id, transfer_id, kind)
SELECT $2, order_id, transfer_id, kind
FROM webhook_outbox
WHERE id = $1
RETURNING`+outboxColumns, id, uuid.New()))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.WebhookOutboxRow{}, ErrOutboxRowNotFound
	}
	return row, err
}

// DeadWebhooks lists rows that exhausted their retries, for the manual
// resend surface.
func (r *Repository) DeadWebhooks(ctx context.Context, limit int) (dead []model.WebhookOutboxRow, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("dead_webhooks", err, started)
	}()

	rows, err := r.pool.Query(ctx, `
SELECT`+outboxColumns+`
FROM webhook_outbox
WHERE state = 'dead'
ORDER BY created_at DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		w, scanErr := scanOutboxRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		dead = append(dead, w)
	}
	return dead, rows.Err()
}
