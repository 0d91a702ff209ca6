package model

import (
	"time"

	"github.com/google/uuid"
)

// WebhookKind names the merchant-facing event a webhook delivers.
type WebhookKind string

var (
	WebhookOrderStatusChanged WebhookKind = "order_status_changed"
	WebhookUnknownPayment     WebhookKind = "unknown_payment"
)

// WebhookState is the delivery state machine of an outbox row.
type WebhookState string

var (
	WebhookQueued       WebhookState = "queued"
	WebhookRetryPending WebhookState = "retry_pending"
	WebhookDelivered    WebhookState = "delivered"
	WebhookDead         WebhookState = "dead"
)

// WebhookOutboxRow is a persisted webhook delivery attempt chain. Rows are
// append-only: a manual resend inserts a fresh row instead of resetting an
// old one.
type WebhookOutboxRow struct {
	ID            int64
	EventID       uuid.UUID
	OrderID       *uuid.UUID
	TransferID    *int64
	Kind          WebhookKind
	PayloadHash   *string
	CreatedAt     time.Time
	RetryCount    int32
	NextAttemptAt time.Time
	LastError     *string
	State         WebhookState
}
