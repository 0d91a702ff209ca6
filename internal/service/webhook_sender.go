package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/clock"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/signature"
)

const (
	// maxWebhookAttempts caps the delivery chain; maxBackoffExponent caps
	// retryDelay at 2^11 seconds. The exponent is the retry count before the
	// failure and the twelfth failure ends the chain, so the longest wait a
	// chain actually schedules is 2^10 seconds.
	maxWebhookAttempts = 12
	maxBackoffExponent = 11

	outboxPollInterval = 2 * time.Second
)

// webhookPayload is the wire body of every delivery.
type webhookPayload struct {
	EventID         string `json:"event_id"`
	EventKind       string `json:"event_kind"`
	OrderID         string `json:"order_id,omitempty"`
	MerchantOrderID string `json:"merchant_order_id,omitempty"`
	Status          string `json:"status,omitempty"`
	Timestamp       int64  `json:"timestamp"`
	Detail          string `json:"detail,omitempty"`
}

// WebhookSender drains the webhook outbox: due rows are POSTed to the
// merchant with a signed body; failures reschedule with exponential backoff
// until the chain dies after maxWebhookAttempts.
//
// Delivery is at-least-once; merchants deduplicate on event_id.
type WebhookSender struct {
	logger     *zap.Logger
	store      OutboxStore
	cfg        ConfigSource
	metrics    WebhookMetrics
	httpClient *http.Client
	sleep      func(context.Context, time.Duration) error
}

// NewWebhookSender builds the sender.
func NewWebhookSender(logger *zap.Logger, store OutboxStore, cfg ConfigSource, metrics WebhookMetrics) (*WebhookSender, error) {
	if metrics == nil {
		return nil, errors.New("webhook sender metrics is required")
	}
	return &WebhookSender{
		logger:     logger.Named("webhookSender"),
		store:      store,
		cfg:        cfg,
		metrics:    metrics,
		httpClient: &http.Client{},
		sleep:      clock.SleepWithContext,
	}, nil
}

// Name implements Component.
func (s *WebhookSender) Name() string { return "webhook_sender" }

// Run polls the outbox until the context is canceled. Cancellation is checked
// before each row, and the request in flight is canceled with the context
// rather than drained; rows not yet delivered stay due for a later run.
func (s *WebhookSender) Run(ctx context.Context) error {
	s.logger.Info("webhook sender started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.processBatch(ctx); err != nil {
			s.logger.Error("outbox poll failed", zap.Error(err))
		}
		if err := s.sleep(ctx, outboxPollInterval); err != nil {
			return err
		}
	}
}

func (s *WebhookSender) processBatch(ctx context.Context) error {
	snap := s.cfg.Current()
	due, err := s.store.DueWebhooks(ctx, snap.WebhookBatchLimit)
	if err != nil {
		return fmt.Errorf("load due webhooks: %w", err)
	}
	if len(due) == 0 {
		return nil
	}
	s.metrics.ObserveBatch(len(due))

	for _, row := range due {
		if err := ctx.Err(); err != nil {
			return err
		}
		// The delivery outlives cancellation so an in-flight request and
		// its outbox update complete during shutdown.
		s.deliver(context.WithoutCancel(ctx), row)
	}
	return nil
}

// deliver attempts one row and advances its state machine.
func (s *WebhookSender) deliver(ctx context.Context, row model.WebhookOutboxRow) {
	started := time.Now()
	err := s.attempt(ctx, row)
	s.metrics.ObserveDelivery(string(row.Kind), err, started)

	if err == nil {
		return
	}
	if errors.Is(err, errSkipped) {
		return
	}

	dead := row.RetryCount+1 >= maxWebhookAttempts
	next := time.Now().Add(retryDelay(row.RetryCount))
	if markErr := s.store.MarkWebhookFailed(ctx, row.ID, err.Error(), next, dead); markErr != nil {
		s.logger.Error("mark webhook failed errored", zap.Int64("outbox_id", row.ID), zap.Error(markErr))
		return
	}
	if row.OrderID != nil {
		if incErr := s.store.IncrementOrderWebhookRetry(ctx, *row.OrderID); incErr != nil {
			s.logger.Error("increment order retry count failed", zap.Error(incErr))
		}
	}
	if dead {
		s.metrics.ObserveDead()
		s.logger.Warn("webhook exhausted retries",
			zap.Int64("outbox_id", row.ID),
			zap.String("event_id", row.EventID.String()),
			zap.Error(err))
	} else {
		s.logger.Debug("webhook attempt failed",
			zap.Int64("outbox_id", row.ID),
			zap.Int32("retry_count", row.RetryCount+1),
			zap.Time("next_attempt_at", next),
			zap.Error(err))
	}
}

// errSkipped marks rows that cannot be delivered but are not failures
// (no URL configured). They are finalized without an HTTP attempt.
var errSkipped = errors.New("webhook skipped")

func (s *WebhookSender) attempt(ctx context.Context, row model.WebhookOutboxRow) error {
	snap := s.cfg.Current()

	url, payload, err := s.buildPayload(ctx, row)
	if err != nil {
		return err
	}
	if url == "" {
		// No endpoint configured for this event kind; retrying would never
		// help, so the row is closed out.
		if err := s.store.MarkWebhookDelivered(ctx, row.ID, ""); err != nil {
			return err
		}
		s.logger.Debug("webhook skipped, no url configured", zap.Int64("outbox_id", row.ID))
		return errSkipped
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, snap.WebhookTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signature.Header, signature.Sign(snap.Merchant.Secret, body))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Success is 200 OK exactly; any other status counts as a failed
	// attempt.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook status %d", resp.StatusCode)
	}

	hash := sha256.Sum256(body)
	if err := s.store.MarkWebhookDelivered(ctx, row.ID, hex.EncodeToString(hash[:])); err != nil {
		return fmt.Errorf("mark webhook delivered: %w", err)
	}
	if row.OrderID != nil {
		if err := s.store.MarkOrderWebhookSuccess(ctx, *row.OrderID); err != nil {
			s.logger.Error("mark order webhook success failed", zap.Error(err))
		}
	}
	s.logger.Info("webhook delivered",
		zap.Int64("outbox_id", row.ID),
		zap.String("event_id", row.EventID.String()),
		zap.String("kind", string(row.Kind)))
	return nil
}

// buildPayload resolves the target URL and wire body of a row.
func (s *WebhookSender) buildPayload(ctx context.Context, row model.WebhookOutboxRow) (string, webhookPayload, error) {
	snap := s.cfg.Current()
	payload := webhookPayload{
		EventID:   row.EventID.String(),
		EventKind: string(row.Kind),
		Timestamp: time.Now().Unix(),
	}

	switch row.Kind {
	case model.WebhookOrderStatusChanged:
		if row.OrderID == nil {
			return "", payload, fmt.Errorf("outbox row %d has no order id", row.ID)
		}
		order, err := s.store.GetOrder(ctx, *row.OrderID)
		if err != nil {
			return "", payload, fmt.Errorf("load order for webhook: %w", err)
		}
		payload.OrderID = order.OrderID.String()
		payload.MerchantOrderID = order.MerchantOrderID
		payload.Status = string(order.Status)
		payload.Detail = order.Amount.String()
		return order.WebhookURL, payload, nil

	case model.WebhookUnknownPayment:
		if row.TransferID != nil {
			payload.Detail = fmt.Sprintf("transfer:%d", *row.TransferID)
		}
		return snap.Merchant.UnknownPaymentWebhookURL, payload, nil

	default:
		return "", payload, fmt.Errorf("unknown webhook kind %q", row.Kind)
	}
}

// retryDelay returns the wait before the attempt after retryCount failures:
// 2^retryCount seconds, capped at 2^11.
func retryDelay(retryCount int32) time.Duration {
	exponent := retryCount
	if exponent > maxBackoffExponent {
		exponent = maxBackoffExponent
	}
	return time.Duration(1<<uint(exponent)) * time.Second
}
