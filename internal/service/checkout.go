package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/events"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

// CheckoutStore is the persistence surface of the order-facing operations.
type CheckoutStore interface {
	CreateOrder(ctx context.Context, merchantOrderID string, amount decimal.Decimal, webhookURL string) (model.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (model.Order, error)
	ListOrders(ctx context.Context, status *model.OrderStatus, limit, offset int64) ([]model.Order, error)
	CreateDeposit(ctx context.Context, ins model.DepositInsert) (model.PendingDeposit, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID) ([]model.PendingDeposit, error)
}

// Checkout exposes the order and deposit mutations the API surface calls.
// It is the seam where deposit changes enter the event pipeline: every
// created or removed deposit is announced on the bus so the PoolingManager
// reschedules the affected pair.
type Checkout struct {
	logger *zap.Logger
	store  CheckoutStore
	bus    *events.Bus
	cfg    ConfigSource
}

// NewCheckout builds the order-facing service.
func NewCheckout(logger *zap.Logger, store CheckoutStore, bus *events.Bus, cfg ConfigSource) *Checkout {
	return &Checkout{
		logger: logger.Named("checkout"),
		store:  store,
		bus:    bus,
		cfg:    cfg,
	}
}

// CreateOrder registers a new pending order.
func (c *Checkout) CreateOrder(ctx context.Context, merchantOrderID string, amount decimal.Decimal, webhookURL string) (model.Order, error) {
	if !amount.IsPositive() {
		return model.Order{}, fmt.Errorf("order amount must be positive")
	}
	order, err := c.store.CreateOrder(ctx, merchantOrderID, amount, webhookURL)
	if err != nil {
		return model.Order{}, err
	}
	c.logger.Info("order created",
		zap.String("order_id", order.OrderID.String()),
		zap.String("merchant_order_id", merchantOrderID))
	return order, nil
}

// GetOrder returns one order.
func (c *Checkout) GetOrder(ctx context.Context, orderID uuid.UUID) (model.Order, error) {
	return c.store.GetOrder(ctx, orderID)
}

// ListOrders pages through orders, optionally filtered by status.
func (c *Checkout) ListOrders(ctx context.Context, status *model.OrderStatus, limit, offset int64) ([]model.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return c.store.ListOrders(ctx, status, limit, offset)
}

// CreateDeposit opens a watch-slot on the pair the payer picked. The wallet
// address comes from the merchant wallet set; the expected value is the
// order amount. The created deposit is announced on the bus.
func (c *Checkout) CreateDeposit(ctx context.Context, orderID uuid.UUID, network model.Network, token model.Token, userAddress *string) (model.PendingDeposit, error) {
	snap := c.cfg.Current()
	pair := model.Pair{Network: network, Token: token}
	wallets := snap.WalletsFor(pair)
	if len(wallets) == 0 {
		return model.PendingDeposit{}, fmt.Errorf("pair %s is not enabled", pair)
	}

	order, err := c.store.GetOrder(ctx, orderID)
	if err != nil {
		return model.PendingDeposit{}, err
	}

	deposit, err := c.store.CreateDeposit(ctx, model.DepositInsert{
		OrderID:       orderID,
		Token:         token,
		Network:       network,
		UserAddress:   userAddress,
		WalletAddress: wallets[0].Address,
		ExpectedValue: order.Amount,
	})
	if err != nil {
		return model.PendingDeposit{}, err
	}

	c.bus.PendingDepositChanged.Publish(events.PendingDepositChanged{
		OrderID: orderID,
		Network: network,
		Token:   token,
		Kind:    events.DepositCreated,
	})
	c.logger.Info("deposit created",
		zap.String("order_id", orderID.String()),
		zap.String("network", string(network)),
		zap.String("token", string(token)))
	return deposit, nil
}

// CancelOrder cancels a pending order and announces its removed deposits.
func (c *Checkout) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	removed, err := c.store.CancelOrder(ctx, orderID)
	if err != nil {
		return err
	}
	for _, d := range removed {
		c.bus.PendingDepositChanged.Publish(events.PendingDepositChanged{
			OrderID: d.OrderID,
			Network: d.Network,
			Token:   d.Token,
			Kind:    events.DepositRemoved,
		})
	}
	c.logger.Info("order cancelled",
		zap.String("order_id", orderID.String()),
		zap.Int("deposits_removed", len(removed)))
	return nil
}
