package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

// CreateDeposit inserts a pending deposit for a pending order. Returns
// ErrOrderNotPending when the parent order already left the pending state.
func (r *Repository) CreateDeposit(ctx context.Context, ins model.DepositInsert) (deposit model.PendingDeposit, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("create_deposit", err, started)
	}()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return model.PendingDeposit{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var status model.OrderStatus
	err = tx.QueryRow(ctx, `SELECT status FROM order_records WHERE order_id = $1 FOR UPDATE`, ins.OrderID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PendingDeposit{}, ErrOrderNotFound
		}
		return model.PendingDeposit{}, err
	}
	if status != model.OrderPending {
		return model.PendingDeposit{}, ErrOrderNotPending
	}

	var row pgx.Row
	if ins.Network.IsTron() {
		row = tx.QueryRow(ctx, `
INSERT INTO trc20_pending_deposits ("order", token_name, user_address, wallet_address, value)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, started_at, last_scanned_at`,
			ins.OrderID, ins.Token, ins.UserAddress, ins.WalletAddress, ins.ExpectedValue)
	} else {
		row = tx.QueryRow(ctx, `
INSERT INTO erc20_pending_deposits ("order", token_name, chain, user_address, wallet_address, value)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, started_at, last_scanned_at`,
			ins.OrderID, ins.Token, ins.Network, ins.UserAddress, ins.WalletAddress, ins.ExpectedValue)
	}

	deposit = model.PendingDeposit{
		OrderID:       ins.OrderID,
		Token:         ins.Token,
		Network:       ins.Network,
		UserAddress:   ins.UserAddress,
		WalletAddress: ins.WalletAddress,
		ExpectedValue: ins.ExpectedValue,
	}
	if err = row.Scan(&deposit.ID, &deposit.StartedAt, &deposit.LastScannedAt); err != nil {
		return model.PendingDeposit{}, err
	}

	if err = tx.Commit(ctx); err != nil {
		return model.PendingDeposit{}, err
	}
	return deposit, nil
}

// CountPendingDeposits returns the number of active watch-slots for a pair,
// counting only deposits whose parent order is still pending.
func (r *Repository) CountPendingDeposits(ctx context.Context, pair model.Pair) (count int64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("count_pending_deposits", err, started)
	}()

	if pair.Network.IsTron() {
		err = r.pool.QueryRow(ctx, `
SELECT count(*)
FROM trc20_pending_deposits d
JOIN order_records o ON d."order" = o.order_id
WHERE d.token_name = $1 AND o.status = 'pending'`, pair.Token).Scan(&count)
		return count, err
	}

	err = r.pool.QueryRow(ctx, `
SELECT count(*)
FROM erc20_pending_deposits d
JOIN order_records o ON d."order" = o.order_id
WHERE d.chain = $1 AND d.token_name = $2 AND o.status = 'pending'`, pair.Network, pair.Token).Scan(&count)
	return count, err
}

// PendingDepositsForMatching returns the active watch-slots of a pair.
func (r *Repository) PendingDepositsForMatching(ctx context.Context, pair model.Pair) (deposits []model.PendingDeposit, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("pending_deposits_for_matching", err, started)
	}()

	var rows pgx.Rows
	if pair.Network.IsTron() {
		rows, err = r.pool.Query(ctx, `
SELECT d.id, d."order", d.token_name, d.user_address, d.wallet_address, d.value, d.started_at, d.last_scanned_at
FROM trc20_pending_deposits d
JOIN order_records o ON d."order" = o.order_id
WHERE d.token_name = $1 AND o.status = 'pending'
ORDER BY d.started_at, d.id`, pair.Token)
	} else {
		rows, err = r.pool.Query(ctx, `
SELECT d.id, d."order", d.token_name, d.user_address, d.wallet_address, d.value, d.started_at, d.last_scanned_at
FROM erc20_pending_deposits d
JOIN order_records o ON d."order" = o.order_id
WHERE d.chain = $1 AND d.token_name = $2 AND o.status = 'pending'
ORDER BY d.started_at, d.id`, pair.Network, pair.Token)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		d := model.PendingDeposit{Network: pair.Network}
		if err = rows.Scan(&d.ID, &d.OrderID, &d.Token, &d.UserAddress, &d.WalletAddress, &d.ExpectedValue, &d.StartedAt, &d.LastScannedAt); err != nil {
			return nil, err
		}
		deposits = append(deposits, d)
	}
	return deposits, rows.Err()
}

// TouchDepositsScanned bumps last_scanned_at for a pair after a sync tick.
func (r *Repository) TouchDepositsScanned(ctx context.Context, pair model.Pair) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("touch_deposits_scanned", err, started)
	}()

	if pair.Network.IsTron() {
		_, err = r.pool.Exec(ctx, `
UPDATE trc20_pending_deposits SET last_scanned_at = now() WHERE token_name = $1`, pair.Token)
		return err
	}
	_, err = r.pool.Exec(ctx, `
UPDATE erc20_pending_deposits SET last_scanned_at = now() WHERE chain = $1 AND token_name = $2`, pair.Network, pair.Token)
	return err
}

// deleteDepositsForOrdersTx removes every deposit of the given orders from
// both chain-family tables and returns the removed rows.
func deleteDepositsForOrdersTx(ctx context.Context, tx pgx.Tx, orderIDs []uuid.UUID) ([]model.PendingDeposit, error) {
	var removed []model.PendingDeposit

	rows, err := tx.Query(ctx, `
DELETE FROM erc20_pending_deposits
WHERE "order" = ANY($1)
RETURNING id, "order", token_name, chain, user_address, wallet_address, value, started_at, last_scanned_at`, orderIDs)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var d model.PendingDeposit
		if err := rows.Scan(&d.ID, &d.OrderID, &d.Token, &d.Network, &d.UserAddress, &d.WalletAddress, &d.ExpectedValue, &d.StartedAt, &d.LastScannedAt); err != nil {
			rows.Close()
			return nil, err
		}
		removed = append(removed, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = tx.Query(ctx, `
DELETE FROM trc20_pending_deposits
WHERE "order" = ANY($1)
RETURNING id, "order", token_name, user_address, wallet_address, value, started_at, last_scanned_at`, orderIDs)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		d := model.PendingDeposit{Network: model.Tron}
		if err := rows.Scan(&d.ID, &d.OrderID, &d.Token, &d.UserAddress, &d.WalletAddress, &d.ExpectedValue, &d.StartedAt, &d.LastScannedAt); err != nil {
			rows.Close()
			return nil, err
		}
		removed = append(removed, d)
	}
	rows.Close()
	return removed, rows.Err()
}
