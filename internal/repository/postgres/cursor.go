package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

// SyncCursor reads the materialized cursor view for a pair. A nil result
// means no transfer has ever been stored for the pair.
func (r *Repository) SyncCursor(ctx context.Context, pair model.Pair) (cursor *model.SyncCursor, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("sync_cursor", err, started)
	}()

	c := model.SyncCursor{Network: pair.Network, Token: pair.Token}
	if pair.Network.IsTron() {
		err = r.pool.QueryRow(ctx, `
SELECT cursor_block_timestamp, has_pending_confirmation
FROM trc20_sync_cursor
WHERE token_name = $1`, pair.Token).Scan(&c.Position, &c.HasPendingConfirmation)
	} else {
		err = r.pool.QueryRow(ctx, `
SELECT cursor_block_number, has_pending_confirmation
FROM erc20_sync_cursor
WHERE chain = $1 AND token_name = $2`, pair.Network, pair.Token).Scan(&c.Position, &c.HasPendingConfirmation)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
