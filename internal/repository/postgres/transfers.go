package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

// InsertTransfers performs one batched insert with ON CONFLICT DO NOTHING on
// the (txn_hash, network) key and returns the ids of the rows that were
// actually inserted. Explorer replays produce an empty return set.
//
// All inserts in one call must belong to the same network family.
func (r *Repository) InsertTransfers(ctx context.Context, inserts []model.TransferInsert) (ids []int64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("insert_transfers", err, started)
	}()

	if len(inserts) == 0 {
		return nil, nil
	}

	tron := inserts[0].Network.IsTron()
	for _, ins := range inserts {
		if ins.Network.IsTron() != tron {
			return nil, fmt.Errorf("mixed network families in one insert batch")
		}
	}

	var sb strings.Builder
	var args []any
	if tron {
		sb.WriteString(`
INSERT INTO trc20_token_transfers (token_name, from_address, to_address, txn_hash, value, block_number, block_timestamp)
VALUES `)
		for i, ins := range inserts {
			if i > 0 {
				sb.WriteString(", ")
			}
			base := len(args)
			fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7)
			args = append(args, ins.Token, ins.FromAddress, ins.ToAddress, ins.TxnHash, ins.Value, ins.BlockNumber, ins.BlockTimestamp)
		}
		sb.WriteString(" ON CONFLICT (txn_hash) DO NOTHING RETURNING id")
	} else {
		sb.WriteString(`
INSERT INTO erc20_token_transfers (token_name, chain, from_address, to_address, txn_hash, value, block_number, block_timestamp)
VALUES `)
		for i, ins := range inserts {
			if i > 0 {
				sb.WriteString(", ")
			}
			base := len(args)
			fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8)
			args = append(args, ins.Token, ins.Network, ins.FromAddress, ins.ToAddress, ins.TxnHash, ins.Value, ins.BlockNumber, ins.BlockTimestamp)
		}
		sb.WriteString(" ON CONFLICT (txn_hash, chain) DO NOTHING RETURNING id")
	}

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UnconfirmedTransfers returns unconfirmed transfers of a pair created within
// the retention window, oldest first.
func (r *Repository) UnconfirmedTransfers(ctx context.Context, pair model.Pair, window time.Duration) (transfers []model.Transfer, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("unconfirmed_transfers", err, started)
	}()

	var rows pgx.Rows
	if pair.Network.IsTron() {
		rows, err = r.pool.Query(ctx, `
SELECT id, token_name, from_address, to_address, txn_hash, value, block_number, block_timestamp, blockchain_confirmed, created_at, status, fulfillment_id
FROM trc20_token_transfers
WHERE token_name = $1
  AND status = 'waiting_for_confirmation'
  AND created_at > now() - make_interval(secs => $2)
ORDER BY created_at`, pair.Token, window.Seconds())
	} else {
		rows, err = r.pool.Query(ctx, `
SELECT id, token_name, from_address, to_address, txn_hash, value, block_number, block_timestamp, blockchain_confirmed, created_at, status, fulfillment_id
FROM erc20_token_transfers
WHERE chain = $1
  AND token_name = $2
  AND status = 'waiting_for_confirmation'
  AND created_at > now() - make_interval(secs => $3)
ORDER BY created_at`, pair.Network, pair.Token, window.Seconds())
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		t := model.Transfer{Network: pair.Network}
		if err = rows.Scan(&t.ID, &t.Token, &t.FromAddress, &t.ToAddress, &t.TxnHash, &t.Value, &t.BlockNumber, &t.BlockTimestamp, &t.BlockchainConfirmed, &t.CreatedAt, &t.Status, &t.FulfillmentID); err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}

// MarkTransfersConfirmed flips confirmed transfers to waiting_for_match.
func (r *Repository) MarkTransfersConfirmed(ctx context.Context, network model.Network, ids []int64) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("mark_transfers_confirmed", err, started)
	}()

	if len(ids) == 0 {
		return nil
	}
	_, err = r.pool.Exec(ctx, fmt.Sprintf(`
UPDATE %s
SET blockchain_confirmed = TRUE, status = 'waiting_for_match'
WHERE id = ANY($1) AND status = 'waiting_for_confirmation'`, transfersTable(network)), ids)
	return err
}

// MarkTransfersFailedToConfirm finalizes transfers whose confirmation never
// arrived within the deadline. They are not re-queried again.
func (r *Repository) MarkTransfersFailedToConfirm(ctx context.Context, network model.Network, ids []int64) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("mark_transfers_failed_to_confirm", err, started)
	}()

	if len(ids) == 0 {
		return nil
	}
	_, err = r.pool.Exec(ctx, fmt.Sprintf(`
UPDATE %s
SET status = 'failed_to_confirm'
WHERE id = ANY($1) AND status = 'waiting_for_confirmation'`, transfersTable(network)), ids)
	return err
}

// TransfersWaitingForMatch returns the subset of the given ids that is ready
// for matching, ordered by (block_number, id) for EVM and block_timestamp
// for Tron.
func (r *Repository) TransfersWaitingForMatch(ctx context.Context, network model.Network, ids []int64) (transfers []model.Transfer, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("transfers_waiting_for_match", err, started)
	}()

	if len(ids) == 0 {
		return nil, nil
	}

	orderBy := "block_number, id"
	if network.IsTron() {
		orderBy = "block_timestamp, id"
	}
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
SELECT id, token_name, from_address, to_address, txn_hash, value, block_number, block_timestamp, blockchain_confirmed, created_at, status, fulfillment_id
FROM %s
WHERE id = ANY($1) AND status = 'waiting_for_match'
ORDER BY %s`, transfersTable(network), orderBy), ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		t := model.Transfer{Network: network}
		if err = rows.Scan(&t.ID, &t.Token, &t.FromAddress, &t.ToAddress, &t.TxnHash, &t.Value, &t.BlockNumber, &t.BlockTimestamp, &t.BlockchainConfirmed, &t.CreatedAt, &t.Status, &t.FulfillmentID); err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}

// MarkTransfersNoMatchedDeposit parks transfers that matched no deposit.
func (r *Repository) MarkTransfersNoMatchedDeposit(ctx context.Context, network model.Network, ids []int64) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("mark_transfers_no_matched_deposit", err, started)
	}()

	if len(ids) == 0 {
		return nil
	}
	_, err = r.pool.Exec(ctx, fmt.Sprintf(`
UPDATE %s
SET status = 'no_matched_deposit'
WHERE id = ANY($1) AND status = 'waiting_for_match'`, transfersTable(network)), ids)
	return err
}

// transfersTable routes a network to its chain-family table. The name is
// compile-time constant per family; no user input reaches it.
func transfersTable(network model.Network) string {
	if network.IsTron() {
		return "trc20_token_transfers"
	}
	return "erc20_token_transfers"
}
