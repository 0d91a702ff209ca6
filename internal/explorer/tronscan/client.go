// Package tronscan implements the explorer adapter for the TronScan API.
package tronscan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/explorer"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
	"github.com/haruki-nikaidou/open-crypto-checkout/pkg/safe"
)

const (
	transfersURL = "https://apilist.tronscanapi.com/api/token_trc20/transfers"
	txInfoURL    = "https://apilist.tronscanapi.com/api/transaction-info"

	authHeader = "TRON-PRO-API-KEY"

	// pageLimit is the maximum page size the transfers endpoint accepts.
	pageLimit = 200

	requestsPerSecond = 4
)

// Client queries the TronScan API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	rl         ratelimit.Limiter
	metrics    explorer.Metrics
	logger     *zap.Logger
}

// New builds a TronScan client.
func New(apiKey string, metrics explorer.Metrics, logger *zap.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: explorer.RequestTimeout},
		rl:         ratelimit.New(requestsPerSecond),
		metrics:    metrics,
		logger:     logger.With(zap.String("network", string(model.Tron))),
	}
}

type transfersResponse struct {
	Total          int64          `json:"total"`
	RangeTotal     int64          `json:"rangeTotal"`
	TokenTransfers []transferItem `json:"token_transfers"`
}

type transferItem struct {
	TransactionID string    `json:"transaction_id"`
	BlockTs       int64     `json:"block_ts"`
	Block         int64     `json:"block"`
	FromAddress   string    `json:"from_address"`
	ToAddress     string    `json:"to_address"`
	Quant         string    `json:"quant"`
	TokenInfo     tokenInfo `json:"tokenInfo"`
}

type tokenInfo struct {
	Decimals int32 `json:"decimals"`
}

type txInfoResponse struct {
	Timestamp     int64 `json:"timestamp"`
	Confirmations int64 `json:"confirmations"`
	Confirmed     bool  `json:"confirmed"`
	Block         int64 `json:"block"`
}

// FetchTransfersSince returns transfers to the given wallets with
// block_ts >= cursor, ascending by block_ts. TronScan pages are walked until
// the range is exhausted or limit is reached.
func (c *Client) FetchTransfersSince(ctx context.Context, token model.Token, wallets []string, cursor int64, limit int) (records []explorer.TransferRecord, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("fetch_transfers", err, started)
	}()

	contract, err := explorer.ContractAddress(model.Pair{Network: model.Tron, Token: token})
	if err != nil {
		return nil, err
	}

	// TronScan speaks millisecond timestamps; cursors are stored in seconds.
	cursorMs := cursor * 1000

	for _, wallet := range wallets {
		items, fetchErr := c.fetchWalletTransfers(ctx, contract, wallet, cursorMs, limit)
		if fetchErr != nil {
			return nil, fetchErr
		}
		for _, item := range items {
			record, parseErr := parseItem(token, item)
			if parseErr != nil {
				return nil, parseErr
			}
			records = append(records, record)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].BlockTimestamp < records[j].BlockTimestamp
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	c.logger.Debug("fetched token transfers",
		zap.String("token", string(token)),
		zap.Int64("cursor", cursor),
		zap.Int("records", len(records)))
	return records, nil
}

// Confirmations returns the confirmation depth TronScan reports for a
// transaction.
func (c *Client) Confirmations(ctx context.Context, txnHash string) (confirmations int64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("confirmations", err, started)
	}()

	query := url.Values{"hash": {txnHash}}
	body, err := c.get(ctx, txInfoURL, query)
	if err != nil {
		return 0, err
	}

	var info txInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return 0, fmt.Errorf("decode transaction info: %w", err)
	}
	if info.Timestamp == 0 {
		return 0, explorer.ErrTxNotFound
	}
	return info.Confirmations, nil
}

// TransactionPosition returns the block timestamp of a transaction.
func (c *Client) TransactionPosition(ctx context.Context, txnHash string) (position int64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("transaction_position", err, started)
	}()

	query := url.Values{"hash": {txnHash}}
	body, err := c.get(ctx, txInfoURL, query)
	if err != nil {
		return 0, err
	}

	var info txInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return 0, fmt.Errorf("decode transaction info: %w", err)
	}
	if info.Timestamp == 0 {
		return 0, explorer.ErrTxNotFound
	}
	return info.Timestamp / 1000, nil
}

func (c *Client) fetchWalletTransfers(ctx context.Context, contract, wallet string, cursor int64, limit int) ([]transferItem, error) {
	var all []transferItem
	offset := 0

	for {
		query := url.Values{
			"contract_address": {contract},
			"toAddress":        {wallet},
			"start_timestamp":  {strconv.FormatInt(cursor, 10)},
			"start":            {strconv.Itoa(offset)},
			"limit":            {strconv.Itoa(pageLimit)},
		}
		body, err := c.get(ctx, transfersURL, query)
		if err != nil {
			return nil, err
		}

		var resp transfersResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("decode tronscan transfers: %w", err)
		}

		all = append(all, resp.TokenTransfers...)
		if len(resp.TokenTransfers) < pageLimit || int64(len(all)) >= resp.RangeTotal {
			break
		}
		if limit > 0 && len(all) >= limit {
			break
		}
		offset += pageLimit
	}

	return all, nil
}

func parseItem(token model.Token, item transferItem) (explorer.TransferRecord, error) {
	rawValue, err := decimal.NewFromString(item.Quant)
	if err != nil {
		return explorer.TransferRecord{}, fmt.Errorf("parse value %q: %w", item.Quant, err)
	}
	exponent, err := safe.Uint32(item.TokenInfo.Decimals)
	if err != nil {
		return explorer.TransferRecord{}, fmt.Errorf("token decimals out of range: %w", err)
	}

	return explorer.TransferRecord{
		Token:          token,
		Network:        model.Tron,
		FromAddress:    item.FromAddress,
		ToAddress:      item.ToAddress,
		TxnHash:        item.TransactionID,
		Value:          rawValue.Shift(-int32(exponent)),
		BlockNumber:    item.Block,
		BlockTimestamp: item.BlockTs / 1000,
		Index:          0,
	}, nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	var body []byte

	operation := func() error {
		c.rl.Take()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		if c.apiKey != "" {
			req.Header.Set(authHeader, c.apiKey)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("tronscan request: %w", err)
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		if resp.StatusCode == http.StatusTooManyRequests {
			return explorer.ErrRateLimited
		}
		if resp.StatusCode >= 500 {
			return fmt.Errorf("tronscan status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("tronscan status %d", resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read tronscan response: %w", err)
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), explorer.MaxRetries)
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}
	return body, nil
}
