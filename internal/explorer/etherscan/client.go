// Package etherscan implements the explorer adapter for EtherScan-family
// APIs. One client serves every supported EVM chain through the v2 endpoint
// and its chainid parameter.
package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/explorer"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
	"github.com/haruki-nikaidou/open-crypto-checkout/pkg/safe"
)

const apiURL = "https://api.etherscan.io/v2/api"

// requestsPerSecond matches the free-tier EtherScan quota.
const requestsPerSecond = 5

// Client queries the EtherScan v2 API for one EVM network.
type Client struct {
	network    model.Network
	chainID    int64
	apiKey     string
	httpClient *http.Client
	rl         ratelimit.Limiter
	metrics    explorer.Metrics
	logger     *zap.Logger
}

// New builds a Client for an EVM network.
func New(network model.Network, apiKey string, metrics explorer.Metrics, logger *zap.Logger) (*Client, error) {
	chainID, err := network.ChainID()
	if err != nil {
		return nil, err
	}
	return &Client{
		network:    network,
		chainID:    chainID,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: explorer.RequestTimeout},
		rl:         ratelimit.New(requestsPerSecond),
		metrics:    metrics,
		logger:     logger.With(zap.String("network", string(network))),
	}, nil
}

// FetchTransfersSince returns token transfers touching the given wallets
// with block_number >= cursor, ascending by (block_number, index).
func (c *Client) FetchTransfersSince(ctx context.Context, token model.Token, wallets []string, cursor int64, limit int) (records []explorer.TransferRecord, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("fetch_transfers", err, started)
	}()

	contract, err := explorer.ContractAddress(model.Pair{Network: c.network, Token: token})
	if err != nil {
		return nil, err
	}

	for _, wallet := range wallets {
		items, fetchErr := c.fetchWalletTransfers(ctx, contract, wallet, cursor, limit)
		if fetchErr != nil {
			return nil, fetchErr
		}
		for _, item := range items {
			record, parseErr := c.parseItem(token, item)
			if parseErr != nil {
				return nil, parseErr
			}
			records = append(records, record)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].BlockNumber != records[j].BlockNumber {
			return records[i].BlockNumber < records[j].BlockNumber
		}
		return records[i].Index < records[j].Index
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

// Confirmations returns the confirmation depth of a transaction, or
// explorer.ErrTxNotFound for an unknown or still-pending hash.
func (c *Client) Confirmations(ctx context.Context, txnHash string) (confirmations int64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("confirmations", err, started)
	}()

	txBlock, err := c.transactionBlockNumber(ctx, txnHash)
	if err != nil {
		return 0, err
	}
	latest, err := c.latestBlockNumber(ctx)
	if err != nil {
		return 0, err
	}
	if latest < txBlock {
		return 0, nil
	}
	return latest - txBlock + 1, nil
}

// TransactionPosition returns the block number a transaction was mined in.
func (c *Client) TransactionPosition(ctx context.Context, txnHash string) (position int64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("transaction_position", err, started)
	}()
	return c.transactionBlockNumber(ctx, txnHash)
}

type transferItem struct {
	BlockNumber      string `json:"blockNumber"`
	TimeStamp        string `json:"timeStamp"`
	Hash             string `json:"hash"`
	From             string `json:"from"`
	To               string `json:"to"`
	Value            string `json:"value"`
	TokenDecimal     string `json:"tokenDecimal"`
	TransactionIndex string `json:"transactionIndex"`
}

type apiResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type proxyResponse struct {
	Result json.RawMessage `json:"result"`
}

func (c *Client) fetchWalletTransfers(ctx context.Context, contract, wallet string, cursor int64, limit int) ([]transferItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	query := url.Values{
		"apikey":          {c.apiKey},
		"chainid":         {strconv.FormatInt(c.chainID, 10)},
		"module":          {"account"},
		"action":          {"tokentx"},
		"contractaddress": {contract},
		"address":         {wallet},
		"startblock":      {strconv.FormatInt(cursor, 10)},
		"page":            {"1"},
		"offset":          {strconv.Itoa(limit)},
		"sort":            {"asc"},
	}

	body, err := c.get(ctx, query)
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode etherscan response: %w", err)
	}
	// Status "0" with "No transactions found" is an empty result, not an
	// error.
	if resp.Status != "1" {
		if strings.Contains(resp.Message, "No transactions found") {
			return nil, nil
		}
		if strings.Contains(resp.Message, "rate limit") {
			return nil, explorer.ErrRateLimited
		}
		return nil, fmt.Errorf("etherscan error: %s", resp.Message)
	}

	var items []transferItem
	if err := json.Unmarshal(resp.Result, &items); err != nil {
		return nil, fmt.Errorf("decode etherscan transfers: %w", err)
	}
	return items, nil
}

func (c *Client) parseItem(token model.Token, item transferItem) (explorer.TransferRecord, error) {
	blockNumber, err := strconv.ParseInt(item.BlockNumber, 10, 64)
	if err != nil {
		return explorer.TransferRecord{}, fmt.Errorf("parse block number %q: %w", item.BlockNumber, err)
	}
	blockTimestamp, err := strconv.ParseInt(item.TimeStamp, 10, 64)
	if err != nil {
		return explorer.TransferRecord{}, fmt.Errorf("parse block timestamp %q: %w", item.TimeStamp, err)
	}
	index := int64(0)
	if item.TransactionIndex != "" {
		index, err = strconv.ParseInt(item.TransactionIndex, 10, 64)
		if err != nil {
			return explorer.TransferRecord{}, fmt.Errorf("parse transaction index %q: %w", item.TransactionIndex, err)
		}
	}
	rawValue, err := decimal.NewFromString(item.Value)
	if err != nil {
		return explorer.TransferRecord{}, fmt.Errorf("parse value %q: %w", item.Value, err)
	}
	decimals, err := strconv.ParseInt(item.TokenDecimal, 10, 64)
	if err != nil {
		return explorer.TransferRecord{}, fmt.Errorf("parse token decimals %q: %w", item.TokenDecimal, err)
	}
	exponent, err := safe.Uint32(decimals)
	if err != nil {
		return explorer.TransferRecord{}, fmt.Errorf("token decimals out of range: %w", err)
	}

	return explorer.TransferRecord{
		Token:          token,
		Network:        c.network,
		FromAddress:    strings.ToLower(item.From),
		ToAddress:      strings.ToLower(item.To),
		TxnHash:        item.Hash,
		Value:          rawValue.Shift(-int32(exponent)),
		BlockNumber:    blockNumber,
		BlockTimestamp: blockTimestamp,
		Index:          index,
	}, nil
}

func (c *Client) transactionBlockNumber(ctx context.Context, txnHash string) (int64, error) {
	query := url.Values{
		"apikey":  {c.apiKey},
		"chainid": {strconv.FormatInt(c.chainID, 10)},
		"module":  {"proxy"},
		"action":  {"eth_getTransactionByHash"},
		"txhash":  {txnHash},
	}
	body, err := c.get(ctx, query)
	if err != nil {
		return 0, err
	}

	var resp proxyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("decode proxy response: %w", err)
	}
	if string(resp.Result) == "null" {
		return 0, explorer.ErrTxNotFound
	}

	var tx struct {
		BlockNumber *string `json:"blockNumber"`
	}
	if err := json.Unmarshal(resp.Result, &tx); err != nil {
		return 0, fmt.Errorf("decode transaction: %w", err)
	}
	if tx.BlockNumber == nil {
		// Known to the mempool but not yet mined.
		return 0, explorer.ErrTxNotFound
	}
	return parseHexInt(*tx.BlockNumber)
}

func (c *Client) latestBlockNumber(ctx context.Context) (int64, error) {
	query := url.Values{
		"apikey":  {c.apiKey},
		"chainid": {strconv.FormatInt(c.chainID, 10)},
		"module":  {"proxy"},
		"action":  {"eth_blockNumber"},
	}
	body, err := c.get(ctx, query)
	if err != nil {
		return 0, err
	}

	var resp proxyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("decode proxy response: %w", err)
	}
	var hexNumber string
	if err := json.Unmarshal(resp.Result, &hexNumber); err != nil {
		return 0, fmt.Errorf("decode block number: %w", err)
	}
	return parseHexInt(hexNumber)
}

// get performs one rate-limited GET with jittered exponential-backoff
// retries.
func (c *Client) get(ctx context.Context, query url.Values) ([]byte, error) {
	var body []byte

	operation := func() error {
		c.rl.Take()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL+"?"+query.Encode(), nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("etherscan request: %w", err)
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		if resp.StatusCode == http.StatusTooManyRequests {
			return explorer.ErrRateLimited
		}
		if resp.StatusCode >= 500 {
			return fmt.Errorf("etherscan status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("etherscan status %d", resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read etherscan response: %w", err)
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), explorer.MaxRetries)
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}
	return body, nil
}

func parseHexInt(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimPrefix(s, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parse hex number %q: %w", s, err)
	}
	return v, nil
}
