// Package config loads and holds the runtime configuration.
//
// The file is TOML; DATABASE_URL comes from the environment. A loaded
// configuration is an immutable Snapshot; hot reload swaps the snapshot
// atomically and long-lived tasks sample it at tick boundaries.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
)

// Defaults applied to absent fields.
const (
	DefaultBaseIdle        = 60 * time.Second
	DefaultBaseActive      = 30 * time.Second
	DefaultMinPeriod       = 3 * time.Second
	DefaultEVMConfirms     = 12
	DefaultTronConfirms    = 20
	DefaultConfirmDeadline = time.Hour
	DefaultOrderTTL        = 30 * time.Minute
	DefaultExpirySweep     = time.Minute
	DefaultWebhookBatch    = 32
	DefaultWebhookTimeout  = 15 * time.Second
)

type fileConfig struct {
	Server   serverSection   `toml:"server"`
	Admin    adminSection    `toml:"admin"`
	Merchant merchantSection `toml:"merchant"`
	Wallets  []walletSection `toml:"wallets"`
	APIKeys  apiKeysSection  `toml:"api_keys"`
	Pooling  poolingSection  `toml:"pooling"`
	Sync     syncSection     `toml:"sync"`
	Orders   ordersSection   `toml:"orders"`
	Webhook  webhookSection  `toml:"webhook"`
}

type serverSection struct {
	ListenAddr string `toml:"listen_addr"`
	OpsAddr    string `toml:"ops_addr"`
}

type adminSection struct {
	Secret string `toml:"secret"`
}

type merchantSection struct {
	Name                     string   `toml:"name"`
	Secret                   string   `toml:"secret"`
	UnknownPaymentWebhookURL string   `toml:"unknown_payment_webhook_url"`
	AllowedOrigins           []string `toml:"allowed_origins"`
}

type walletSection struct {
	Network    string   `toml:"network"`
	Address    string   `toml:"address"`
	Tokens     []string `toml:"tokens"`
	StartingTx string   `toml:"starting_tx"`
}

type apiKeysSection struct {
	EtherScan string `toml:"etherscan"`
	TronScan  string `toml:"tronscan"`
}

type poolingSection struct {
	BaseIdleSeconds   int64 `toml:"base_idle_seconds"`
	BaseActiveSeconds int64 `toml:"base_active_seconds"`
	MinPeriodSeconds  int64 `toml:"min_period_seconds"`
}

type syncSection struct {
	EVMConfirmations       int64 `toml:"evm_confirmations"`
	TronConfirmations      int64 `toml:"tron_confirmations"`
	ConfirmDeadlineSeconds int64 `toml:"confirm_deadline_seconds"`
}

type ordersSection struct {
	TTLSeconds         int64 `toml:"ttl_seconds"`
	ExpirySweepSeconds int64 `toml:"expiry_sweep_seconds"`
}

type webhookSection struct {
	BatchLimit     int   `toml:"batch_limit"`
	TimeoutSeconds int64 `toml:"timeout_seconds"`
}

// Wallet is one merchant-controlled receiving address.
type Wallet struct {
	Network model.Network
	Address string
	Tokens  []model.Token
	// StartingTx anchors the first sync of a pair when the database holds no
	// cursor yet: sync starts from this transaction's block (EVM) or
	// timestamp (Tron) instead of from zero.
	StartingTx string
}

// Merchant carries the merchant-level settings the core needs.
type Merchant struct {
	Name                     string
	Secret                   []byte
	UnknownPaymentWebhookURL string
	AllowedOrigins           []string
}

// Snapshot is one immutable, validated configuration.
type Snapshot struct {
	DatabaseURL string
	ListenAddr  string
	OpsAddr     string

	AdminSecretHash string
	Merchant        Merchant
	Wallets         []Wallet

	EtherScanAPIKey string
	TronScanAPIKey  string

	BaseIdle   time.Duration
	BaseActive time.Duration
	MinPeriod  time.Duration

	EVMConfirmations  int64
	TronConfirmations int64
	ConfirmDeadline   time.Duration

	OrderTTL    time.Duration
	ExpirySweep time.Duration

	WebhookBatchLimit int
	WebhookTimeout    time.Duration
}

// Load reads and validates the TOML file at path. DATABASE_URL must be set
// in the environment.
func Load(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	snap := &Snapshot{
		DatabaseURL:     dbURL,
		ListenAddr:      fc.Server.ListenAddr,
		OpsAddr:         fc.Server.OpsAddr,
		AdminSecretHash: fc.Admin.Secret,
		Merchant: Merchant{
			Name:                     fc.Merchant.Name,
			Secret:                   []byte(fc.Merchant.Secret),
			UnknownPaymentWebhookURL: fc.Merchant.UnknownPaymentWebhookURL,
			AllowedOrigins:           fc.Merchant.AllowedOrigins,
		},
		EtherScanAPIKey:   fc.APIKeys.EtherScan,
		TronScanAPIKey:    fc.APIKeys.TronScan,
		BaseIdle:          secondsOr(fc.Pooling.BaseIdleSeconds, DefaultBaseIdle),
		BaseActive:        secondsOr(fc.Pooling.BaseActiveSeconds, DefaultBaseActive),
		MinPeriod:         secondsOr(fc.Pooling.MinPeriodSeconds, DefaultMinPeriod),
		EVMConfirmations:  int64Or(fc.Sync.EVMConfirmations, DefaultEVMConfirms),
		TronConfirmations: int64Or(fc.Sync.TronConfirmations, DefaultTronConfirms),
		ConfirmDeadline:   secondsOr(fc.Sync.ConfirmDeadlineSeconds, DefaultConfirmDeadline),
		OrderTTL:          secondsOr(fc.Orders.TTLSeconds, DefaultOrderTTL),
		ExpirySweep:       secondsOr(fc.Orders.ExpirySweepSeconds, DefaultExpirySweep),
		WebhookBatchLimit: intOr(fc.Webhook.BatchLimit, DefaultWebhookBatch),
		WebhookTimeout:    secondsOr(fc.Webhook.TimeoutSeconds, DefaultWebhookTimeout),
	}

	if fc.Merchant.Secret == "" {
		return nil, fmt.Errorf("merchant.secret is required")
	}

	for i, w := range fc.Wallets {
		network, err := model.ParseNetwork(w.Network)
		if err != nil {
			return nil, fmt.Errorf("wallets[%d]: %w", i, err)
		}
		if w.Address == "" {
			return nil, fmt.Errorf("wallets[%d]: address is required", i)
		}
		tokens := make([]model.Token, 0, len(w.Tokens))
		for _, ts := range w.Tokens {
			token, err := model.ParseToken(ts)
			if err != nil {
				return nil, fmt.Errorf("wallets[%d]: %w", i, err)
			}
			tokens = append(tokens, token)
		}
		snap.Wallets = append(snap.Wallets, Wallet{
			Network:    network,
			Address:    w.Address,
			Tokens:     tokens,
			StartingTx: w.StartingTx,
		})
	}

	return snap, nil
}

// EnabledPairs returns every (network, token) pair with at least one wallet,
// deduplicated, in wallet-declaration order.
func (s *Snapshot) EnabledPairs() []model.Pair {
	seen := make(map[model.Pair]struct{})
	var pairs []model.Pair
	for _, w := range s.Wallets {
		for _, token := range w.Tokens {
			p := model.Pair{Network: w.Network, Token: token}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// WalletsFor returns wallets watching the given pair.
func (s *Snapshot) WalletsFor(pair model.Pair) []Wallet {
	var out []Wallet
	for _, w := range s.Wallets {
		if w.Network != pair.Network {
			continue
		}
		for _, token := range w.Tokens {
			if token == pair.Token {
				out = append(out, w)
				break
			}
		}
	}
	return out
}

// WalletAddressesFor returns the lowercase addresses watching the pair.
func (s *Snapshot) WalletAddressesFor(pair model.Pair) []string {
	wallets := s.WalletsFor(pair)
	addrs := make([]string, 0, len(wallets))
	for _, w := range wallets {
		addrs = append(addrs, strings.ToLower(w.Address))
	}
	return addrs
}

// IsKnownWallet reports whether the address belongs to the merchant wallet
// set on the given network.
func (s *Snapshot) IsKnownWallet(network model.Network, address string) bool {
	address = strings.ToLower(address)
	for _, w := range s.Wallets {
		if w.Network == network && strings.ToLower(w.Address) == address {
			return true
		}
	}
	return false
}

// PairEnabled reports whether any wallet watches the pair.
func (s *Snapshot) PairEnabled(pair model.Pair) bool {
	return len(s.WalletsFor(pair)) > 0
}

func secondsOr(v int64, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

func int64Or(v, def int64) int64 {
	if v <= 0 {
		return def
	}
	return v
}

func intOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
