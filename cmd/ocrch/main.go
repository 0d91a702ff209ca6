package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/haruki-nikaidou/open-crypto-checkout/internal/config"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/events"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/explorer/etherscan"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/explorer/tronscan"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/metrics"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/model"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/repository/postgres"
	"github.com/haruki-nikaidou/open-crypto-checkout/internal/service"
)

// Exit codes per the CLI contract.
const (
	exitOK        = 0
	exitStartup   = 1
	exitMigration = 2
	exitSignal    = 130
)

const (
	shutdownGrace  = 30 * time.Second
	defaultOpsAddr = ":9100"
	migrationsDir  = "migrations/postgres"
)

var opts struct {
	Config  string `long:"config" env:"OCRCH_CONFIG" default:"./ocrch-config.toml" description:"path to the TOML config file"`
	Migrate bool   `long:"migrate" description:"run pending schema migrations and exit"`
}

func main() {
	os.Exit(run())
}

func run() int {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "can't initialize zap logger:", err)
		return exitStartup
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&opts, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return exitOK
		}
		logger.Error("failed to parse arguments", zap.Error(err))
		return exitStartup
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logger.Error("DATABASE_URL environment variable is required")
		return exitStartup
	}

	if opts.Migrate {
		if err := runMigrations(logger, databaseURL); err != nil {
			logger.Error("migration run failed", zap.Error(err))
			return exitMigration
		}
		return exitOK
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A plaintext admin secret in the config file is hashed in place before
	// the file is parsed for real.
	if rewritten, err := config.EnsureHashedAdminSecret(opts.Config); err != nil {
		logger.Error("admin secret hashing failed", zap.Error(err))
		return exitStartup
	} else if rewritten {
		logger.Info("admin secret hashed and config rewritten")
	}

	store, err := config.NewStore(opts.Config)
	if err != nil {
		logger.Error("config load failed", zap.Error(err))
		return exitStartup
	}

	reloadCh := make(chan os.Signal, 1)
	signal.Notify(reloadCh, syscall.SIGHUP)
	go func() {
		for range reloadCh {
			if err := store.Reload(); err != nil {
				logger.Error("config reload failed", zap.Error(err))
			} else {
				logger.Info("config reloaded")
			}
		}
	}()

	repo, err := postgres.NewRepository(ctx, databaseURL, metrics.NewRepository())
	if err != nil {
		logger.Error("database connection failed", zap.Error(err))
		return exitStartup
	}
	defer repo.Close()

	components, err := buildPipeline(logger, store, repo)
	if err != nil {
		logger.Error("pipeline construction failed", zap.Error(err))
		return exitStartup
	}

	opsServer := startOpsServer(logger, store.Current(), repo)

	supervisor := service.NewSupervisor(logger, components...)
	done := make(chan struct{})
	go func() {
		defer close(done)
		supervisor.Run(ctx)
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	// The ops listener stops accepting first; the pipeline then drains
	// within the grace window.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("ops server shutdown failed", zap.Error(err))
	}

	select {
	case <-done:
		logger.Info("pipeline drained")
	case <-shutdownCtx.Done():
		logger.Warn("shutdown grace elapsed, abandoning in-flight work")
	}

	return exitSignal
}

// buildPipeline wires the event bus, explorer adapters and the four pipeline
// components.
func buildPipeline(logger *zap.Logger, store *config.Store, repo *postgres.Repository) ([]service.Component, error) {
	snap := store.Current()
	bus := events.NewBus(logger.Named("events"))

	pooling, err := service.NewPoolingManager(logger, bus, repo, store, metrics.NewPoolingManager())
	if err != nil {
		return nil, err
	}
	watcher, err := service.NewOrderWatcher(logger, bus, repo, store, metrics.NewOrderWatcher())
	if err != nil {
		return nil, err
	}
	sender, err := service.NewWebhookSender(logger, repo, store, metrics.NewWebhookSender())
	if err != nil {
		return nil, err
	}

	components := []service.Component{pooling, watcher, sender}

	evmClients := make(map[model.Network]*etherscan.Client)
	var tronClient *tronscan.Client

	for _, pair := range snap.EnabledPairs() {
		var exp service.Explorer
		if pair.Network.IsTron() {
			if tronClient == nil {
				tronClient = tronscan.New(snap.TronScanAPIKey, metrics.NewExplorer(model.Tron), logger)
			}
			exp = tronClient
		} else {
			client, ok := evmClients[pair.Network]
			if !ok {
				client, err = etherscan.New(pair.Network, snap.EtherScanAPIKey, metrics.NewExplorer(pair.Network), logger)
				if err != nil {
					return nil, err
				}
				evmClients[pair.Network] = client
			}
			exp = client
		}

		syncer, err := service.NewBlockchainSync(logger, pair, bus, repo, exp, store, metrics.NewBlockchainSync(pair))
		if err != nil {
			return nil, err
		}
		components = append(components, syncer)
	}

	return components, nil
}

// startOpsServer serves /metrics, /healthz and the manual webhook-resend
// surface.
func startOpsServer(logger *zap.Logger, snap *config.Snapshot, repo *postgres.Repository) *http.Server {
	addr := snap.OpsAddr
	if addr == "" {
		addr = defaultOpsAddr
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/webhooks/dead", func(w http.ResponseWriter, r *http.Request) {
		dead, err := repo.DeadWebhooks(r.Context(), 100)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dead); err != nil {
			logger.Error("encode dead webhooks failed", zap.Error(err))
		}
	})
	mux.HandleFunc("/webhooks/resend", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		row, err := repo.ResendWebhook(r.Context(), id)
		if err != nil {
			if errors.Is(err, postgres.ErrOutboxRowNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(row); err != nil {
			logger.Error("encode resent webhook failed", zap.Error(err))
		}
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		logger.Info("starting ops server", zap.String("addr", addr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ops server failed", zap.Error(err))
		}
	}()
	return server
}

func runMigrations(logger *zap.Logger, databaseURL string) error {
	m, err := migrate.New("file://"+migrationsDir, databaseURL)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Error("migration source close error", zap.Error(srcErr))
		}
		if dbErr != nil {
			logger.Error("migration database close error", zap.Error(dbErr))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no migrations to apply")
			return nil
		}
		return err
	}
	logger.Info("migrations applied successfully")
	return nil
}
