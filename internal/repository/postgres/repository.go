// Package postgres implements the persistent store on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Metrics records query outcomes per operation.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Sentinel errors surfaced to the service layer.
var (
	// ErrOrderNotPending is returned when a mutation requires the order to
	// still be pending. Maps to a 409 at the API surface.
	ErrOrderNotPending = errors.New("order is not pending")
	// ErrOrderNotFound is returned when an order id resolves to no row.
	ErrOrderNotFound = errors.New("order not found")
)

// Repository wraps a pgx pool with instrumented domain queries.
type Repository struct {
	pool    *pgxpool.Pool
	metrics Metrics
}

// NewRepository connects to the database and pings it.
func NewRepository(ctx context.Context, databaseURL string, metrics Metrics) (*Repository, error) {
	if databaseURL == "" {
		return nil, errors.New("database url is required")
	}

	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Repository{pool: pool, metrics: metrics}, nil
}

// Close releases the pool.
func (r *Repository) Close() {
	r.pool.Close()
}
