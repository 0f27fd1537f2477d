// Package database owns the PostgreSQL connection pool.
// The pool itself comes from pgxpool; this package only builds it from our Config and
// exposes the narrow "acquire a connection, or fail" capability handlers depend on.
package database

import (
	"context"
	"fmt"

	// pgx is a pure-Go PostgreSQL driver. pgxpool layers a bounded, concurrency-safe
	// connection pool on top of it and hands out leases via Acquire/Release.
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trentd187/db-check-api/internal/config"
)

// Conn is a leased connection. Release must be called exactly once to return it to the pool.
// *pgxpool.Conn satisfies this interface.
type Conn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Release()
}

// Acquirer hands out connection leases. Handlers depend on this instead of *Pool
// so they can be tested without a running database.
type Acquirer interface {
	Acquire(ctx context.Context) (Conn, error)
}

// Pool is the process-wide connection pool handle. It is safe for concurrent use
// and is never mutated by request handlers — they only borrow connections from it.
type Pool struct {
	pool *pgxpool.Pool
}

// Connect builds a connection pool from cfg.
// It does not dial the database: connections are opened lazily on the first Acquire,
// so an unreachable database surfaces as a per-request error rather than a startup failure.
// An error here means the configuration itself could not be turned into a pool.
func Connect(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	// Set after parsing so any uint16, 0 included, is accepted here and only
	// fails when a connection is actually dialed.
	if cfg.Port != nil {
		poolCfg.ConnConfig.Port = *cfg.Port
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return &Pool{pool: pool}, nil
}

// Acquire borrows a connection from the pool, waiting for a free slot if all are in use.
func (p *Pool) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		// Return a nil interface, not a typed nil *pgxpool.Conn.
		return nil, err
	}
	return conn, nil
}

// Close closes every connection in the pool. Blocks until all leases are released.
func (p *Pool) Close() {
	p.pool.Close()
}
