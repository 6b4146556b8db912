package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// maxOpenDbConn limits the pool; the cart issues one statement at a time.
	maxOpenDbConn = 4
	maxDbLifetime = 5 * time.Minute

	createKVTable = `CREATE TABLE IF NOT EXISTS cart_kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	selectKV = `SELECT value FROM cart_kv WHERE key = $1`
	upsertKV = `INSERT INTO cart_kv (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	deleteKV = `DELETE FROM cart_kv WHERE key = $1`
)

// PostgresPool is the subset of *pgxpool.Pool used by PostgresKV.
type PostgresPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresKV stores keys in a single cart_kv table.
type PostgresKV struct {
	pool PostgresPool
}

var _ KV = (*PostgresKV)(nil)

// ConnectPostgres opens a pool for dsn and makes sure the table exists.
func ConnectPostgres(ctx context.Context, dsn string) (*PostgresKV, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres_dsn: %w", err)
	}
	config.MaxConns = int32(maxOpenDbConn)
	config.MaxConnLifetime = maxDbLifetime

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	kv := NewPostgresKV(pool)
	if err := kv.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return kv, nil
}

// NewPostgresKV wraps an existing pool.
func NewPostgresKV(pool PostgresPool) *PostgresKV {
	return &PostgresKV{pool: pool}
}

// Migrate creates the cart_kv table if needed.
func (p *PostgresKV) Migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, createKVTable); err != nil {
		return fmt.Errorf("failed to create cart_kv table: %w", err)
	}
	return nil
}

func (p *PostgresKV) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := p.pool.QueryRow(ctx, selectKV, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get %s from postgres: %w", key, err)
	}
	return value, nil
}

func (p *PostgresKV) Set(ctx context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if _, err := p.pool.Exec(ctx, upsertKV, key, value); err != nil {
		return fmt.Errorf("failed to set %s in postgres: %w", key, err)
	}
	return nil
}

func (p *PostgresKV) Delete(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, deleteKV, key); err != nil {
		return fmt.Errorf("failed to delete %s from postgres: %w", key, err)
	}
	return nil
}

// Close closes the pool.
func (p *PostgresKV) Close() error {
	p.pool.Close()
	return nil
}
