package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend stores each table blob as one row in a two-column
// relation. The whole-table-per-key contract is preserved; Postgres
// only contributes durability and shared access.
type PostgresBackend struct {
	pool *pgxpool.Pool
}

func NewPostgresBackend(ctx context.Context, databaseURL string) (*PostgresBackend, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	backend := &PostgresBackend{pool: pool}
	if err := backend.ensureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return backend, nil
}

func (b *PostgresBackend) ensureTable(ctx context.Context) error {
	_, err := b.pool.Exec(ctx, `
    CREATE TABLE IF NOT EXISTS kv_tables (
      key        TEXT PRIMARY KEY,
      value      JSONB NOT NULL,
      updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )
  `)
	return err
}

func (b *PostgresBackend) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := b.pool.QueryRow(ctx, "SELECT value FROM kv_tables WHERE key = $1", key).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func (b *PostgresBackend) Save(ctx context.Context, key string, blob []byte) error {
	_, err := b.pool.Exec(ctx, `
    INSERT INTO kv_tables (key, value, updated_at)
    VALUES ($1, $2, now())
    ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
  `, key, blob)
	return err
}

func (b *PostgresBackend) Ping(ctx context.Context) error {
	return b.pool.Ping(ctx)
}

func (b *PostgresBackend) Close() error {
	b.pool.Close()
	return nil
}
