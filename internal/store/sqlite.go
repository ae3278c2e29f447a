package store

import (
	"context"
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"
)

// SQLiteBackend mirrors PostgresBackend on an embedded database file,
// for single-host deployments without a Postgres instance.
type SQLiteBackend struct {
	db *sql.DB
}

func NewSQLiteBackend(ctx context.Context, path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// The store serializes its own writes; one connection avoids
	// SQLITE_BUSY churn from the driver's pool.
	db.SetMaxOpenConns(1)

	backend := &SQLiteBackend{db: db}
	if err := backend.ensureTable(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return backend, nil
}

func (b *SQLiteBackend) ensureTable(ctx context.Context) error {
	_, err := b.db.ExecContext(ctx, `
    CREATE TABLE IF NOT EXISTS kv_tables (
      key        TEXT PRIMARY KEY,
      value      TEXT NOT NULL,
      updated_at TEXT NOT NULL DEFAULT (datetime('now'))
    )
  `)
	return err
}

func (b *SQLiteBackend) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := b.db.QueryRowContext(ctx, "SELECT value FROM kv_tables WHERE key = ?", key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func (b *SQLiteBackend) Save(ctx context.Context, key string, blob []byte) error {
	_, err := b.db.ExecContext(ctx, `
    INSERT INTO kv_tables (key, value, updated_at)
    VALUES (?, ?, datetime('now'))
    ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = datetime('now')
  `, key, blob)
	return err
}

func (b *SQLiteBackend) Ping(ctx context.Context) error {
	return b.db.PingContext(ctx)
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
