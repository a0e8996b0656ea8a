// Package storage persists raw screening responses in SQLite so repeated
// runs over the same supplier list skip the API for unchanged rows.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/surfaid/vetflow/internal/common"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteScanCache implements service.ScanCache using SQLite.
type SQLiteScanCache struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteScanCache opens (creating if needed) the cache database.
func NewSQLiteScanCache(dbPath string) (*SQLiteScanCache, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: cache path", common.ErrMissingConfig)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping cache database: %w", err)
	}

	cache := &SQLiteScanCache{db: db, dbPath: dbPath}
	if err := cache.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return cache, nil
}

func (c *SQLiteScanCache) migrate(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS scan_results (
			supplier_hash TEXT PRIMARY KEY,
			fetched_at    TIMESTAMP NOT NULL,
			response      BLOB NOT NULL
		)`
	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate cache schema: %w", err)
	}
	return nil
}

// Get returns the cached raw response for the supplier hash, or
// common.ErrNotFound when the supplier has not been screened before.
func (c *SQLiteScanCache) Get(ctx context.Context, supplierHash string) ([]byte, error) {
	var response []byte
	err := c.db.QueryRowContext(ctx,
		"SELECT response FROM scan_results WHERE supplier_hash = ?", supplierHash,
	).Scan(&response)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scan cache: %w", err)
	}
	return response, nil
}

// Put stores the raw response for the supplier hash, replacing any
// previous entry.
func (c *SQLiteScanCache) Put(ctx context.Context, supplierHash string, response []byte) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO scan_results (supplier_hash, fetched_at, response)
		 VALUES (?, ?, ?)
		 ON CONFLICT(supplier_hash) DO UPDATE SET
		   fetched_at = excluded.fetched_at,
		   response   = excluded.response`,
		supplierHash, time.Now().UTC(), response)
	if err != nil {
		return fmt.Errorf("failed to write scan cache: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (c *SQLiteScanCache) Close() error {
	return c.db.Close()
}
