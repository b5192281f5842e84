// Package sqlstore persists speeches in a relational database through database/sql.
// PostgreSQL (pgx) is used in production; SQLite (pure Go) serves local runs and tests.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// ErrEmptyDSN is returned by Open when no data source name is configured.
var ErrEmptyDSN = errors.New("database dsn is required")

// Config holds the connection settings for the store.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// DB is an open connection pool with its dialect.
// It implements ports.HealthChecker.
type DB struct {
	sql     *sql.DB
	dialect dialect
}

var sqlOpen = sql.Open

// Open connects to the configured database, verifies the connection and,
// when AutoMigrate is set, applies the schema.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	d, err := dialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	if cfg.DSN == "" {
		return nil, ErrEmptyDSN
	}

	pool, err := sqlOpen(d.driverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.name, err)
	}

	maxOpen := cfg.MaxOpenConns
	if d.name == DriverSQLite && maxOpen == 0 {
		// SQLite serializes writers; one connection avoids SQLITE_BUSY inside transactions.
		maxOpen = 1
	}

	pool.SetMaxOpenConns(maxOpen)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db := &DB{sql: pool, dialect: d}

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping %s: %w", d.name, err)
	}

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			_ = pool.Close()
			return nil, err
		}
	}

	return db, nil
}

// Driver returns the normalized driver name ("sqlite" or "postgres").
func (db *DB) Driver() string {
	return db.dialect.name
}

// Name implements ports.HealthChecker.
func (db *DB) Name() string {
	return "database"
}

// Check implements ports.HealthChecker by pinging the pool.
func (db *DB) Check(ctx context.Context) error {
	if err := db.sql.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", db.dialect.name, err)
	}

	return nil
}

// RegisterMetrics exposes connection pool statistics on reg.
func (db *DB) RegisterMetrics(reg prometheus.Registerer) error {
	if reg == nil {
		return nil
	}

	if err := reg.Register(collectors.NewDBStatsCollector(db.sql, "speeches")); err != nil {
		return fmt.Errorf("register db stats collector: %w", err)
	}

	return nil
}

// Close releases the pool.
func (db *DB) Close() error {
	return db.sql.Close()
}
