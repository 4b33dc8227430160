// Package kv is the persisted key-value store behind basket. Keys map to
// opaque string values in a single SQLite table; every write is a single-key
// statement serialized by an OS file lock.
package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/marcus/basket/internal/flock"
)

const (
	dbFile   = "basket.db"
	lockFile = "basket.lock"
)

var (
	// ErrNotFound is returned by Get when the key has no value.
	ErrNotFound = errors.New("key not found")
	// ErrLockTimeout is returned when another process holds the write lock too long.
	ErrLockTimeout = flock.ErrTimeout
)

// Store is the minimal key-value contract used by the session, user store and
// theme packages.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var _ Store = (*DB)(nil)

// DB wraps the SQLite connection
type DB struct {
	conn *sql.DB
	home string
}

// Open opens (creating when needed) the database under home and runs any
// pending migrations.
func Open(home string) (*DB, error) {
	if err := os.MkdirAll(home, 0755); err != nil {
		return nil, fmt.Errorf("create home dir: %w", err)
	}

	conn, err := sql.Open(driverName, filepath.Join(home, dbFile))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL keeps readers unblocked while a write is in flight
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	// matches the write lock timeout
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	conn.Exec("PRAGMA synchronous=NORMAL")

	db := &DB{conn: conn, home: home}
	if _, err := db.RunMigrations(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

// Close closes the database
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) withWriteLock(ctx context.Context, fn func() error) error {
	lock := flock.New(filepath.Join(db.home, lockFile))
	if err := lock.Lock(ctx); err != nil {
		return err
	}
	defer lock.Unlock()
	return fn()
}

// Get returns the value stored under key, or ErrNotFound.
func (db *DB) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := db.conn.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set overwrites the value stored under key.
func (db *DB) Set(ctx context.Context, key, value string) error {
	return db.withWriteLock(ctx, func() error {
		_, err := db.conn.ExecContext(ctx,
			`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			key, value)
		if err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		slog.Debug("kv: set", "key", key, "bytes", len(value))
		return nil
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (db *DB) Delete(ctx context.Context, key string) error {
	return db.withWriteLock(ctx, func() error {
		if _, err := db.conn.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
		slog.Debug("kv: delete", "key", key)
		return nil
	})
}

// hasColumn reports whether table has a column with the given name.
func (db *DB) hasColumn(table, column string) (bool, error) {
	var n int
	err := db.conn.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column,
	).Scan(&n)
	return n > 0, err
}

// SchemaVersion returns the version recorded in schema_info, 0 when unset.
func (db *DB) SchemaVersion() (int, error) {
	var version string
	err := db.conn.QueryRow("SELECT value FROM schema_info WHERE key = 'version'").Scan(&version)
	if err != nil {
		// missing row or missing table both mean pre-migration
		return 0, nil
	}
	v, err := strconv.Atoi(version)
	if err != nil {
		return 0, fmt.Errorf("parse schema version %q: %w", version, err)
	}
	return v, nil
}

func (db *DB) setSchemaVersion(version int) error {
	_, err := db.conn.Exec(`INSERT OR REPLACE INTO schema_info (key, value) VALUES ('version', ?)`,
		strconv.Itoa(version))
	return err
}

// RunMigrations brings the schema up to SchemaVersion and reports how many
// migrations ran.
func (db *DB) RunMigrations() (int, error) {
	current, _ := db.SchemaVersion()
	if current >= SchemaVersion {
		return 0, nil
	}

	var n int
	err := db.withWriteLock(context.Background(), func() error {
		var err error
		n, err = db.migrate()
		return err
	})
	return n, err
}

func (db *DB) migrate() (int, error) {
	if _, err := db.conn.Exec(schema); err != nil {
		return 0, fmt.Errorf("create schema: %w", err)
	}

	current, err := db.SchemaVersion()
	if err != nil {
		return 0, err
	}

	ran := 0
	for _, m := range Migrations {
		if m.Version <= current {
			continue
		}
		skip := false
		if m.Applied != nil {
			if skip, err = m.Applied(db); err != nil {
				return ran, fmt.Errorf("migration %d: %w", m.Version, err)
			}
		}
		if !skip {
			if _, err := db.conn.Exec(m.SQL); err != nil {
				return ran, fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
			}
		}
		if err := db.setSchemaVersion(m.Version); err != nil {
			return ran, fmt.Errorf("record version %d: %w", m.Version, err)
		}
		ran++
	}
	return ran, nil
}
