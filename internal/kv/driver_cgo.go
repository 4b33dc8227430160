//go:build cgo_sqlite

package kv

import _ "github.com/mattn/go-sqlite3"

// Built with -tags cgo_sqlite to use the C SQLite library.
const driverName = "sqlite3"
