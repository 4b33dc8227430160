//go:build !cgo_sqlite

package kv

import _ "modernc.org/sqlite" // pure Go driver, no CGO

const driverName = "sqlite"
