package kv

// SchemaVersion is the current database schema version
const SchemaVersion = 2

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS schema_info (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Migration is a versioned schema change. When Applied reports true the SQL
// is skipped and only the version is recorded.
type Migration struct {
	Version     int
	Description string
	SQL         string
	Applied     func(db *DB) (bool, error)
}

// Migrations run in order for databases below SchemaVersion.
var Migrations = []Migration{
	{
		Version:     1,
		Description: "create kv table",
		SQL:         `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`,
	},
	{
		Version:     2,
		Description: "track kv write time",
		SQL:         `ALTER TABLE kv ADD COLUMN updated_at DATETIME`,
		Applied: func(db *DB) (bool, error) {
			return db.hasColumn("kv", "updated_at")
		},
	},
}
