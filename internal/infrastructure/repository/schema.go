package repository

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// Migrate creates the schema for the configured driver if it does not exist.
func Migrate(db *sql.DB, dialect string) error {
	id := "INTEGER PRIMARY KEY AUTOINCREMENT"
	bigID := id
	if dialect == DialectPostgres {
		id = "SERIAL PRIMARY KEY"
		bigID = "BIGSERIAL PRIMARY KEY"
	}

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS gallery_items (
			id %s,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT 'general',
			image_url TEXT NOT NULL,
			affiliate_url TEXT NOT NULL,
			is_featured BOOLEAN NOT NULL DEFAULT FALSE,
			likes INTEGER NOT NULL DEFAULT 0 CHECK (likes >= 0),
			dislikes INTEGER NOT NULL DEFAULT 0 CHECK (dislikes >= 0),
			created_at TIMESTAMP NOT NULL
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			id %s,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'manager',
			created_at TIMESTAMP NOT NULL
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS contact_messages (
			id %s,
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			item_name TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			affiliate_url TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)`, bigID),
		`CREATE INDEX IF NOT EXISTS idx_gallery_items_created_at ON gallery_items(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages(created_at)`,
	}

	for i, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("migrate stmt %d: %w", i, err)
		}
	}
	return nil
}

// bind rewrites ? placeholders to $n for Postgres. Queries are written
// once with ? and shared between both drivers.
func bind(dialect, query string) string {
	if dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
