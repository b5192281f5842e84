package sqlstore

import (
	"context"
	"fmt"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS speech (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		content TEXT NOT NULL,
		author TEXT NOT NULL,
		speech_date TEXT NOT NULL,
		speech_date_offset INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS speech_keyword (
		speech_id INTEGER NOT NULL REFERENCES speech(id) ON DELETE CASCADE,
		keyword TEXT NOT NULL,
		PRIMARY KEY (speech_id, keyword)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_speech_keyword_keyword ON speech_keyword (keyword)`,
	`CREATE INDEX IF NOT EXISTS idx_speech_speech_date ON speech (speech_date)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS speech (
		id BIGSERIAL PRIMARY KEY,
		content TEXT NOT NULL,
		author TEXT NOT NULL,
		speech_date TIMESTAMPTZ NOT NULL,
		speech_date_offset INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS speech_keyword (
		speech_id BIGINT NOT NULL REFERENCES speech(id) ON DELETE CASCADE,
		keyword TEXT NOT NULL,
		PRIMARY KEY (speech_id, keyword)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_speech_keyword_keyword ON speech_keyword (keyword)`,
	`CREATE INDEX IF NOT EXISTS idx_speech_speech_date ON speech (speech_date)`,
}

// Migrate creates the speech tables and indexes if they do not exist.
// It is safe to run on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range db.dialect.schema {
		if _, err := db.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	return nil
}
