package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateClampMastery(db); err != nil {
		return fmt.Errorf("clamping technique mastery: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id               TEXT PRIMARY KEY,
		username         TEXT NOT NULL UNIQUE,
		belt             TEXT NOT NULL DEFAULT 'white'
		                 CHECK(belt IN ('white','blue','purple','brown','black')),
		skill_multiplier REAL NOT NULL DEFAULT 1.0 CHECK(skill_multiplier > 0),
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS training_sessions (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name          TEXT NOT NULL DEFAULT '',
		techniques    TEXT NOT NULL DEFAULT '[]',
		duration_min  INTEGER NOT NULL CHECK(duration_min > 0),
		difficulty    TEXT NOT NULL DEFAULT 'normal'
		              CHECK(difficulty IN ('easy','normal','hard')),
		quality_score REAL NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_training_sessions_user ON training_sessions(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS technique_mastery (
		user_id        TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		technique_name TEXT NOT NULL,
		level          REAL NOT NULL DEFAULT 0 CHECK(level >= 0),
		practice_count INTEGER NOT NULL DEFAULT 0,
		last_practiced TEXT NOT NULL,
		PRIMARY KEY (user_id, technique_name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_technique_mastery_level ON technique_mastery(user_id, level DESC)`,

	// Session feedback captured after training
	`ALTER TABLE training_sessions ADD COLUMN completion_rate REAL NOT NULL DEFAULT 0`,
	`ALTER TABLE training_sessions ADD COLUMN feedback_score INTEGER NOT NULL DEFAULT 0`,
}

// migrateClampMastery caps mastery levels written before the 1.0 ceiling
// existed. Idempotent.
func migrateClampMastery(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(),
		`UPDATE technique_mastery SET level = 1.0 WHERE level > 1.0`)
	return err
}
