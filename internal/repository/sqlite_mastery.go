package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/grapple/internal/db"
	"github.com/alexanderramin/grapple/internal/domain"
)

// SQLiteMasteryRepo implements MasteryRepo using a SQLite database.
type SQLiteMasteryRepo struct {
	db db.DBTX
}

func NewSQLiteMasteryRepo(conn db.DBTX) *SQLiteMasteryRepo {
	return &SQLiteMasteryRepo{db: conn}
}

func (r *SQLiteMasteryRepo) Increment(ctx context.Context, userID, technique string, step float64, at time.Time) error {
	query := `INSERT INTO technique_mastery (user_id, technique_name, level, practice_count, last_practiced)
		VALUES (?, ?, MIN(1.0, ?), 1, ?)
		ON CONFLICT(user_id, technique_name) DO UPDATE
		SET level = MIN(1.0, technique_mastery.level + excluded.level),
		    practice_count = technique_mastery.practice_count + 1,
		    last_practiced = excluded.last_practiced`
	_, err := r.db.ExecContext(ctx, query, userID, technique, step, formatTime(at))
	if err != nil {
		return fmt.Errorf("incrementing mastery for %s: %w", technique, err)
	}
	return nil
}

func (r *SQLiteMasteryRepo) ListByUser(ctx context.Context, userID string) ([]*domain.MasteryRecord, error) {
	query := `SELECT user_id, technique_name, level, practice_count, last_practiced
		FROM technique_mastery
		WHERE user_id = ?
		ORDER BY level DESC, practice_count DESC, technique_name`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing mastery: %w", err)
	}
	defer rows.Close()

	var records []*domain.MasteryRecord
	for rows.Next() {
		var m domain.MasteryRecord
		var last string
		if err := rows.Scan(&m.UserID, &m.TechniqueName, &m.Level, &m.PracticeCount, &last); err != nil {
			return nil, fmt.Errorf("scanning mastery row: %w", err)
		}
		if m.LastPracticed, err = parseTime("last_practiced", last); err != nil {
			return nil, err
		}
		records = append(records, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mastery: %w", err)
	}
	return records, nil
}

func (r *SQLiteMasteryRepo) Levels(ctx context.Context, userID string) (map[string]float64, error) {
	records, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	levels := make(map[string]float64, len(records))
	for _, m := range records {
		levels[m.TechniqueName] = m.Level
	}
	return levels, nil
}
