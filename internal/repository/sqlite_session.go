package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/grapple/internal/db"
	"github.com/alexanderramin/grapple/internal/domain"
)

// SQLiteTrainingSessionRepo implements TrainingSessionRepo using a SQLite database.
type SQLiteTrainingSessionRepo struct {
	db db.DBTX
}

// NewSQLiteTrainingSessionRepo creates a new SQLiteTrainingSessionRepo.
func NewSQLiteTrainingSessionRepo(conn db.DBTX) *SQLiteTrainingSessionRepo {
	return &SQLiteTrainingSessionRepo{db: conn}
}

const sessionColumns = `id, user_id, name, techniques, duration_min, difficulty,
	quality_score, completion_rate, feedback_score, created_at`

func (r *SQLiteTrainingSessionRepo) Create(ctx context.Context, s *domain.TrainingSession) error {
	techniques, err := encodeNames(s.Techniques)
	if err != nil {
		return err
	}
	query := `INSERT INTO training_sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.Name,
		techniques,
		s.DurationMin,
		string(s.Difficulty),
		s.QualityScore,
		s.CompletionRate,
		s.FeedbackScore,
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting training session: %w", err)
	}
	return nil
}

func (r *SQLiteTrainingSessionRepo) GetByID(ctx context.Context, id string) (*domain.TrainingSession, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM training_sessions WHERE id = ?`, id)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("training session: %w", ErrNotFound)
	}
	return s, err
}

func (r *SQLiteTrainingSessionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.TrainingSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM training_sessions
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing training sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.TrainingSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating training sessions: %w", err)
	}
	return sessions, nil
}

// scanSession returns sql.ErrNoRows unwrapped so GetByID can map it.
func scanSession(row rowScanner) (*domain.TrainingSession, error) {
	var s domain.TrainingSession
	var techniques, difficulty, createdAt string
	err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &techniques, &s.DurationMin, &difficulty,
		&s.QualityScore, &s.CompletionRate, &s.FeedbackScore, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning training session: %w", err)
	}
	s.Difficulty = domain.ProgramDifficulty(difficulty)
	if s.Techniques, err = decodeNames(techniques); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	return &s, nil
}
