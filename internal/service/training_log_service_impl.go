package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/grapple/internal/catalog"
	"github.com/alexanderramin/grapple/internal/contract"
	"github.com/alexanderramin/grapple/internal/db"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/metrics"
	"github.com/alexanderramin/grapple/internal/repository"
	"github.com/google/uuid"
)

type trainingLogService struct {
	cat      *catalog.Catalog
	users    repository.UserRepo
	sessions repository.TrainingSessionRepo
	mastery  repository.MasteryRepo
	uow      db.UnitOfWork
	metrics  *metrics.Metrics
	observer UseCaseObserver
}

func NewTrainingLogService(
	cat *catalog.Catalog,
	users repository.UserRepo,
	sessions repository.TrainingSessionRepo,
	mastery repository.MasteryRepo,
	uow db.UnitOfWork,
	m *metrics.Metrics,
	observers ...UseCaseObserver,
) TrainingLogService {
	return &trainingLogService{
		cat:      cat,
		users:    users,
		sessions: sessions,
		mastery:  mastery,
		uow:      uow,
		metrics:  m,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *trainingLogService) LoadUserProfile(ctx context.Context, profileID string) (*domain.UserContext, error) {
	u, err := s.users.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	levels, err := s.mastery.Levels(ctx, profileID)
	if err != nil {
		return nil, err
	}
	uc := u.Context(levels)
	return &uc, nil
}

// SaveSessionOutcome writes the session and bumps mastery for each distinct
// technique in one transaction.
func (s *trainingLogService) SaveSessionOutcome(ctx context.Context, profileID string, summary domain.ProgramSummary) (id string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"profile_id": profileID,
		"techniques": len(summary.Techniques),
	}
	defer observe(ctx, s.observer, "save-session", startedAt, fields, &err)

	if err = validateSummary(summary); err != nil {
		return "", err
	}

	session := &domain.TrainingSession{
		ID:             uuid.New().String(),
		UserID:         profileID,
		Name:           summary.Name,
		Techniques:     dedupeNames(summary.Techniques),
		DurationMin:    summary.DurationMin,
		Difficulty:     summary.Difficulty,
		QualityScore:   summary.QualityScore,
		CompletionRate: summary.CompletionRate,
		FeedbackScore:  summary.FeedbackScore,
		CreatedAt:      startedAt,
	}
	if session.Name == "" {
		session.Name = defaultSessionName(startedAt)
	}
	if session.Difficulty == "" {
		session.Difficulty = domain.ProgramNormal
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUsers := repository.NewSQLiteUserRepo(tx)
		txSessions := repository.NewSQLiteTrainingSessionRepo(tx)
		txMastery := repository.NewSQLiteMasteryRepo(tx)

		if _, err := txUsers.GetByID(ctx, profileID); err != nil {
			return err
		}
		if err := txSessions.Create(ctx, session); err != nil {
			return err
		}
		for _, name := range session.Techniques {
			if err := txMastery.Increment(ctx, profileID, name, domain.MasteryStep, startedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	fields["session_id"] = session.ID
	s.metrics.ObserveSessionSaved()
	return session.ID, nil
}

func validateSummary(summary domain.ProgramSummary) error {
	if summary.DurationMin <= 0 {
		return contract.InvalidInput("session duration must be positive, got %d", summary.DurationMin)
	}
	if summary.Difficulty != "" && !summary.Difficulty.Valid() {
		return contract.InvalidInput("unknown difficulty %q", summary.Difficulty)
	}
	if summary.CompletionRate < 0 || summary.CompletionRate > 1 {
		return contract.InvalidInput("completion rate must be within [0,1], got %g", summary.CompletionRate)
	}
	return nil
}

func defaultSessionName(at time.Time) string {
	return fmt.Sprintf("훈련 %s", at.Local().Format("2006-01-02 15:04"))
}

func (s *trainingLogService) History(ctx context.Context, profileID string, limit int) ([]*domain.TrainingSession, error) {
	return s.sessions.ListByUser(ctx, profileID, limit)
}

func (s *trainingLogService) Mastery(ctx context.Context, profileID string) ([]*domain.MasteryRecord, error) {
	return s.mastery.ListByUser(ctx, profileID)
}

func (s *trainingLogService) Stats(ctx context.Context, profileID string) (*TrainingStats, error) {
	if _, err := s.users.GetByID(ctx, profileID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("profile %s: %w", profileID, err)
		}
		return nil, err
	}
	sessions, err := s.sessions.ListByUser(ctx, profileID, 0)
	if err != nil {
		return nil, err
	}
	records, err := s.mastery.ListByUser(ctx, profileID)
	if err != nil {
		return nil, err
	}
	stats := aggregateTrainingStats(sessions, records, s.cat)
	return &stats, nil
}

// dedupeNames trims and drops repeats, keeping first-seen order.
func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
