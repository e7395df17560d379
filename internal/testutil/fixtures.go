package testutil

import (
	"time"

	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/google/uuid"
)

// User options
type UserOption func(*domain.UserProfile)

func WithBelt(b domain.Belt) UserOption {
	return func(u *domain.UserProfile) {
		u.Belt = b
	}
}

func WithSkillMultiplier(m float64) UserOption {
	return func(u *domain.UserProfile) {
		u.SkillMultiplier = m
	}
}

func NewTestUser(username string, opts ...UserOption) *domain.UserProfile {
	now := time.Now().UTC().Truncate(time.Second)
	u := &domain.UserProfile{
		ID:              uuid.New().String(),
		Username:        username,
		Belt:            domain.BeltWhite,
		SkillMultiplier: domain.DefaultSkillMultiplier,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Session options
type SessionOption func(*domain.TrainingSession)

func WithTechniques(names ...string) SessionOption {
	return func(s *domain.TrainingSession) {
		s.Techniques = names
	}
}

func WithDuration(min int) SessionOption {
	return func(s *domain.TrainingSession) {
		s.DurationMin = min
	}
}

func WithCreatedAt(t time.Time) SessionOption {
	return func(s *domain.TrainingSession) {
		s.CreatedAt = t
	}
}

func WithFeedback(completion float64, score int) SessionOption {
	return func(s *domain.TrainingSession) {
		s.CompletionRate = completion
		s.FeedbackScore = score
	}
}

func NewTestTrainingSession(userID, name string, opts ...SessionOption) *domain.TrainingSession {
	s := &domain.TrainingSession{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         name,
		Techniques:   []string{"암바"},
		DurationMin:  60,
		Difficulty:   domain.ProgramNormal,
		QualityScore: 0.5,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestSummary returns a program summary as the synthesizer would hand it
// to the training log.
func NewTestSummary(name string, techniques ...string) domain.ProgramSummary {
	return domain.ProgramSummary{
		Name:         name,
		Techniques:   techniques,
		DurationMin:  60,
		Difficulty:   domain.ProgramNormal,
		QualityScore: 0.5,
	}
}
