package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/grapple/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.UserProfile) error
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error)
	List(ctx context.Context) ([]*domain.UserProfile, error)
	Update(ctx context.Context, u *domain.UserProfile) error
}

type TrainingSessionRepo interface {
	Create(ctx context.Context, s *domain.TrainingSession) error
	GetByID(ctx context.Context, id string) (*domain.TrainingSession, error)
	// ListByUser returns newest first. limit <= 0 returns every session.
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.TrainingSession, error)
}

type MasteryRepo interface {
	// Increment raises a technique's level by step (capped at 1.0) and bumps
	// its practice count, creating the record on first practice.
	Increment(ctx context.Context, userID, technique string, step float64, at time.Time) error
	ListByUser(ctx context.Context, userID string) ([]*domain.MasteryRecord, error)
	Levels(ctx context.Context, userID string) (map[string]float64, error)
}
