package service

import (
	"context"

	"github.com/alexanderramin/grapple/internal/cache"
	"github.com/alexanderramin/grapple/internal/contract"
	"github.com/alexanderramin/grapple/internal/domain"
)

type AnalysisService interface {
	AnalyzeRequest(ctx context.Context, req contract.AnalyzeRequest) (*domain.AnalysisResult, error)
	// AnalyzeBatch analyzes texts with at most workers in flight. Results
	// keep the input order; the first failure cancels the rest.
	AnalyzeBatch(ctx context.Context, texts []string, workers int) ([]*domain.AnalysisResult, error)
	CacheStats() cache.Stats
}

type ProgramService interface {
	GenerateProgram(ctx context.Context, req contract.ProgramRequest) (*domain.TrainingProgram, error)
}

type TrainingLogService interface {
	LoadUserProfile(ctx context.Context, profileID string) (*domain.UserContext, error)
	SaveSessionOutcome(ctx context.Context, profileID string, summary domain.ProgramSummary) (string, error)
	History(ctx context.Context, profileID string, limit int) ([]*domain.TrainingSession, error)
	Mastery(ctx context.Context, profileID string) ([]*domain.MasteryRecord, error)
	Stats(ctx context.Context, profileID string) (*TrainingStats, error)
}

type ProfileService interface {
	Create(ctx context.Context, username string, belt domain.Belt, skillMultiplier float64) (*domain.UserProfile, error)
	Get(ctx context.Context, id string) (*domain.UserProfile, error)
	GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error)
	Update(ctx context.Context, p *domain.UserProfile) error
	List(ctx context.Context) ([]*domain.UserProfile, error)
}
