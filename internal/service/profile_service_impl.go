package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/grapple/internal/contract"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/repository"
	"github.com/google/uuid"
)

type profileService struct {
	users    repository.UserRepo
	observer UseCaseObserver
}

func NewProfileService(users repository.UserRepo, observers ...UseCaseObserver) ProfileService {
	return &profileService{users: users, observer: useCaseObserverOrNoop(observers)}
}

func (s *profileService) Create(ctx context.Context, username string, belt domain.Belt, skillMultiplier float64) (p *domain.UserProfile, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"username": username, "belt": string(belt)}
	defer observe(ctx, s.observer, "create-profile", startedAt, fields, &err)

	now := startedAt.Truncate(time.Second)
	p = &domain.UserProfile{
		ID:              uuid.New().String(),
		Username:        strings.TrimSpace(username),
		Belt:            belt,
		SkillMultiplier: skillMultiplier,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if p.Belt == "" {
		p.Belt = domain.BeltWhite
	}
	if p.SkillMultiplier == 0 {
		p.SkillMultiplier = domain.DefaultSkillMultiplier
	}
	if err = validateProfile(p); err != nil {
		return nil, err
	}
	if err = s.users.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) Get(ctx context.Context, id string) (*domain.UserProfile, error) {
	return s.users.GetByID(ctx, id)
}

func (s *profileService) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	return s.users.GetByUsername(ctx, strings.TrimSpace(username))
}

func (s *profileService) Update(ctx context.Context, p *domain.UserProfile) error {
	p.Username = strings.TrimSpace(p.Username)
	if err := validateProfile(p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	return s.users.Update(ctx, p)
}

func (s *profileService) List(ctx context.Context) ([]*domain.UserProfile, error) {
	return s.users.List(ctx)
}

func validateProfile(p *domain.UserProfile) error {
	if p.Username == "" {
		return contract.InvalidInput("username must not be empty")
	}
	if !p.Belt.Valid() {
		return contract.InvalidInput("unknown belt %q", p.Belt)
	}
	if !domain.ValidSkillMultiplier(p.SkillMultiplier) {
		return contract.InvalidInput("skill multiplier must be a positive number, got %g", p.SkillMultiplier)
	}
	return nil
}
