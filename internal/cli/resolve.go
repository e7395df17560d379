package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/repository"
)

// resolveProfile looks a profile up by username. A missing profile gets a
// hint on how to create it.
func resolveProfile(ctx context.Context, app *App, username string) (*domain.UserProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	p, err := app.Profiles.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("profile %q not found (create it with 'grapple profile create %s')", username, username)
		}
		return nil, err
	}
	return p, nil
}

// resolveUserContext resolves a username to the profile plus mastery view
// the analysis and program use cases read.
func resolveUserContext(ctx context.Context, app *App, username string) (*domain.UserContext, error) {
	p, err := resolveProfile(ctx, app, username)
	if err != nil {
		return nil, err
	}
	return app.Log.LoadUserProfile(ctx, p.ID)
}

// resolveTechnique resolves a name or alias against the catalog.
func resolveTechnique(app *App, input string) (domain.TechniqueRecord, error) {
	rec, ok := app.Catalog.Lookup(strings.TrimSpace(input))
	if !ok {
		return domain.TechniqueRecord{}, fmt.Errorf("technique %q not found (see 'grapple techniques')", input)
	}
	return rec, nil
}
