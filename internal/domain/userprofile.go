package domain

import (
	"math"
	"time"
)

const DefaultSkillMultiplier = 1.0

// ValidSkillMultiplier reports whether v is a finite, positive multiplier.
// NaN fails the comparison.
func ValidSkillMultiplier(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

type UserProfile struct {
	ID              string
	Username        string
	Belt            Belt
	SkillMultiplier float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserContext is the small numeric profile the analysis and synthesis core reads.
type UserContext struct {
	ProfileID       string
	Belt            Belt
	SkillMultiplier float64
	// HistoryWeights maps technique name to mastery level.
	HistoryWeights map[string]float64
}

// DefaultUserContext is used when no profile is selected.
func DefaultUserContext() UserContext {
	return UserContext{
		Belt:            BeltWhite,
		SkillMultiplier: DefaultSkillMultiplier,
	}
}

// Context projects a profile plus mastery history into a UserContext.
func (p *UserProfile) Context(history map[string]float64) UserContext {
	return UserContext{
		ProfileID:       p.ID,
		Belt:            p.Belt,
		SkillMultiplier: p.SkillMultiplier,
		HistoryWeights:  history,
	}
}
