package contract

import "github.com/alexanderramin/grapple/internal/domain"

const (
	DefaultProgramMinutes = 60
)

type ProgramRequest struct {
	TechniqueIDs    []string
	DurationMin     int
	Difficulty      domain.ProgramDifficulty
	SkillMultiplier float64
	Belt            domain.Belt
}

func NewProgramRequest(techniqueIDs []string, durationMin int) ProgramRequest {
	return ProgramRequest{
		TechniqueIDs:    techniqueIDs,
		DurationMin:     durationMin,
		Difficulty:      domain.ProgramNormal,
		SkillMultiplier: domain.DefaultSkillMultiplier,
		Belt:            domain.BeltWhite,
	}
}

// ForUser copies the skill multiplier and belt from uc.
func (r ProgramRequest) ForUser(uc domain.UserContext) ProgramRequest {
	if uc.SkillMultiplier > 0 {
		r.SkillMultiplier = uc.SkillMultiplier
	}
	if uc.Belt.Valid() {
		r.Belt = uc.Belt
	}
	return r
}
