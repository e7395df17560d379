package contract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- AnalyzeRequest ---

func TestNewAnalyzeRequest_NoUser(t *testing.T) {
	req := NewAnalyzeRequest("암바 배우고 싶어요")

	assert.Equal(t, "암바 배우고 싶어요", req.Text)
	assert.Nil(t, req.User)
}

func TestAnalyzeRequest_WithUser_DoesNotMutateOriginal(t *testing.T) {
	base := NewAnalyzeRequest("암바")
	scoped := base.WithUser(domain.UserContext{ProfileID: "u1", Belt: domain.BeltBlue})

	assert.Nil(t, base.User)
	require.NotNil(t, scoped.User)
	assert.Equal(t, "u1", scoped.User.ProfileID)
}

// --- ProgramRequest ---

func TestNewProgramRequest_SetsDefaults(t *testing.T) {
	req := NewProgramRequest([]string{"암바"}, 45)

	assert.Equal(t, []string{"암바"}, req.TechniqueIDs)
	assert.Equal(t, 45, req.DurationMin)
	assert.Equal(t, domain.ProgramNormal, req.Difficulty)
	assert.Equal(t, 1.0, req.SkillMultiplier)
	assert.Equal(t, domain.BeltWhite, req.Belt)
}

func TestNewProgramRequest_ZeroMinutes_Preserved(t *testing.T) {
	// validation happens in the service layer
	req := NewProgramRequest(nil, 0)
	assert.Equal(t, 0, req.DurationMin)
}

func TestProgramRequest_ForUser(t *testing.T) {
	req := NewProgramRequest(nil, 60).ForUser(domain.UserContext{Belt: domain.BeltPurple, SkillMultiplier: 1.4})
	assert.Equal(t, domain.BeltPurple, req.Belt)
	assert.Equal(t, 1.4, req.SkillMultiplier)

	// an empty context keeps the defaults
	req = NewProgramRequest(nil, 60).ForUser(domain.UserContext{})
	assert.Equal(t, domain.BeltWhite, req.Belt)
	assert.Equal(t, 1.0, req.SkillMultiplier)
}

// --- PipelineError ---

func TestPipelineError_Format(t *testing.T) {
	err := InvalidInput("duration must be positive, got %d", 0)
	assert.Equal(t, "INVALID_INPUT: duration must be positive, got 0", err.Error())
}

func TestIsInputError_UnwrapsChain(t *testing.T) {
	wrapped := fmt.Errorf("generate: %w", InvalidInput("empty text"))
	assert.True(t, IsInputError(wrapped))

	code, ok := CodeOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrInvalidInput, code)

	assert.False(t, IsInputError(Internal(errors.New("boom"))))
	assert.False(t, IsInputError(errors.New("plain")))
	assert.False(t, IsInputError(nil))
}
