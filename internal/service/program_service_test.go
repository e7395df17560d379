package service

import (
	"context"
	"math"
	"testing"

	"github.com/alexanderramin/grapple/internal/contract"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProgram_Basic(t *testing.T) {
	svc := NewProgramService(testCatalog(t), nil)

	req := contract.NewProgramRequest([]string{"트라이앵글", "클로즈드 가드"}, 60)
	prog, err := svc.GenerateProgram(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 60, prog.TotalMinutes())
	assert.Equal(t, prog.Main.Minutes, prog.Main.AllocatedMinutes())
	assert.Equal(t, []string{"클로즈드 가드", "트라이앵글"}, prog.Meta.Techniques, "lower tier first")
	assert.Equal(t, domain.BeltWhite, prog.Meta.Belt)
	require.Len(t, prog.Combinations, 1)
	assert.Equal(t, "클로즈드 가드", prog.Combinations[0].First)
}

func TestGenerateProgram_ZeroTechniques(t *testing.T) {
	svc := NewProgramService(testCatalog(t), nil)

	prog, err := svc.GenerateProgram(context.Background(), contract.NewProgramRequest(nil, 45))
	require.NoError(t, err)

	assert.Empty(t, prog.Main.Blocks)
	assert.NotEmpty(t, prog.Warmup.Exercises)
	assert.NotEmpty(t, prog.Cooldown.Exercises)
	assert.Equal(t, 45, prog.TotalMinutes())
}

func TestGenerateProgram_UnknownIDsAreSkipped(t *testing.T) {
	m := metrics.New()
	svc := NewProgramService(testCatalog(t), m)

	prog, err := svc.GenerateProgram(context.Background(), contract.NewProgramRequest([]string{"암바", "플라잉 암바 360"}, 60))
	require.NoError(t, err)

	assert.Equal(t, []string{"플라잉 암바 360"}, prog.SkippedIDs)
	assert.Equal(t, []string{"암바"}, prog.Meta.Techniques)

	samples, err := m.Snapshot()
	require.NoError(t, err)
	got := map[string]float64{}
	for _, smp := range samples {
		got[smp.Name+"{"+smp.Labels+"}"] = smp.Value
	}
	assert.Equal(t, 1.0, got["grapple_programs_total{difficulty=normal}"])
	assert.Equal(t, 1.0, got["grapple_program_skipped_ids_total{}"])
}

func TestGenerateProgram_UserProfileApplies(t *testing.T) {
	svc := NewProgramService(testCatalog(t), nil)

	uc := domain.UserContext{Belt: domain.BeltBlue, SkillMultiplier: 1.5}
	req := contract.NewProgramRequest([]string{"암바"}, 60).ForUser(uc)
	prog, err := svc.GenerateProgram(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.BeltBlue, prog.Meta.Belt)
	assert.Equal(t, 1.5, prog.Meta.SkillMultiplier)
	assert.Equal(t, "기술들의 연결과 흐름을 중시하세요", prog.ProgressionTips[0])
}

func TestGenerateProgram_ZeroValuesGetDefaults(t *testing.T) {
	svc := NewProgramService(testCatalog(t), nil)

	prog, err := svc.GenerateProgram(context.Background(), contract.ProgramRequest{TechniqueIDs: []string{"암바"}, DurationMin: 30})
	require.NoError(t, err)

	assert.Equal(t, domain.ProgramNormal, prog.Meta.Difficulty)
	assert.Equal(t, domain.DefaultSkillMultiplier, prog.Meta.SkillMultiplier)
	assert.Equal(t, domain.BeltWhite, prog.Meta.Belt)
}

func TestGenerateProgram_InvalidInput(t *testing.T) {
	svc := NewProgramService(testCatalog(t), nil)

	tests := []struct {
		name string
		req  contract.ProgramRequest
	}{
		{"zero duration", contract.NewProgramRequest([]string{"암바"}, 0)},
		{"negative duration", contract.NewProgramRequest([]string{"암바"}, -10)},
		{"unknown difficulty", contract.ProgramRequest{DurationMin: 60, Difficulty: "brutal"}},
		{"negative skill", contract.ProgramRequest{DurationMin: 60, SkillMultiplier: -1}},
		{"NaN skill", contract.ProgramRequest{TechniqueIDs: []string{"암바"}, DurationMin: 60, SkillMultiplier: math.NaN()}},
		{"infinite skill", contract.ProgramRequest{TechniqueIDs: []string{"암바"}, DurationMin: 60, SkillMultiplier: math.Inf(1)}},
		{"negative infinite skill", contract.ProgramRequest{DurationMin: 60, SkillMultiplier: math.Inf(-1)}},
		{"unknown belt", contract.ProgramRequest{DurationMin: 60, Belt: "red"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := svc.GenerateProgram(context.Background(), tt.req)
			require.Error(t, err)
			assert.Nil(t, prog)
			assert.True(t, contract.IsInputError(err))
		})
	}
}
