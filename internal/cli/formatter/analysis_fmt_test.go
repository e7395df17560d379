package formatter

import (
	"testing"

	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleAnalysis() *domain.AnalysisResult {
	mastery := 0.4
	return &domain.AnalysisResult{
		Text:                 "트라이앵글은 말고 다리로 목 조르는 기술",
		Intent:               domain.IntentLearn,
		IntentConfidence:     0.8,
		DetectedIntents:      []domain.Intent{domain.IntentLearn, domain.IntentAvoid},
		DifficultyPreference: domain.PreferEasy,
		DifficultyCue:        domain.CueNormal,
		BodyParts:            []string{"다리", "목"},
		Actions:              []string{"조르기"},
		Intensity:            domain.IntensityMedium,
		IntensityScore:       0.5,
		ExcludedTechniques:   []string{"트라이앵글"},
		FreeTextExclusions:   []string{"뭔가"},
		Preferences:          []domain.Preference{{Avoid: "가드", Prefer: "패스"}},
		PrimaryMatches: []domain.TechniqueMatch{
			{Name: "오모플라타", Category: domain.CategorySubmission, Difficulty: 4, SubType: domain.SubmissionJointLock, Score: 9, Mastery: &mastery},
		},
		RelatedMatches: []domain.TechniqueMatch{
			{Name: "기요틴", Category: domain.CategorySubmission, Difficulty: 2, Score: 3},
		},
		Confidence:      0.95,
		MatchConfidence: 0.6,
	}
}

func TestFormatAnalysis_Sections(t *testing.T) {
	out := stripANSI(FormatAnalysis(sampleAnalysis()))

	assert.Contains(t, out, "ANALYSIS")
	assert.Contains(t, out, "learn")
	assert.Contains(t, out, "learn, avoid")
	assert.Contains(t, out, "다리, 목")
	assert.Contains(t, out, "✖ 트라이앵글")
	assert.Contains(t, out, "뭔가 (not in catalog)")
	assert.Contains(t, out, "가드 → 패스")
	assert.Contains(t, out, "오모플라타")
	assert.Contains(t, out, "MASTERY")
	assert.Contains(t, out, "기요틴")
	assert.Contains(t, out, " 95%")
}

func TestFormatAnalysis_NoMatches(t *testing.T) {
	res := &domain.AnalysisResult{Text: "안녕하세요", Intent: domain.IntentPractice, IntentConfidence: 0.5}
	out := stripANSI(FormatAnalysis(res))

	assert.Contains(t, out, "no matches")
	assert.NotContains(t, out, "EXCLUSIONS")
	assert.NotContains(t, out, "RELATED")
	assert.NotContains(t, out, "MASTERY")
}
