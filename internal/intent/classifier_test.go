package intent

import (
	"testing"

	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify_NoMatchIsNeutral(t *testing.T) {
	got := NewClassifier().Classify("암바")

	assert.Equal(t, domain.IntentPractice, got.Intent)
	assert.Equal(t, DefaultConfidence, got.Confidence)
	assert.Equal(t, domain.PreferNormal, got.Difficulty)
	assert.Empty(t, got.Detected)
}

func TestClassify_LearnBeatsAvoid(t *testing.T) {
	got := NewClassifier().Classify("트라이앵글은 말고 다른 서브미션들을 배우고 싶어요")

	assert.Equal(t, domain.IntentLearn, got.Intent)
	assert.Equal(t, 0.8, got.Confidence)
	assert.ElementsMatch(t, []domain.Intent{domain.IntentLearn, domain.IntentAvoid}, got.Detected)
	assert.Equal(t, domain.PreferEasy, got.Difficulty)
}

func TestClassify_OverrideIgnoresHigherWeights(t *testing.T) {
	// compete outweighs learn, but the learn/avoid rule still applies
	got := NewClassifier().Classify("경기 기술은 빼고 배우고 싶어")
	assert.Equal(t, domain.IntentLearn, got.Intent)
}

func TestClassify_HighestWeightWins(t *testing.T) {
	tests := []struct {
		text string
		want domain.Intent
		diff domain.DifficultyPreference
	}{
		{"경기 준비로 연습", domain.IntentCompete, domain.PreferChallenging},
		{"스위프 마스터하고 싶어요", domain.IntentStrengthen, domain.PreferChallenging},
		{"복습 하고 싶어", domain.IntentReview, domain.PreferNormal},
		{"가드 드릴", domain.IntentPractice, domain.PreferNormal},
		{"마운트에서 자꾸 당해요", domain.IntentImproveWeakness, domain.PreferEasy},
		{"암바는 피하고 싶어", domain.IntentAvoid, domain.PreferEasy},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := NewClassifier().Classify(tt.text)
			assert.Equal(t, tt.want, got.Intent)
			assert.Equal(t, tt.diff, got.Difficulty)
		})
	}
}

func TestClassify_TieKeepsTableOrder(t *testing.T) {
	c := NewClassifierWith([]Pattern{
		{Intent: domain.IntentReview, Triggers: []string{"a"}, Confidence: 0.7},
		{Intent: domain.IntentPractice, Triggers: []string{"b"}, Confidence: 0.7},
	}, nil)

	assert.Equal(t, domain.IntentReview, c.Classify("b a").Intent)
}

func TestClassify_OnePatternCountsOnce(t *testing.T) {
	got := NewClassifier().Classify("연습 훈련 드릴 반복")
	assert.Len(t, got.Matches, 1)
	assert.Equal(t, "연습", got.Matches[0].Trigger)
}

func TestBucket(t *testing.T) {
	assert.Equal(t, domain.PreferEasy, bucket(-0.34))
	assert.Equal(t, domain.PreferNormal, bucket(-0.3))
	assert.Equal(t, domain.PreferNormal, bucket(0.3))
	assert.Equal(t, domain.PreferChallenging, bucket(0.5))
}
