package intent

import (
	"strings"

	"github.com/alexanderramin/grapple/internal/domain"
)

// Pattern is one row of the weighted intent table.
type Pattern struct {
	Intent     domain.Intent
	Triggers   []string
	Modifier   int
	Confidence float64
}

// Override makes Winner the primary intent whenever both it and Loser match,
// regardless of weight.
type Override struct {
	Winner domain.Intent
	Loser  domain.Intent
}

// Match is a pattern that fired, with the trigger that fired it.
type Match struct {
	Intent     domain.Intent
	Confidence float64
	Modifier   int
	Trigger    string
}

// Classification is the classifier output.
type Classification struct {
	Intent     domain.Intent
	Confidence float64
	Difficulty domain.DifficultyPreference
	Detected   []domain.Intent
	Matches    []Match
}

const (
	DefaultConfidence = 0.5

	easyBelow        = -0.3
	challengingAbove = 0.3
)

// DefaultPatterns is checked in order; ties on confidence keep the earlier row.
var DefaultPatterns = []Pattern{
	{Intent: domain.IntentCompete, Triggers: []string{"경기", "시합", "대회", "승급", "심사", "테스트", "준비"}, Modifier: 1, Confidence: 0.95},
	{Intent: domain.IntentStrengthen, Triggers: []string{"마스터", "완전히", "완벽하게", "강화", "향상", "발전"}, Modifier: 1, Confidence: 0.9},
	{Intent: domain.IntentLearn, Triggers: []string{"배우고", "배워", "알려", "가르쳐", "학습", "익히고", "습득", "처음", "시작", "차근차근", "천천히", "단계별로", "기초부터", "새로운"}, Modifier: -1, Confidence: 0.8},
	{Intent: domain.IntentReview, Triggers: []string{"복습", "다시", "재연습", "점검", "확인", "정리"}, Modifier: 0, Confidence: 0.7},
	{Intent: domain.IntentPractice, Triggers: []string{"연습", "훈련", "드릴", "반복"}, Modifier: 0, Confidence: 0.6},
	{Intent: domain.IntentAvoid, Triggers: []string{"피하고", "제외", "빼고", "하지말고", "말고"}, Modifier: -1, Confidence: 0.9},
	{Intent: domain.IntentImproveWeakness, Triggers: []string{"약해서", "취약", "당하는", "못하겠", "어려워서", "힘들어서", "자꾸 당해"}, Modifier: -1, Confidence: 0.8},
}

// DefaultOverrides lists precedence rules applied before weight comparison.
// Exclusion phrases narrow the scope of a learning request; they do not
// change the learner's goal.
var DefaultOverrides = []Override{
	{Winner: domain.IntentLearn, Loser: domain.IntentAvoid},
}

type Classifier struct {
	patterns  []Pattern
	overrides []Override
}

func NewClassifier() *Classifier {
	return NewClassifierWith(DefaultPatterns, DefaultOverrides)
}

func NewClassifierWith(patterns []Pattern, overrides []Override) *Classifier {
	return &Classifier{patterns: patterns, overrides: overrides}
}

// Classify reads already-normalized text. It never fails: no match yields
// practice at DefaultConfidence with normal difficulty.
func (c *Classifier) Classify(normalized string) Classification {
	var matches []Match
	for _, p := range c.patterns {
		for _, trig := range p.Triggers {
			if strings.Contains(normalized, trig) {
				matches = append(matches, Match{Intent: p.Intent, Confidence: p.Confidence, Modifier: p.Modifier, Trigger: trig})
				break
			}
		}
	}

	if len(matches) == 0 {
		return Classification{
			Intent:     domain.IntentPractice,
			Confidence: DefaultConfidence,
			Difficulty: domain.PreferNormal,
		}
	}

	primary := c.primary(matches)
	detected := make([]domain.Intent, len(matches))
	sum := 0
	for i, m := range matches {
		detected[i] = m.Intent
		sum += m.Modifier
	}

	return Classification{
		Intent:     primary.Intent,
		Confidence: primary.Confidence,
		Difficulty: bucket(float64(sum) / float64(len(matches))),
		Detected:   detected,
		Matches:    matches,
	}
}

func (c *Classifier) primary(matches []Match) Match {
	for _, o := range c.overrides {
		winner, okW := find(matches, o.Winner)
		_, okL := find(matches, o.Loser)
		if okW && okL {
			return winner
		}
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Confidence > best.Confidence {
			best = m
		}
	}
	return best
}

func find(matches []Match, in domain.Intent) (Match, bool) {
	for _, m := range matches {
		if m.Intent == in {
			return m, true
		}
	}
	return Match{}, false
}

func bucket(avg float64) domain.DifficultyPreference {
	switch {
	case avg < easyBelow:
		return domain.PreferEasy
	case avg > challengingAbove:
		return domain.PreferChallenging
	default:
		return domain.PreferNormal
	}
}
