package confidence

import (
	"math"
	"unicode/utf8"

	"github.com/alexanderramin/grapple/internal/domain"
)

const (
	baseWeight        = 0.7
	maxLengthBonus    = 0.2
	runesPerFullBonus = 100.0
	intentWeight      = 0.3
	nameBonus         = 0.1

	// Match confidence treats this score as "fully confident" per technique.
	scorePerMatch = 10.0
)

// Analysis is the overall trust in a classification, clipped to [0,1] and
// rounded to two decimals.
func Analysis(normalized string, intentConfidence float64, nameMentioned bool) float64 {
	lengthBonus := math.Min(float64(utf8.RuneCountInString(normalized))/runesPerFullBonus, maxLengthBonus)
	score := baseWeight + lengthBonus + intentWeight*intentConfidence
	if nameMentioned {
		score += nameBonus
	}
	return round2(clamp(score, 0, 1))
}

// Matches is sum(scores) / (count*10), capped at 1. Zero matches yield 0.
func Matches(matches []domain.TechniqueMatch) float64 {
	if len(matches) == 0 {
		return 0
	}
	total := 0
	for _, m := range matches {
		total += m.Score
	}
	return round2(clamp(float64(total)/(float64(len(matches))*scorePerMatch), 0, 1))
}

func clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
