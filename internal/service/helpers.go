package service

import (
	"sort"

	"github.com/alexanderramin/grapple/internal/catalog"
	"github.com/alexanderramin/grapple/internal/domain"
)

const topMasteryCount = 5

// TrainingStats aggregates a user's training log.
type TrainingStats struct {
	Sessions     int
	TotalMinutes int
	// MinutesByCategory spreads each session's minutes evenly over its
	// techniques. Techniques not in the catalog are not counted.
	MinutesByCategory map[domain.Category]int
	AvgQuality        float64
	TopMastery        []*domain.MasteryRecord
}

// Categories returns the categories with logged minutes, most minutes first.
func (s TrainingStats) Categories() []domain.Category {
	cats := make([]domain.Category, 0, len(s.MinutesByCategory))
	for c := range s.MinutesByCategory {
		cats = append(cats, c)
	}
	sort.SliceStable(cats, func(i, j int) bool {
		if s.MinutesByCategory[cats[i]] != s.MinutesByCategory[cats[j]] {
			return s.MinutesByCategory[cats[i]] > s.MinutesByCategory[cats[j]]
		}
		return cats[i] < cats[j]
	})
	return cats
}

// aggregateTrainingStats computes totals from sessions and mastery records.
// records are expected strongest first, as the mastery repo returns them.
func aggregateTrainingStats(sessions []*domain.TrainingSession, records []*domain.MasteryRecord, cat *catalog.Catalog) TrainingStats {
	st := TrainingStats{MinutesByCategory: make(map[domain.Category]int)}
	var qualitySum float64
	for _, sess := range sessions {
		st.Sessions++
		st.TotalMinutes += sess.DurationMin
		qualitySum += sess.QualityScore

		if len(sess.Techniques) == 0 {
			continue
		}
		share := sess.DurationMin / len(sess.Techniques)
		rem := sess.DurationMin % len(sess.Techniques)
		for i, name := range sess.Techniques {
			rec, ok := cat.Lookup(name)
			if !ok {
				continue
			}
			mins := share
			if i < rem {
				mins++
			}
			st.MinutesByCategory[rec.Category] += mins
		}
	}
	if st.Sessions > 0 {
		st.AvgQuality = qualitySum / float64(st.Sessions)
	}

	n := min(len(records), topMasteryCount)
	st.TopMastery = records[:n]
	return st
}
