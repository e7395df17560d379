package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/service"
)

// FormatHistory renders training sessions newest first, as given.
func FormatHistory(sessions []*domain.TrainingSession, now time.Time) string {
	if len(sessions) == 0 {
		return Dim("No sessions logged yet.") + "\n"
	}
	headers := []string{"ID", "WHEN", "NAME", "DURATION", "DIFFICULTY", "TECHNIQUES"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		techniques := strings.Join(s.Techniques, ", ")
		if r := []rune(techniques); len(r) > 40 {
			techniques = string(r[:37]) + "..."
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			HumanTimestampFrom(s.CreatedAt, now),
			s.Name,
			FormatMinutes(s.DurationMin),
			string(s.Difficulty),
			Dim(techniques),
		})
	}
	return RenderBox("History", RenderTable(headers, rows))
}

// FormatStats renders aggregate training statistics for one user.
func FormatStats(username string, st *service.TrainingStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("user    "), Bold(username))
	fmt.Fprintf(&b, "%s %d\n", Dim("sessions"), st.Sessions)
	fmt.Fprintf(&b, "%s %s\n", Dim("total   "), FormatMinutes(st.TotalMinutes))
	fmt.Fprintf(&b, "%s %.2f\n", Dim("quality "), st.AvgQuality)

	if cats := st.Categories(); len(cats) > 0 {
		b.WriteString("\n" + Header("Minutes by category") + "\n")
		rows := make([][]string, 0, len(cats))
		for _, c := range cats {
			mins := st.MinutesByCategory[c]
			share := 0.0
			if st.TotalMinutes > 0 {
				share = float64(mins) / float64(st.TotalMinutes)
			}
			rows = append(rows, []string{c.Label(), FormatMinutes(mins), RenderCompactBar(share, 12)})
		}
		b.WriteString(RenderTable([]string{"CATEGORY", "MINUTES", ""}, rows))
	}

	if len(st.TopMastery) > 0 {
		b.WriteString("\n" + Header("Top mastery") + "\n")
		b.WriteString(FormatMasteryTable(st.TopMastery))
	}
	return RenderBox("Stats", b.String())
}

// FormatMasteryTable renders mastery records as a table.
func FormatMasteryTable(records []*domain.MasteryRecord) string {
	rows := make([][]string, 0, len(records))
	for _, m := range records {
		rows = append(rows, []string{
			m.TechniqueName,
			RenderProgress(m.Level, 10),
			fmt.Sprintf("%d", m.PracticeCount),
			HumanDate(m.LastPracticed),
		})
	}
	return RenderTable([]string{"TECHNIQUE", "LEVEL", "PRACTICED", "LAST"}, rows)
}

// FormatProfile renders one user profile.
func FormatProfile(p *domain.UserProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("username"), Bold(p.Username))
	fmt.Fprintf(&b, "%s %s\n", Dim("belt    "), BeltBadge(p.Belt))
	fmt.Fprintf(&b, "%s %.2f\n", Dim("skill   "), p.SkillMultiplier)
	fmt.Fprintf(&b, "%s %s\n", Dim("id      "), TruncID(p.ID))
	fmt.Fprintf(&b, "%s %s\n", Dim("since   "), HumanDate(p.CreatedAt))
	return RenderBox("Profile", b.String())
}

// FormatProfiles renders all profiles as a table.
func FormatProfiles(users []*domain.UserProfile) string {
	if len(users) == 0 {
		return Dim("No profiles. Create one with: grapple profile create <name>") + "\n"
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{TruncID(u.ID), u.Username, BeltBadge(u.Belt), fmt.Sprintf("%.2f", u.SkillMultiplier)})
	}
	return RenderBox("Profiles", RenderTable([]string{"ID", "USERNAME", "BELT", "SKILL"}, rows))
}
