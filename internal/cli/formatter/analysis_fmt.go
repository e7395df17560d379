package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/grapple/internal/domain"
)

// FormatAnalysis renders an AnalysisResult as a boxed report.
func FormatAnalysis(res *domain.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Dim("Request"), res.Text)
	fmt.Fprintf(&b, "%s  %s %s\n", Dim("Intent "), IntentBadge(res.Intent), Dim(fmt.Sprintf("(%.2f)", res.IntentConfidence)))
	if len(res.DetectedIntents) > 1 {
		detected := make([]string, 0, len(res.DetectedIntents))
		for _, in := range res.DetectedIntents {
			detected = append(detected, string(in))
		}
		fmt.Fprintf(&b, "%s  %s\n", Dim("Also   "), strings.Join(detected, ", "))
	}
	fmt.Fprintf(&b, "%s  %s / cue %s\n", Dim("Level  "), res.DifficultyPreference, res.DifficultyCue)
	fmt.Fprintf(&b, "%s  %s %s\n", Dim("Effort "), res.Intensity, Dim(fmt.Sprintf("(%.1f)", res.IntensityScore)))
	if res.IsBeginner {
		fmt.Fprintf(&b, "%s  %s\n", Dim("Level  "), StyleGreen.Render("beginner"))
	}
	if len(res.Emotions) > 0 {
		emotions := make([]string, 0, len(res.Emotions))
		for _, e := range res.Emotions {
			emotions = append(emotions, string(e))
		}
		fmt.Fprintf(&b, "%s  %s\n", Dim("Mood   "), strings.Join(emotions, ", "))
	}

	b.WriteString("\n" + Header("Features") + "\n")
	fmt.Fprintf(&b, "  %s  %s\n", Dim("body parts"), JoinOrDash(res.BodyParts))
	fmt.Fprintf(&b, "  %s     %s\n", Dim("actions"), JoinOrDash(res.Actions))

	if hasExclusions(res) {
		b.WriteString("\n" + Header("Exclusions") + "\n")
		for _, n := range res.ExcludedTechniques {
			fmt.Fprintf(&b, "  %s %s\n", StyleRed.Render("✖"), n)
		}
		for _, c := range res.ExcludedCategories {
			fmt.Fprintf(&b, "  %s %s %s\n", StyleRed.Render("✖"), c.Label(), Dim("(category)"))
		}
		for _, ft := range res.FreeTextExclusions {
			fmt.Fprintf(&b, "  %s %s %s\n", StyleYellow.Render("?"), ft, Dim("(not in catalog)"))
		}
		for _, p := range res.Preferences {
			fmt.Fprintf(&b, "  %s %s → %s\n", StyleBlue.Render("↪"), p.Avoid, p.Prefer)
		}
	}

	b.WriteString("\n" + Header("Primary matches") + "\n")
	b.WriteString(matchTable(res.PrimaryMatches))
	if len(res.RelatedMatches) > 0 {
		b.WriteString("\n" + Header("Related") + "\n")
		b.WriteString(matchTable(res.RelatedMatches))
	}
	if len(res.TakedownSuggestions) > 0 {
		b.WriteString("\n" + Header("Takedowns") + "\n")
		names := make([]string, 0, len(res.TakedownSuggestions))
		for _, m := range res.TakedownSuggestions {
			names = append(names, m.Name)
		}
		b.WriteString("  " + strings.Join(names, ", ") + "\n")
	}

	fmt.Fprintf(&b, "\n%s %s   %s %s\n",
		Dim("confidence"), RenderProgress(res.Confidence, 10),
		Dim("match"), RenderProgress(res.MatchConfidence, 10))

	return RenderBox("Analysis", b.String())
}

func hasExclusions(res *domain.AnalysisResult) bool {
	return len(res.ExcludedTechniques)+len(res.ExcludedCategories)+len(res.FreeTextExclusions)+len(res.Preferences) > 0
}

func matchTable(matches []domain.TechniqueMatch) string {
	if len(matches) == 0 {
		return "  " + Dim("no matches") + "\n"
	}
	withMastery := false
	for _, m := range matches {
		if m.Mastery != nil {
			withMastery = true
			break
		}
	}

	headers := []string{"TECHNIQUE", "CATEGORY", "TIER", "SCORE"}
	if withMastery {
		headers = append(headers, "MASTERY")
	}
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		category := m.Category.Label()
		if m.SubType != "" {
			category += Dim(" · " + m.SubType.Label())
		}
		row := []string{m.Name, category, TierStars(m.Difficulty), fmt.Sprintf("%d", m.Score)}
		if withMastery {
			mastery := Dim("--")
			if m.Mastery != nil {
				mastery = RenderCompactBar(*m.Mastery, 8)
			}
			row = append(row, mastery)
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}
