package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/grapple/internal/domain"
)

// FormatProgram renders a TrainingProgram phase by phase.
func FormatProgram(p *domain.TrainingProgram) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s   %s %s   %s %s   %s %.2f\n",
		Dim("total"), Bold(FormatMinutes(p.Meta.TotalMinutes)),
		Dim("difficulty"), p.Meta.Difficulty,
		Dim("belt"), BeltBadge(p.Meta.Belt),
		Dim("quality"), p.Meta.QualityScore)

	b.WriteString("\n" + Header(fmt.Sprintf("Warmup · %s", FormatMinutes(p.Warmup.Minutes))) + "\n")
	b.WriteString("  " + Dim(p.Warmup.Focus) + "\n")
	b.WriteString(Bullets(p.Warmup.Exercises, 2))

	b.WriteString("\n" + Header(fmt.Sprintf("Main session · %s", FormatMinutes(p.Main.Minutes))) + "\n")
	if len(p.Main.Blocks) == 0 {
		b.WriteString("  " + Dim("no techniques selected") + "\n")
	}
	for i, blk := range p.Main.Blocks {
		fmt.Fprintf(&b, "  %d. %s %s %s\n", i+1, Bold(blk.Technique), TierStars(blk.Difficulty),
			Dim(fmt.Sprintf("%s · %s", blk.Category.Label(), FormatMinutes(blk.Minutes))))
		fmt.Fprintf(&b, "     %s %s  %s %s  %s %s\n",
			Dim("explain"), FormatMinutes(blk.Split.ExplanationMin),
			Dim("drill"), FormatMinutes(blk.Split.DrillMin),
			Dim("apply"), FormatMinutes(blk.Split.ApplicationMin))
		fmt.Fprintf(&b, "     %s %s\n", StyleGreen.Render("key"), strings.Join(blk.KeyPoints, " · "))
		fmt.Fprintf(&b, "     %s %s\n", StyleRed.Render("avoid"), strings.Join(blk.CommonMistakes, " · "))
		fmt.Fprintf(&b, "     %s %s\n", StyleBlue.Render("tips"), strings.Join(blk.DifficultyTips, " · "))
	}

	b.WriteString("\n" + Header(fmt.Sprintf("Cooldown · %s", FormatMinutes(p.Cooldown.Minutes))) + "\n")
	b.WriteString("  " + Dim(p.Cooldown.Focus) + "\n")
	b.WriteString(Bullets(p.Cooldown.Exercises, 2))

	if len(p.Combinations) > 0 {
		b.WriteString("\n" + Header("Combinations") + "\n")
		for _, c := range p.Combinations {
			fmt.Fprintf(&b, "  %s → %s %s\n", c.First, c.Second, Dim("("+c.Connection+")"))
		}
	}

	if len(p.ProgressionTips) > 0 {
		b.WriteString("\n" + Header("Progression") + "\n")
		b.WriteString(Bullets(p.ProgressionTips, 2))
	}

	if len(p.SkippedIDs) > 0 {
		fmt.Fprintf(&b, "\n%s %s\n", StyleYellow.Render("skipped (not in catalog):"), strings.Join(p.SkippedIDs, ", "))
	}

	return RenderBox("Training program", b.String())
}
