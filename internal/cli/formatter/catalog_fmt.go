package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/grapple/internal/cache"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/metrics"
)

// FormatTechniques renders catalog records as a table.
func FormatTechniques(recs []domain.TechniqueRecord) string {
	if len(recs) == 0 {
		return Dim("No techniques.") + "\n"
	}
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		category := r.Category.Label()
		if r.SubType != "" {
			category += Dim(" · " + r.SubType.Label())
		}
		rows = append(rows, []string{r.Name, category, TierStars(r.Difficulty), Dim(strings.Join(r.Aliases, ", "))})
	}
	title := fmt.Sprintf("Techniques (%d)", len(recs))
	return RenderBox(title, RenderTable([]string{"NAME", "CATEGORY", "TIER", "ALIASES"}, rows))
}

// FormatTechniqueDetail renders one record with its descriptions.
func FormatTechniqueDetail(r domain.TechniqueRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Bold(r.Name), TierStars(r.Difficulty))
	fmt.Fprintf(&b, "%s %s\n", Dim("category"), r.Category.Label())
	if r.SubType != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("type    "), r.SubType.Label())
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("aliases "), JoinOrDash(r.Aliases))
	b.WriteString(Bullets(r.Descriptions, 2))
	return b.String()
}

// FormatMetrics renders cache statistics and gathered counters.
func FormatMetrics(stats *cache.Stats, samples []metrics.Sample) string {
	var b strings.Builder
	if stats != nil {
		b.WriteString(Header("Cache") + "\n")
		fmt.Fprintf(&b, "  %s %d/%d  %s %d  %s %d  %s %d  %s %d\n",
			Dim("entries"), stats.Len, stats.Capacity,
			Dim("hits"), stats.Hits,
			Dim("misses"), stats.Misses,
			Dim("evictions"), stats.Evictions,
			Dim("rejected"), stats.Rejected)
	}
	if len(samples) > 0 {
		if stats != nil {
			b.WriteString("\n")
		}
		b.WriteString(Header("Metrics") + "\n")
		rows := make([][]string, 0, len(samples))
		for _, s := range samples {
			rows = append(rows, []string{s.Name, Dim(s.Labels), formatSampleValue(s.Value)})
		}
		b.WriteString(RenderTable([]string{"NAME", "LABELS", "VALUE"}, rows))
	}
	if b.Len() == 0 {
		return ""
	}
	return RenderBox("Run metrics", b.String())
}

func formatSampleValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.4f", v)
}
