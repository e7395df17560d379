package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45%.
// The bar is colored based on the ratio: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	bar, style := progressBar(pct, width)
	return fmt.Sprintf("[%s] %s", style.Render(bar), fmt.Sprintf("%3.0f%%", clampRatio(pct)*100))
}

// RenderCompactBar renders only the colored blocks, for table cells.
func RenderCompactBar(pct float64, width int) string {
	bar, style := progressBar(pct, width)
	return style.Render(bar)
}

func progressBar(pct float64, width int) (string, lipgloss.Style) {
	pct = clampRatio(pct)
	if width < 2 {
		width = 2
	}

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return bar, style
}

func clampRatio(pct float64) float64 {
	return max(0, min(pct, 1))
}
