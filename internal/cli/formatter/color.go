package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorBrown  = lipgloss.Color("#d65d0e")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleBrown  = lipgloss.NewStyle().Foreground(ColorBrown)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TierStyle colors a difficulty tier from green (1) to red (5).
func TierStyle(tier int) lipgloss.Style {
	switch {
	case tier <= 1:
		return StyleGreen
	case tier == 2:
		return StyleBlue
	case tier == 3:
		return StyleYellow
	case tier == 4:
		return StyleBrown
	default:
		return StyleRed
	}
}

// TierStars renders a tier as filled and empty stars, e.g. ★★★☆☆.
func TierStars(tier int) string {
	tier = max(domain.MinDifficulty, min(tier, domain.MaxDifficulty))
	stars := strings.Repeat("★", tier) + strings.Repeat("☆", domain.MaxDifficulty-tier)
	return TierStyle(tier).Render(stars)
}

// BeltBadge renders the belt label in its color.
func BeltBadge(b domain.Belt) string {
	style := StyleFg
	switch b {
	case domain.BeltBlue:
		style = StyleBlue
	case domain.BeltPurple:
		style = StylePurple
	case domain.BeltBrown:
		style = StyleBrown
	case domain.BeltBlack:
		style = StyleBold
	}
	return style.Render("● " + b.Label())
}

// IntentBadge renders an intent with a color by goal.
func IntentBadge(in domain.Intent) string {
	switch in {
	case domain.IntentLearn:
		return StyleGreen.Render("▲ " + string(in))
	case domain.IntentCompete, domain.IntentStrengthen:
		return StyleRed.Render("▲ " + string(in))
	case domain.IntentAvoid:
		return StyleDim.Render("○ " + string(in))
	default:
		return StyleBlue.Render("● " + string(in))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
