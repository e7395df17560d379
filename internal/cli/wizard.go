package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/grapple/internal/catalog"
	"github.com/alexanderramin/grapple/internal/cli/formatter"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const pickerHeight = 14

// grappleHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func grappleHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// techniqueOptions lists the catalog as picker options, labelled with the
// category and tier.
func techniqueOptions(cat *catalog.Catalog) []huh.Option[string] {
	recs := cat.All()
	options := make([]huh.Option[string], 0, len(recs))
	for _, r := range recs {
		label := fmt.Sprintf("%s  %s %s", r.Name, formatter.Dim(r.Category.Label()), formatter.TierStars(r.Difficulty))
		options = append(options, huh.NewOption(label, r.Name))
	}
	return options
}

func validatePicked(picked []string) error {
	if len(picked) == 0 {
		return errors.New("pick at least one technique")
	}
	return nil
}

// techniquePickerForm builds a filterable multi-select over the catalog.
func techniquePickerForm(cat *catalog.Catalog, picked *[]string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Techniques").
				Description("space to toggle, / to filter, enter to confirm").
				Options(techniqueOptions(cat)...).
				Height(pickerHeight).
				Filterable(true).
				Value(picked).
				Validate(validatePicked),
		),
	).WithTheme(grappleHuhTheme()).WithShowHelp(false)
}

// pickTechniques runs the picker on the terminal and returns the chosen names.
func pickTechniques(cat *catalog.Catalog) ([]string, error) {
	var picked []string
	if err := techniquePickerForm(cat, &picked).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, fmt.Errorf("technique selection cancelled")
		}
		return nil, err
	}
	return picked, nil
}

func beltOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.Belts))
	for _, b := range domain.Belts {
		options = append(options, huh.NewOption(b.Label(), string(b)))
	}
	return options
}

func validateSkill(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return errors.New("enter a positive number, e.g. 1.0")
	}
	return nil
}

// profileForm collects a username, belt and skill multiplier.
func profileForm(username, belt, skill *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(username).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("username is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Belt").
				Options(beltOptions()...).
				Value(belt),
			huh.NewInput().
				Title("Skill multiplier").
				Placeholder("1.0").
				Value(skill).
				Validate(validateSkill),
		),
	).WithTheme(grappleHuhTheme()).WithShowHelp(false)
}
