package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/grapple/internal/cli/formatter"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage practitioner profiles",
	}

	cmd.AddCommand(
		newProfileCreateCmd(app),
		newProfileShowCmd(app),
		newProfileSetCmd(app),
		newProfileListCmd(app),
	)

	return cmd
}

func newProfileCreateCmd(app *App) *cobra.Command {
	var beltFlag string
	var skill float64

	cmd := &cobra.Command{
		Use:   "create [username]",
		Short: "Create a profile",
		Long:  "Create a profile. Without a username on a terminal, a form asks for the fields.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var username string
			switch {
			case len(args) == 1:
				username = args[0]
			case app.interactive():
				var err error
				if username, beltFlag, skill, err = runProfileForm(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("username is required")
			}

			belt := domain.BeltWhite
			if beltFlag != "" {
				var err error
				if belt, err = domain.ParseBelt(beltFlag); err != nil {
					return err
				}
			}

			p, err := app.Profiles.Create(ctx, username, belt, skill)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created profile %s (%s)\n", p.Username, formatter.TruncID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&beltFlag, "belt", "", "Belt: white, blue, purple, brown, black (or 화이트, 블루, ...)")
	cmd.Flags().Float64Var(&skill, "skill", domain.DefaultSkillMultiplier, "Skill multiplier (1.0 is average)")

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <username>",
		Short: "Show a profile and its mastery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProfile(ctx, app, args[0])
			if err != nil {
				return err
			}
			records, err := app.Log.Mastery(ctx, p.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatProfile(p))
			fmt.Fprint(out, formatter.FormatMasteryTable(records))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var beltFlag string
	var skill float64

	cmd := &cobra.Command{
		Use:   "set <username>",
		Short: "Update a profile's belt or skill multiplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProfile(ctx, app, args[0])
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("belt") {
				if p.Belt, err = domain.ParseBelt(beltFlag); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("skill") {
				p.SkillMultiplier = skill
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to update (use --belt or --skill)")
			}

			if err := app.Profiles.Update(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated profile %s\n", p.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&beltFlag, "belt", "", "New belt")
	cmd.Flags().Float64Var(&skill, "skill", 0, "New skill multiplier")

	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Profiles.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfiles(users))
			return nil
		},
	}
}

func runProfileForm() (username, belt string, skill float64, err error) {
	belt = string(domain.BeltWhite)
	skillText := "1.0"
	if err = profileForm(&username, &belt, &skillText).Run(); err != nil {
		return "", "", 0, err
	}
	skill, err = strconv.ParseFloat(strings.TrimSpace(skillText), 64)
	return strings.TrimSpace(username), belt, skill, err
}
