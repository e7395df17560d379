package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/grapple/internal/cli/formatter"
	"github.com/alexanderramin/grapple/internal/contract"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/spf13/cobra"
)

func newProgramCmd(app *App) *cobra.Command {
	var techniques []string
	var minutes int
	var difficulty, username, name, from string
	var save, asJSON bool
	var completion float64
	var feedback int

	cmd := &cobra.Command{
		Use:   "program",
		Short: "Build a time-boxed training program",
		Long: `Build a warmup / main / cooldown program for a set of techniques.

Techniques come from --technique (repeatable, names or aliases), from the
primary matches of a request with --from, or from an interactive picker
when neither is given on a terminal.`,
		Example: `  grapple program -t 암바 -t "클로즈드 가드" --minutes 90
  grapple program --from "하체 관절기 배우고 싶어요" --difficulty hard
  grapple program -t 트라이앵글 --user minji --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if save && username == "" {
				return fmt.Errorf("--save requires --user")
			}

			ids := append([]string(nil), techniques...)
			if from != "" {
				res, err := app.Analysis.AnalyzeRequest(ctx, contract.NewAnalyzeRequest(from))
				if err != nil {
					return err
				}
				for _, m := range res.PrimaryMatches {
					ids = append(ids, m.Name)
				}
				if len(ids) == 0 {
					return fmt.Errorf("no techniques recognized in %q", from)
				}
			}
			if len(ids) == 0 && app.interactive() {
				picked, err := pickTechniques(app.Catalog)
				if err != nil {
					return err
				}
				ids = picked
			}

			if !cmd.Flags().Changed("minutes") {
				minutes = app.defaultDuration()
			}
			req := contract.NewProgramRequest(ids, minutes)
			req.Difficulty = app.defaultDifficulty()
			if difficulty != "" {
				req.Difficulty = domain.ProgramDifficulty(strings.ToLower(strings.TrimSpace(difficulty)))
			}

			var uc *domain.UserContext
			if username != "" {
				var err error
				if uc, err = resolveUserContext(ctx, app, username); err != nil {
					return err
				}
				req = req.ForUser(*uc)
			}

			prog, err := app.Programs.GenerateProgram(ctx, req)
			if err != nil {
				return err
			}
			if asJSON {
				if err := writeJSON(out, prog); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, formatter.FormatProgram(prog))
			}

			if !save {
				return nil
			}
			summary := prog.Summary(name)
			summary.CompletionRate = completion
			summary.FeedbackScore = feedback
			id, err := app.Log.SaveSessionOutcome(ctx, uc.ProfileID, summary)
			if err != nil {
				return fmt.Errorf("saving session: %w", err)
			}
			if !asJSON {
				fmt.Fprintf(out, "Saved session %s for %s\n", formatter.TruncID(id), username)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&techniques, "technique", "t", nil, "Technique name or alias (repeatable)")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", contract.DefaultProgramMinutes, "Total session length in minutes")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "Program difficulty: easy, normal or hard")
	cmd.Flags().StringVarP(&username, "user", "u", "", "Use this profile's belt and skill level")
	cmd.Flags().StringVar(&from, "from", "", "Pick techniques from the primary matches of a request")
	cmd.Flags().BoolVar(&save, "save", false, "Log the program as a completed session (requires --user)")
	cmd.Flags().StringVar(&name, "name", "", "Session name when saving")
	cmd.Flags().Float64Var(&completion, "completion", 1.0, "Completion rate in [0,1] when saving")
	cmd.Flags().IntVar(&feedback, "feedback", 0, "Feedback score when saving")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the program as JSON")

	return cmd
}
