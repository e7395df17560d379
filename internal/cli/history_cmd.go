package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/grapple/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 10

func newHistoryCmd(app *App) *cobra.Command {
	var username string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent training sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProfile(ctx, app, username)
			if err != nil {
				return err
			}
			sessions, err := app.Log.History(ctx, p.ID, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(sessions, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "Profile username")
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Maximum sessions to show (0 for all)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize training time and mastery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProfile(ctx, app, username)
			if err != nil {
				return err
			}
			st, err := app.Log.Stats(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(p.Username, st))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "Profile username")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
