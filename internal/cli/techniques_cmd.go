package cli

import (
	"fmt"

	"github.com/alexanderramin/grapple/internal/cli/formatter"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/spf13/cobra"
)

func newTechniquesCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "techniques [name]",
		Aliases: []string{"tech"},
		Short:   "List catalog techniques or show one",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				rec, err := resolveTechnique(app, args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.RenderBox(rec.Name, formatter.FormatTechniqueDetail(rec)))
				return nil
			}

			recs := app.Catalog.All()
			if category != "" {
				c, err := domain.ParseCategory(category)
				if err != nil {
					return err
				}
				recs = filterByCategory(recs, c)
			}
			fmt.Fprint(out, formatter.FormatTechniques(recs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list this category (code or Korean label)")

	return cmd
}

func filterByCategory(recs []domain.TechniqueRecord, c domain.Category) []domain.TechniqueRecord {
	var out []domain.TechniqueRecord
	for _, r := range recs {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}
