package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/grapple/internal/cli/formatter"
	"github.com/alexanderramin/grapple/internal/contract"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var file, username string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Analyze a Korean training request",
		Long: `Analyze a free-form Korean training request.

The request text can be passed as arguments, or one request per line with
--file (use "-" for stdin). Batch mode runs the configured number of
workers and prints results in input order.`,
		Example: `  grapple analyze "하체 관절기 배우고 싶어요"
  grapple analyze --user minji "암바 말고 초크 위주로"
  grapple analyze --file requests.txt --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if file != "" {
				if username != "" {
					return fmt.Errorf("--user cannot be combined with --file")
				}
				if len(args) > 0 {
					return fmt.Errorf("pass request text as arguments or with --file, not both")
				}
				lines, err := readRequestLines(cmd.InOrStdin(), file)
				if err != nil {
					return err
				}
				return runAnalyzeBatch(ctx, cmd, app, lines, asJSON)
			}

			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("request text is required (or use --file)")
			}
			req := contract.NewAnalyzeRequest(text)
			if username != "" {
				uc, err := resolveUserContext(ctx, app, username)
				if err != nil {
					return err
				}
				req = req.WithUser(*uc)
			}

			res, err := app.Analysis.AnalyzeRequest(ctx, req)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(out, res)
			}
			fmt.Fprint(out, formatter.FormatAnalysis(res))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `Read one request per line from a file ("-" for stdin)`)
	cmd.Flags().StringVarP(&username, "user", "u", "", "Annotate matches with this profile's mastery")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	return cmd
}

func runAnalyzeBatch(ctx context.Context, cmd *cobra.Command, app *App, lines []string, asJSON bool) error {
	if len(lines) == 0 {
		return fmt.Errorf("no requests to analyze")
	}

	stop := func() {}
	if app.interactive() {
		stop = formatter.StartSpinner(cmd.ErrOrStderr(), fmt.Sprintf("Analyzing %d requests...", len(lines)))
	}
	results, err := app.Analysis.AnalyzeBatch(ctx, lines, app.workers())
	stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		if results == nil {
			results = []*domain.AnalysisResult{}
		}
		return writeJSON(out, results)
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s %s\n", formatter.Dim(fmt.Sprintf("#%d", i+1)), res.Text)
		fmt.Fprint(out, formatter.FormatAnalysis(res))
	}
	return nil
}

// readRequestLines returns the non-blank lines of path, or of stdin when
// path is "-".
func readRequestLines(stdin io.Reader, path string) ([]string, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening request file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading requests: %w", err)
	}
	return lines, nil
}
