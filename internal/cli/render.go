package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/linkviz/pkg/io"
	"github.com/matzehuels/linkviz/pkg/list"
	"github.com/matzehuels/linkviz/pkg/pipeline"
)

// renderCommand creates the render command for visualizing a fixture.
func (c *CLI) renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <fixture>",
		Short: "Visualize a list fixture as DOT and images",
		Long: `Visualize a list fixture (JSON, TOML or YAML).

Writes <dir>/<output>.dot, renders one image per format, and opens the
first image. Render and viewer failures are reported but do not fail the
command; only a failed DOT write does.`,
		Example: `  linkviz render testdata/cycle.json
  linkviz render list.yaml -f png,svg -o broken --no-open
  linkviz render list.toml --renderer dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.bindFlags(cmd); err != nil {
				return err
			}
			loaded, err := io.ImportFixture(args[0])
			if err != nil {
				return err
			}
			return c.visualize(cmd.Context(), loaded.Arena, c.pipelineOptions(loaded.Title))
		},
	}

	cmd.ValidArgsFunction = completeFixture
	addRenderFlags(cmd)
	return cmd
}

// visualize runs one attempt and prints its outcome.
func (c *CLI) visualize(ctx context.Context, s list.Store, opts pipeline.Options) error {
	runner, err := c.newRunner(c.config.GetBool(keyNoCache))
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	sp := startSpinner(ctx, c.Status, spinnerMessage(opts))
	result, err := runner.Visualize(ctx, s, opts)
	sp.Stop()
	if err != nil {
		return err
	}
	prog.done("Visualized "+pluralize(result.Stats.Nodes, "node"),
		"run", shortRunID(result.RunID),
		"anomalies", result.Stats.Anomalies)

	printResult(result)
	return nil
}

// spinnerMessage describes the attempt about to run, e.g.
// "Rendering list (png, svg)...".
func spinnerMessage(opts pipeline.Options) string {
	base := opts.BaseName
	if base == "" {
		base = pipeline.DefaultBaseName
	}
	formats := opts.Formats
	if len(formats) == 0 {
		formats = []string{pipeline.DefaultFormat}
	}
	return fmt.Sprintf("Rendering %s (%s)...", base, strings.Join(formats, ", "))
}

// printResult prints the anomalies, artifacts, and render failures of an
// attempt.
func printResult(r *pipeline.Result) {
	printReport(r.Report)

	printSuccess("Graph visualization saved to %s", r.DOTPath)
	for _, f := range sortedFormats(r.Artifacts) {
		printFile(r.Artifacts[f])
	}
	for _, f := range sortedFormats(r.RenderErrors) {
		printWarning("%s not rendered: %v", f, r.RenderErrors[f])
	}
	printStats(r.Stats.Nodes, r.Stats.Anomalies, r.CacheHits, len(r.Artifacts))
}

// sortedFormats returns the keys of m in pipeline format order.
func sortedFormats[V any](m map[string]V) []string {
	var out []string
	for _, f := range pipeline.Formats {
		if _, ok := m[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
