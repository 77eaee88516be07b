package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/pkg/config"
	"github.com/edgeviz/edgeviz/pkg/edgelist"
	apperrors "github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/graph"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output     string // output file path (overrides config)
	configPath string // explicit config file path
}

// convertCommand creates the convert command, the core edge-list to JSON
// transformation.
//
// Paths are resolved as flags > edgeviz.toml > built-in defaults. Lines
// that do not split into exactly two whitespace-separated tokens are
// skipped; they never fail the run.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Convert an edge-list file into a JSON graph document",
		Long: `Convert an edge-list file into a JSON graph document.

The input is a plain-text file with one edge per line, each line holding
two whitespace-separated node identifiers. The output is a JSON object
with a sorted, deduplicated "nodes" array and a "links" array preserving
the input edges in order.

Examples:
  edgeviz convert                              # paths from edgeviz.toml or defaults
  edgeviz convert facebook_combined.txt -o facebook_graph.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runConvert(input, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (overrides config)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default edgeviz.toml if present)")

	return cmd
}

// runConvert executes the conversion: parse, build, write.
func (c *CLI) runConvert(input string, opts convertOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if input == "" {
		input = cfg.Convert.Input
	}
	output := opts.output
	if output == "" {
		output = cfg.Convert.Output
	}

	c.Logger.Debugf("Converting %s", input)
	prog := newProgress(c.Logger)

	edges, stats, err := edgelist.ParseFile(input)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInputFile, err, "read input %s", input)
	}
	if stats.Skipped > 0 {
		c.Logger.Debugf("Skipped %d malformed line(s)", stats.Skipped)
	}

	doc := graph.Build(edges)
	prog.done(fmt.Sprintf("Converted %d nodes and %d links", doc.NodeCount(), doc.LinkCount()))

	if err := graph.WriteFile(doc, output); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeOutputFile, err, "write output %s", output)
	}

	printSuccess("Wrote graph to %s", output)
	printStats(doc.NodeCount(), doc.LinkCount(), false)
	return nil
}

// loadConfig resolves the configuration. An explicit --config path must
// exist; the implicit edgeviz.toml lookup is optional.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path, true)
	}
	return config.Load(config.DefaultFile, false)
}
