package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/pkg/cache"
	apperrors "github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/render"
)

// Output formats for the render command.
const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatHTML = "html"
)

// validFormats is the set of supported render formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatHTML: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path
	format  string // output format: dot, svg, html
	noCache bool   // disable the artifact cache
}

// renderCommand creates the render command for generating visual artifacts
// from a graph document.
//
// SVG and HTML artifacts are cached locally keyed by the document's content
// hash, so re-rendering an unchanged graph is instant. DOT output is cheap
// enough that it is always generated fresh.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render <graph.json>",
		Short: "Render a graph document to DOT, SVG, or HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormats[opts.format] {
				return apperrors.New(apperrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: dot, svg, html)", opts.format)
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input path with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, html")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runRender loads the document and produces the requested artifact.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	doc, err := graph.ReadFile(input)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "load graph %s", input)
	}

	output := opts.output
	if output == "" {
		output = replaceExt(input, "."+opts.format)
	}

	data, cached, err := c.renderArtifact(ctx, doc, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeOutputFile, err, "write output %s", output)
	}

	printSuccess("Rendered %s", opts.format)
	printFile(output)
	printStats(doc.NodeCount(), doc.LinkCount(), cached)
	return nil
}

// renderArtifact produces the artifact bytes, consulting the cache for the
// expensive formats.
func (c *CLI) renderArtifact(ctx context.Context, doc graph.Document, opts renderOpts) ([]byte, bool, error) {
	if opts.format == formatDOT {
		return []byte(render.ToDOT(doc)), false, nil
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return nil, false, err
	}
	defer store.Close()

	docData, err := graph.Marshal(doc)
	if err != nil {
		return nil, false, err
	}
	key := cache.ArtifactKey(cache.Hash(docData), opts.format)

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.format))
	spinner.Start()

	var data []byte
	switch opts.format {
	case formatSVG:
		data, err = render.SVG(ctx, render.ToDOT(doc))
	case formatHTML:
		data, err = render.HTML(doc, appName)
	}
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return nil, false, fmt.Errorf("render %s: %w", opts.format, err)
	}
	spinner.Stop()

	_ = store.Set(ctx, key, data, cache.TTLArtifact)
	return data, false, nil
}

// replaceExt swaps the extension of path for ext (which includes the dot).
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
