package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shapeshift/pkg/core/grid/sink"
)

// pngScale is the rsvg-convert zoom used for PNG output.
const pngScale = 2.0

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file (single format) or base path (multiple)
	formats  []string // output formats: "svg", "json", "dot", "text", "pdf", "png"
	graphviz bool     // render SVG through Graphviz instead of the native renderer
	columns  bool     // draw column guides in SVG output
	indices  bool     // draw list indices on items in SVG output
}

// validFormats is the set of supported output formats.
var validFormats = map[string]string{
	"svg":  ".svg",
	"json": ".layout.json",
	"dot":  ".dot",
	"text": ".txt",
	"pdf":  ".pdf",
	"png":  ".png",
}

// renderCommand creates the render command for exporting board layouts.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [board.toml]",
		Short: "Render a board layout to SVG, DOT, text, JSON, PDF or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr, c.prefs.Render.Formats)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if !cmd.Flags().Changed("columns") {
				opts.columns = c.prefs.Render.Columns
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
		ValidArgsFunction: completeBoardFiles,
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, text, pdf, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.graphviz, "graphviz", false, "render SVG through Graphviz (neato, pinned positions)")
	cmd.Flags().BoolVar(&opts.columns, "columns", false, "draw column guides")
	cmd.Flags().BoolVar(&opts.indices, "indices", false, "draw item list indices")

	return cmd
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if _, ok := validFormats[f]; !ok {
			return fmt.Errorf("invalid format: %s (must be one of svg, json, dot, text, pdf, png)", f)
		}
	}
	return nil
}

// outputPath derives the file for one format. A single format writes to
// --output as given; several formats treat it as a base path.
func outputPath(input string, opts *renderOpts, format string) string {
	if opts.output != "" && len(opts.formats) == 1 {
		return opts.output
	}
	base := opts.output
	if base == "" {
		return derivedPath(input, validFormats[format])
	}
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + validFormats[format]
}

// runRender loads the board and writes one artifact per format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	_, b, err := c.loadBoard(input)
	if err != nil {
		return err
	}
	snap := sink.Capture(b.Containers())
	logger.Debugf("Captured %d containers (%.0fx%.0f)", len(snap.Containers), snap.Width, snap.Height)

	var written []string
	for _, format := range opts.formats {
		data, err := c.renderFormat(ctx, snap, format, opts)
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}
		path := outputPath(input, opts, format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	printSuccess("Rendered %s", filepath.Base(input))
	for _, p := range written {
		printFile(p)
	}
	printStats(len(snap.Containers), countItems(b), 0)
	return nil
}

// renderFormat produces the bytes for one output format.
func (c *CLI) renderFormat(ctx context.Context, snap sink.Board, format string, opts *renderOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)

	switch format {
	case "json":
		logger.Info("Rendering layout as JSON")
		return sink.MarshalLayout(snap)
	case "dot":
		logger.Info("Rendering DOT")
		return []byte(sink.ToDOT(snap)), nil
	case "text":
		logger.Info("Rendering text")
		return []byte(sink.RenderText(snap, c.prefs.TUI.TextOptions())), nil
	case "svg":
		return c.renderSVG(ctx, snap, opts)
	case "pdf", "png":
		svg, err := c.renderSVG(ctx, snap, opts)
		if err != nil {
			return nil, err
		}
		var out []byte
		err = spin(ctx, os.Stderr, "Converting to "+strings.ToUpper(format)+"...", func() error {
			var cerr error
			if format == "pdf" {
				out, cerr = sink.ToPDF(ctx, svg)
			} else {
				out, cerr = sink.ToPNG(ctx, svg, pngScale)
			}
			return cerr
		})
		return out, err
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// renderSVG draws the board natively or, with --graphviz, through neato.
func (c *CLI) renderSVG(ctx context.Context, snap sink.Board, opts *renderOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)
	if opts.graphviz {
		logger.Info("Rendering SVG via Graphviz")
		var out []byte
		err := spin(ctx, os.Stderr, "Running Graphviz...", func() error {
			var gerr error
			out, gerr = sink.RenderDOTSVG(ctx, sink.ToDOT(snap))
			return gerr
		})
		return out, err
	}

	logger.Info("Rendering SVG")
	var svgOpts []sink.SVGOption
	if opts.columns {
		svgOpts = append(svgOpts, sink.WithColumns())
	}
	if opts.indices {
		svgOpts = append(svgOpts, sink.WithIndices())
	}
	return sink.RenderSVG(snap, svgOpts...), nil
}
