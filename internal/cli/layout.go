package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shapeshift/pkg/board"
	"github.com/matzehuels/shapeshift/pkg/core/grid"
	"github.com/matzehuels/shapeshift/pkg/core/grid/sink"
	errs "github.com/matzehuels/shapeshift/pkg/errors"
)

// layoutCommand creates the layout command for computing board layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		widths []string
	)

	cmd := &cobra.Command{
		Use:   "layout [board.toml]",
		Short: "Compute the grid layout of a board",
		Long: `Compute the grid layout of a board.

The layout command reads a board file, lays every container out as a
column-balanced grid and writes the result as layout.json (same format as
'render -f json').

Use --width to resize containers before writing, for example
--width todo=480. Resizes go through the same coalescing path a host
window resize would use.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resize, err := parseWidths(widths)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), args[0], output, resize)
		},
		ValidArgsFunction: completeBoardFiles,
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringArrayVar(&widths, "width", nil, "resize a container before layout: ID=WIDTH (repeatable)")

	return cmd
}

// runLayout loads the board, applies resizes and writes the layout file.
func (c *CLI) runLayout(ctx context.Context, input, output string, resize map[string]float64) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	rec := &layoutRecorder{laid: make(map[string]bool)}
	_, b, err := c.loadBoard(input, board.WithListener(rec))
	if err != nil {
		return err
	}

	for id, w := range resize {
		if err := b.Resize(id, w); err != nil {
			return fmt.Errorf("resize %s: %w", id, err)
		}
		logger.Debug("resized", "container", id, "width", w)
	}
	b.Flush()

	snap := sink.Capture(b.Containers())
	outputPath := output
	if outputPath == "" {
		outputPath = derivedPath(input, ".layout.json")
	}
	if err := sink.WriteLayoutFile(snap, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	prog.done(fmt.Sprintf("Laid out %d containers", len(snap.Containers)))

	deferred := rec.deferred(b)
	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(snap.Containers), countItems(b), deferred)
	if deferred > 0 {
		printWarning("%d containers had nothing to measure and were not laid out", deferred)
	}
	printNewline()
	printNextStep("Render", appName+" render "+input)

	return nil
}

// parseWidths parses repeated ID=WIDTH flags.
func parseWidths(specs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(specs))
	for _, s := range specs {
		id, raw, ok := strings.Cut(s, "=")
		if !ok || id == "" {
			return nil, errs.New(errs.ErrCodeInvalidInput, "invalid --width %q (want ID=WIDTH)", s)
		}
		w, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid --width %q", s)
		}
		out[id] = w
	}
	return out, nil
}

// layoutRecorder remembers which containers received a layout.
type layoutRecorder struct {
	grid.NopListener
	laid map[string]bool
}

func (r *layoutRecorder) LayoutUpdated(c *grid.Container, _ []grid.Position) {
	r.laid[c.ID] = true
}

// deferred counts containers that never produced a layout.
func (r *layoutRecorder) deferred(b *board.Board) int {
	n := 0
	for _, c := range b.Containers() {
		if !r.laid[c.ID] {
			n++
		}
	}
	return n
}
