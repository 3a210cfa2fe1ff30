package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shapeshift/pkg/board"
	"github.com/matzehuels/shapeshift/pkg/boardfile"
	"github.com/matzehuels/shapeshift/pkg/core/grid"
)

// moveOpts holds the command-line flags for the move command.
type moveOpts struct {
	item  string  // ID of the item to drag
	to    string  // target container ID (default: the item's container)
	x, y  float64 // drop point relative to the target container
	board bool    // print the reordered board file to stdout
}

// moveCommand creates the move command for replaying a drag.
func (c *CLI) moveCommand() *cobra.Command {
	opts := moveOpts{}

	cmd := &cobra.Command{
		Use:   "move [board.toml]",
		Short: "Replay a drag and print the resulting order",
		Long: `Replay a drag and print the resulting order.

The item is picked up at its center, carried into the target container and
released at --x/--y, relative to the target's top-left corner. The
insertion point is resolved the same way an interactive drag resolves it.

The board file is not modified. Use --board to print the reordered board
as TOML.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMove(cmd.Context(), args[0], &opts)
		},
		ValidArgsFunction: completeBoardFiles,
	}

	cmd.Flags().StringVar(&opts.item, "item", "", "item to drag (required)")
	cmd.Flags().StringVar(&opts.to, "to", "", "target container (default: the item's own container)")
	cmd.Flags().Float64Var(&opts.x, "x", 0, "drop x relative to the target container")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "drop y relative to the target container")
	cmd.Flags().BoolVar(&opts.board, "board", false, "print the reordered board file")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.RegisterFlagCompletionFunc("to", c.completeContainers)

	return cmd
}

// moveRecorder captures the move notification of a drag.
type moveRecorder struct {
	grid.NopListener
	event *grid.MoveEvent
}

func (r *moveRecorder) ItemMoved(e grid.MoveEvent) { r.event = &e }

// runMove performs one start/move/drop sequence on the board.
func (c *CLI) runMove(ctx context.Context, input string, opts *moveOpts) error {
	rec := &moveRecorder{}
	f, b, err := c.loadBoard(input, board.WithListener(rec))
	if err != nil {
		return err
	}
	if err := replayMove(ctx, b, opts); err != nil {
		return err
	}

	if e := rec.event; e != nil {
		printSuccess("Moved %s %s %s at index %d",
			StyleHighlight.Render(e.Item.ID), StyleDim.Render(e.Source.ID+" "+iconArrow),
			StyleHighlight.Render(e.Target.ID), e.Index)
	}
	printOrders(b)

	if opts.board {
		printNewline()
		return boardfile.WriteTOML(boardfile.Snapshot(f, b), os.Stdout)
	}
	return nil
}

// replayMove picks the item up at its center, carries it into the target
// and drops it at the requested point.
func replayMove(ctx context.Context, b *board.Board, opts *moveOpts) error {
	logger := loggerFromContext(ctx)

	it, err := b.Item(opts.item)
	if err != nil {
		return err
	}
	source := it.Container
	target := source
	if opts.to != "" {
		if target, err = b.Container(opts.to); err != nil {
			return err
		}
	}

	grab := source.Origin.Add(it.Position).Add(grid.Position{Left: it.Size.Width / 2, Top: it.Size.Height / 2})
	drop := target.Origin.Add(grid.Position{Left: opts.x, Top: opts.y})
	logger.Debug("drag", "item", it.ID, "from", source.ID, "grab", grab, "to", target.ID, "drop", drop)

	if err := b.OnStart(it.ID, grab); err != nil {
		return fmt.Errorf("start drag: %w", err)
	}
	if target != source {
		b.OnLeave(source.ID)
		b.OnEnter(target.ID)
	}
	if err := b.OnMove(drop); err != nil {
		b.Cancel()
		return fmt.Errorf("move: %w", err)
	}
	if err := b.OnEnd(); err != nil {
		return fmt.Errorf("drop: %w", err)
	}
	return nil
}

// printOrders prints each container's item order as a table.
func printOrders(b *board.Board) {
	var rows [][]string
	for _, c := range b.Containers() {
		rows = append(rows, []string{c.ID, fmt.Sprint(c.Len()), strings.Join(c.IDs(), " ")})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Container", "Items", "Order").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			default:
				return StyleValue
			}
		})
	fmt.Println(t.Render())
}
