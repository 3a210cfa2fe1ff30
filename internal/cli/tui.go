package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shapeshift/pkg/board"
	"github.com/matzehuels/shapeshift/pkg/core/grid"
	"github.com/matzehuels/shapeshift/pkg/core/grid/schedule"
	"github.com/matzehuels/shapeshift/pkg/core/grid/sink"
	errs "github.com/matzehuels/shapeshift/pkg/errors"
)

// headerRows is the number of terminal rows above the board canvas.
const headerRows = 2

// tuiCommand creates the tui command for dragging items with the mouse.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [board.toml]",
		Short: "Drag items between containers in the terminal",
		Long: `Drag items between containers in the terminal.

Press the left mouse button on an item, drag it and release it where it
should go. Items reflow under the pointer while dragging, across
containers too. The board file is not modified; the final order is
printed on exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context(), args[0])
		},
		ValidArgsFunction: completeBoardFiles,
	}
}

// runTUI runs the interactive board until the user quits.
func (c *CLI) runTUI(ctx context.Context, input string) error {
	clock := &teaClock{}
	moves := &moveRecorder{}
	_, b, err := c.loadBoard(input,
		board.WithClock(clock),
		board.WithListener(moves),
		board.WithLogger(loggerFromContext(ctx).WithPrefix("tui")),
	)
	if err != nil {
		return err
	}

	m := newTUIModel(b, moves, c.prefs.TUI.TextOptions())
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())
	clock.send = p.Send
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	printInfo("Final order")
	printOrders(b)
	return nil
}

// =============================================================================
// Clock
// =============================================================================

// timerMsg delivers a scheduler callback on the program's event loop.
type timerMsg struct{ fire func() }

// teaClock runs scheduler callbacks through the bubbletea program so the
// board is only touched from Update.
type teaClock struct {
	send func(tea.Msg)
}

func (c *teaClock) AfterFunc(d time.Duration, f func()) schedule.Timer {
	return time.AfterFunc(d, func() { c.send(timerMsg{fire: f}) })
}

// =============================================================================
// Keys
// =============================================================================

type tuiKeyMap struct {
	Cancel   key.Binding
	Relayout key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k tuiKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel, k.Help, k.Quit}
}

func (k tuiKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cancel, k.Relayout},
		{k.Help, k.Quit},
	}
}

var defaultTUIKeys = tuiKeyMap{
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel drag"),
	),
	Relayout: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "relayout"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}

// =============================================================================
// Model
// =============================================================================

// tuiModel is the bubbletea model hosting one board.
type tuiModel struct {
	board  *board.Board
	moves  *moveRecorder
	text   sink.TextOptions
	keys   tuiKeyMap
	help   help.Model
	status string
}

func newTUIModel(b *board.Board, moves *moveRecorder, text sink.TextOptions) tuiModel {
	return tuiModel{
		board: b,
		moves: moves,
		text:  text,
		keys:  defaultTUIKeys,
		help:  help.New(),
	}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerMsg:
		msg.fire()
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.board.Cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			if _, ok := m.board.Dragging(); ok {
				m.board.Cancel()
				m.status = "drag cancelled"
			}
		case key.Matches(msg, m.keys.Relayout):
			m.board.RelayoutAll(true)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.MouseMsg:
		m = m.mouse(msg)
	}
	return m, nil
}

// point converts a terminal cell to a board position.
func (m tuiModel) point(x, y int) grid.Position {
	return m.text.Point(x, y-headerRows)
}

func (m tuiModel) mouse(msg tea.MouseMsg) tuiModel {
	p := m.point(msg.X, msg.Y)
	_, dragging := m.board.Dragging()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || dragging {
			return m
		}
		m.board.Point(p)
		it, ok := itemAt(m.board, p)
		if !ok {
			return m
		}
		m.moves.event = nil
		m.report(m.board.OnStart(it.ID, p), "dragging "+it.ID)
	case tea.MouseActionMotion:
		if !dragging {
			return m
		}
		m.board.Point(p)
		m.report(m.board.OnMove(p), m.status)
	case tea.MouseActionRelease:
		if !dragging {
			return m
		}
		m.board.Point(p)
		m.report(m.board.OnEnd(), "")
		if e := m.moves.event; e != nil {
			m.status = fmt.Sprintf("moved %s %s %s at %d", e.Item.ID, e.Source.ID, iconArrow, e.Index)
			if e.Source != e.Target {
				m.status = fmt.Sprintf("moved %s %s %s %s at %d", e.Item.ID, e.Source.ID, iconArrow, e.Target.ID, e.Index)
			}
		}
	}
	return m
}

// report sets the status line to ok, or to the error message.
func (m *tuiModel) report(err error, ok string) {
	if err != nil {
		m.status = errs.UserMessage(err)
		return
	}
	m.status = ok
}

func (m tuiModel) View() string {
	var b strings.Builder

	title := StyleTitle.Render(appName)
	if s, ok := m.board.Dragging(); ok {
		title += StyleDim.Render(fmt.Sprintf("  %s over %s", s.Item.ID, s.Hover.ID))
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	opts := m.text
	if c := m.board.Focus(); c != nil {
		opts.Focus = c.ID
	}
	b.WriteString(sink.RenderText(sink.Capture(m.board.Containers()), opts))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(StyleDim.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// itemAt returns the placed item whose cell contains p.
func itemAt(b *board.Board, p grid.Position) (*grid.Item, bool) {
	for _, c := range b.Containers() {
		local := p.Sub(c.Origin)
		for _, it := range c.Placed() {
			if local.Left >= it.Position.Left && local.Left < it.Position.Left+it.Size.Width &&
				local.Top >= it.Position.Top && local.Top < it.Position.Top+it.Size.Height {
				return it, true
			}
		}
	}
	return nil, false
}
