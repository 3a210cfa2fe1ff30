// Package cli implements the shapeshift command-line interface.
//
// The commands load a board file, lay its containers out and either
// export the result, replay a scripted drag or host interactive drags in
// the terminal. The CLI is built using cobra and logs through
// charmbracelet/log; loggers are passed through context.Context.
//
// # Commands
//
//   - layout: Write the computed layout of a board as JSON
//   - render: Generate SVG, DOT, text, JSON, PDF or PNG output
//   - move: Replay one drag and print the resulting order
//   - tui: Drag items with the mouse in the terminal
//   - completion: Generate shell completion scripts
package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shapeshift/internal/config"
	"github.com/matzehuels/shapeshift/pkg/board"
	"github.com/matzehuels/shapeshift/pkg/boardfile"
	"github.com/matzehuels/shapeshift/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "shapeshift"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the preferences file location.
	ConfigPath string

	prefs config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadPrefs reads user preferences. It runs before every command.
func (c *CLI) loadPrefs() error {
	prefs, err := config.Load(c.ConfigPath)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	c.prefs = prefs
	c.Logger.Debug("preferences loaded", "build", buildinfo.Get().String())
	return nil
}

// =============================================================================
// Board Loading
// =============================================================================

// loadBoard reads a board file and configures a board with it. The
// preferences seed the grid options.
func (c *CLI) loadBoard(path string, opts ...board.Option) (*boardfile.File, *board.Board, error) {
	f, err := boardfile.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load board %s: %w", path, err)
	}

	opts = append([]board.Option{board.WithLogger(c.Logger)}, opts...)
	b := board.New(opts...)
	if err := f.Configure(b, c.prefs.Grid.Base()); err != nil {
		return nil, nil, fmt.Errorf("configure board %s: %w", path, err)
	}
	c.Logger.Debug("board loaded", "path", path, "containers", len(f.Containers))
	return f, b, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s, fallback string) []string {
	if s == "" {
		s = fallback
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// derivedPath replaces the extension of input with suffix.
func derivedPath(input, suffix string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}

// countItems returns the number of items across a board.
func countItems(b *board.Board) int {
	n := 0
	for _, c := range b.Containers() {
		n += c.Len()
	}
	return n
}
