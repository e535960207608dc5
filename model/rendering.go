package model

import (
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const clearCmd = "clear"

// Glyphs are the runes used for alive and dead cells when rendering.
type Glyphs struct {
	Alive rune
	Dead  rune
}

// DefaultGlyphs renders live cells as ◼ and dead cells as ◻.
var DefaultGlyphs = Glyphs{Alive: '◼', Dead: '◻'}

// Render returns the grid as text using DefaultGlyphs.
func (g *Grid) Render() string {
	return g.RenderGlyphs(DefaultGlyphs)
}

// RenderGlyphs returns one line per row, one glyph per column, with a newline
// after every row including the last.
func (g *Grid) RenderGlyphs(glyphs Glyphs) string {
	var (
		b     strings.Builder
		width = max(utf8.RuneLen(glyphs.Alive), utf8.RuneLen(glyphs.Dead), 1)
	)
	b.Grow(g.height * (g.width*width + 1))

	for row := range g.height {
		for _, alive := range g.cells[row*g.width : (row+1)*g.width] {
			if alive {
				b.WriteRune(glyphs.Alive)
			} else {
				b.WriteRune(glyphs.Dead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer
func (g *Grid) String() string {
	return g.Render()
}

// TerminalRenderer writes rendered frames to a terminal
type TerminalRenderer struct {
	Out          io.Writer
	Logger       *slog.Logger
	ClearCommand string // defaults to "clear"
}

// Display writes one frame
func (r *TerminalRenderer) Display(frame string) error {
	if _, err := io.WriteString(r.Out, frame); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	name := r.ClearCommand
	if name == "" {
		name = clearCmd
	}
	cmd := exec.Command(name)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		logger := r.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("Error clearing terminal", "command", name, "error", err)
	}
}
