// Package render draws tape configurations in the terminal. It keeps
// all presentation out of the machine core: drawers and printers attach
// to a run as step observers.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"turingsim/internal/machine"
	"turingsim/internal/tape"
)

// BlankGlyph is the visible placeholder for a blank cell, distinct from
// a space so real spaces on the tape remain recognizable.
const BlankGlyph = "·"

// Color constants
const (
	ColorHead  = "196" // Red
	ColorState = "39"  // Blue
	ColorMuted = "245" // Gray
)

// Styles contains all styles for tape rendering.
type Styles struct {
	Cell  lipgloss.Style
	Head  lipgloss.Style
	Blank lipgloss.Style
	State lipgloss.Style
	Muted lipgloss.Style
}

// DefaultStyles returns the default rendering styles.
func DefaultStyles() Styles {
	return Styles{
		Cell: lipgloss.NewStyle().
			Underline(true),
		Head: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color(ColorHead)),
		Blank: lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color(ColorMuted)),
		State: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorState)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)),
	}
}

// Frame renders every cell left to right with the head cell highlighted
// and blanks shown as BlankGlyph.
func (s Styles) Frame(cells []tape.Symbol, head int) string {
	var out string
	for i, c := range cells {
		glyph := BlankGlyph
		if c != tape.Blank {
			glyph = string(rune(c))
		}
		switch {
		case i == head:
			out += s.Head.Render(glyph)
		case c == tape.Blank:
			out += s.Blank.Render(glyph)
		default:
			out += s.Cell.Render(glyph)
		}
	}
	return out
}

// writef writes formatted output, ignoring errors.
// Use for non-critical output where write failures are acceptable.
func writef(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// Drawer is a step observer that redraws the tape on one terminal line
// after every step, overwriting the previous frame.
type Drawer struct {
	machine.NoopObserver
	Out    io.Writer
	Styles Styles
}

// NewDrawer creates a Drawer writing to out with the default styles.
func NewDrawer(out io.Writer) *Drawer {
	return &Drawer{Out: out, Styles: DefaultStyles()}
}

// OnStep renders the tape after the transition.
func (d *Drawer) OnStep(m *machine.Machine, _ machine.Transition, _ int) {
	t := m.Tape()
	writef(d.Out, "%s \r", d.Styles.Frame(t.Cells(), t.Head()))
}

// OnHalt finishes the overwritten line.
func (d *Drawer) OnHalt(m *machine.Machine, _ *machine.RunResult) {
	t := m.Tape()
	writef(d.Out, "%s \n", d.Styles.Frame(t.Cells(), t.Head()))
}

// ConfigPrinter is a step observer that prints the configuration
// 5-tuple (state, input, output, next state, direction) of every
// transition taken.
type ConfigPrinter struct {
	machine.NoopObserver
	Out io.Writer
}

// NewConfigPrinter creates a ConfigPrinter writing to out.
func NewConfigPrinter(out io.Writer) *ConfigPrinter {
	return &ConfigPrinter{Out: out}
}

// OnStep prints the transition just taken.
func (p *ConfigPrinter) OnStep(_ *machine.Machine, tr machine.Transition, _ int) {
	writef(p.Out, "%s\n", tr.String())
}
