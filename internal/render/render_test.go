package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"turingsim/internal/machine"
	"turingsim/internal/tape"
)

// plainStyles render without any terminal escapes, keeping assertions
// independent of the color profile tests run under.
func plainStyles() Styles {
	return Styles{}
}

func TestFrame_RendersCellsInOrder(t *testing.T) {
	tp := tape.New("ab")
	tp.MoveRight()

	got := plainStyles().Frame(tp.Cells(), tp.Head())
	if got != "ab" {
		t.Errorf("Frame = %q, want %q", got, "ab")
	}
}

func TestFrame_BlanksGetPlaceholder(t *testing.T) {
	tp := tape.New("a")
	tp.MoveLeft() // grow a blank on the left

	got := plainStyles().Frame(tp.Cells(), tp.Head())
	want := BlankGlyph + "a"
	if got != want {
		t.Errorf("Frame = %q, want %q", got, want)
	}
}

func TestConfigPrinter_PrintsFiveTuple(t *testing.T) {
	table := make(machine.Table)
	table.Add("scan", tape.Symbol('a'), "halt", tape.Symbol('b'), machine.Right)

	m, err := machine.New(machine.Config{
		Tape:      tape.New("a"),
		Initial:   "scan",
		Accepting: []machine.State{"halt"},
		Table:     table,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	m.Observer = NewConfigPrinter(&buf)

	if _, err := m.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := strings.TrimSpace(buf.String())
	want := `(scan, 'a', 'b', halt, R)`
	if got != want {
		t.Errorf("printed %q, want %q", got, want)
	}
}

func TestDrawer_OverwritesThenFinishesLine(t *testing.T) {
	table := make(machine.Table)
	table.Add("scan", tape.Symbol('a'), "scan", tape.Symbol('a'), machine.Right)
	table.Add("scan", tape.Blank, "halt", tape.Blank, machine.Stay)

	m, err := machine.New(machine.Config{
		Tape:      tape.New("a"),
		Initial:   "scan",
		Accepting: []machine.State{"halt"},
		Table:     table,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	m.Observer = &Drawer{Out: &buf, Styles: plainStyles()}

	if _, err := m.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\r") {
		t.Error("drawer output has no carriage-return overwrite")
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("drawer output does not finish the line on halt")
	}
}
