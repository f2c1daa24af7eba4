// Package tape implements the bidirectional growable storage a Turing
// machine reads and writes through a movable head.
package tape

import "strings"

// Symbol is a single tape cell value.
type Symbol rune

// Blank is the sentinel for an unset cell. It is a real Symbol value so
// transition tables can match on it like any other symbol.
const Blank Symbol = 0

// Tape is an ordered sequence of symbols with a movable head. Cells are
// allocated lazily: moving past either end grows the tape by exactly one
// blank cell in that direction. The head is always inside the allocated
// range, so reads and writes never go out of bounds.
//
// A Tape is owned by a single machine and is not safe for concurrent use.
type Tape struct {
	cells []Symbol
	head  int
}

// New creates a tape holding the symbols of initial with the head on the
// first cell. An empty initial string yields a single blank cell so the
// head has somewhere to sit.
func New(initial string) *Tape {
	if initial == "" {
		return &Tape{cells: make([]Symbol, 1)}
	}
	runes := []rune(initial)
	cells := make([]Symbol, len(runes))
	for i, r := range runes {
		cells[i] = Symbol(r)
	}
	return &Tape{cells: cells}
}

// NewBlank creates a tape of size blank cells with the head on the first.
// Sizes below one are rounded up to one.
func NewBlank(size int) *Tape {
	if size < 1 {
		size = 1
	}
	return &Tape{cells: make([]Symbol, size)}
}

// MoveLeft shifts the head one cell to the left, growing the tape by one
// blank cell if the head is on the left boundary.
func (t *Tape) MoveLeft() {
	if t.head == 0 {
		t.cells = append([]Symbol{Blank}, t.cells...)
	} else {
		t.head--
	}
}

// MoveRight shifts the head one cell to the right, growing the tape by one
// blank cell if the head is on the right boundary.
func (t *Tape) MoveRight() {
	if t.head == len(t.cells)-1 {
		t.cells = append(t.cells, Blank)
	}
	t.head++
}

// Read returns the symbol under the head.
func (t *Tape) Read() Symbol {
	return t.cells[t.head]
}

// Write overwrites the cell under the head. Writing Blank erases it.
func (t *Tape) Write(s Symbol) {
	t.cells[t.head] = s
}

// Head returns the head's index into the allocated cells.
func (t *Tape) Head() int {
	return t.head
}

// Len returns the number of allocated cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Cells returns a copy of the allocated cells in storage order.
// Renderers use this together with Head; the copy keeps them from
// aliasing the tape's backing array across a later grow.
func (t *Tape) Cells() []Symbol {
	out := make([]Symbol, len(t.cells))
	copy(out, t.cells)
	return out
}

// String serializes the tape as the concatenation of its non-blank
// symbols in storage order. Blank cells are omitted entirely, so blank
// positions are not recoverable from the result.
func (t *Tape) String() string {
	var b strings.Builder
	for _, c := range t.cells {
		if c != Blank {
			b.WriteRune(rune(c))
		}
	}
	return b.String()
}
