package machine

import (
	"fmt"

	"turingsim/internal/tape"
)

// State is an opaque control-state identifier.
type State string

// Key addresses one entry of a transition table: the current state
// paired with the symbol under the head.
type Key struct {
	State State
	Read  tape.Symbol
}

// Action is the right-hand side of a transition: the state to enter,
// the symbol to write, and the head movement.
type Action struct {
	Next  State
	Write tape.Symbol
	Move  Direction
}

// Table is a deterministic transition function. It may be partial, but
// every (state, symbol) pair actually reached during a run must have an
// entry; Lookup of a missing pair is the machine's one fatal error.
type Table map[Key]Action

// Add registers a transition. An existing entry for the same key is
// overwritten.
func (t Table) Add(from State, read tape.Symbol, next State, write tape.Symbol, move Direction) {
	t[Key{State: from, Read: read}] = Action{Next: next, Write: write, Move: move}
}

// Lookup returns the action for the given state and symbol. A missing
// entry means the table is malformed or incomplete for this input.
func (t Table) Lookup(state State, read tape.Symbol) (Action, error) {
	action, ok := t[Key{State: state, Read: read}]
	if !ok {
		return Action{}, fmt.Errorf("no transition defined for (%s, %s)", state, FormatSymbol(read))
	}
	return action, nil
}

// Transition records one applied table entry, in the order the
// configuration tuple is conventionally printed.
type Transition struct {
	From   State
	Input  tape.Symbol
	Output tape.Symbol
	To     State
	Move   Direction
}

// String renders the transition as its configuration 5-tuple.
func (tr Transition) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s, %s)",
		tr.From, FormatSymbol(tr.Input), FormatSymbol(tr.Output), tr.To, tr.Move)
}

// FormatSymbol renders a symbol for messages, spelling out the blank so
// it is never confused with a space or an empty string.
func FormatSymbol(s tape.Symbol) string {
	if s == tape.Blank {
		return "blank"
	}
	return fmt.Sprintf("%q", rune(s))
}
