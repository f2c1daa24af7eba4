// Package caesar builds demo transition tables that make a Turing
// machine apply a Caesar cipher to its tape.
package caesar

import (
	"turingsim/internal/machine"
	"turingsim/internal/tape"
)

// Machine states for the cipher tables.
const (
	StateStart machine.State = "start" // Initial: first symbol not yet consumed.
	StateScan  machine.State = "scan"  // Walking right, rewriting letters.
	StateDone  machine.State = "done"  // Accepting: hit the blank past the input.
)

// States is the full state set used by the cipher tables.
var States = []machine.State{StateStart, StateScan, StateDone}

// Accepting is the accepting-state set used by the cipher tables.
var Accepting = []machine.State{StateDone}

// Shift rotates a lowercase letter forward by n within the 26-letter
// alphabet. Negative shifts rotate backward.
func Shift(c rune, n int) rune {
	offset := (int(c-'a') + n) % 26
	if offset < 0 {
		offset += 26
	}
	return 'a' + rune(offset)
}

// EncryptTable builds a table that shifts every lowercase letter forward
// by shift and passes spaces through. Only lowercase letters, spaces and
// the terminating blank have entries: any other input symbol hits the
// machine's fatal missing-transition path.
func EncryptTable(shift int) machine.Table {
	table := make(machine.Table)
	for c := 'a'; c <= 'z'; c++ {
		sym := tape.Symbol(c)
		table.Add(StateStart, sym, StateScan, sym, machine.Stay)
		table.Add(StateScan, sym, StateScan, tape.Symbol(Shift(c, shift)), machine.Right)
	}
	table.Add(StateScan, tape.Blank, StateDone, tape.Blank, machine.Stay)

	// Spaces pass through unchanged in every state.
	space := tape.Symbol(' ')
	for _, s := range States {
		table.Add(s, space, s, space, machine.Right)
	}
	return table
}

// DecryptTable builds the mirror of EncryptTable: the table that undoes
// an encryption with the same shift.
func DecryptTable(shift int) machine.Table {
	return EncryptTable(-shift)
}

// NewMachine constructs a cipher machine over the given tape.
func NewMachine(t *tape.Tape, table machine.Table) (*machine.Machine, error) {
	return machine.New(machine.Config{
		Tape:      t,
		Initial:   StateStart,
		States:    States,
		Accepting: Accepting,
		Table:     table,
	})
}
