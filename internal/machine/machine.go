// Package machine implements a deterministic single-tape Turing machine:
// a finite control driven by a transition table over a tape.
package machine

import (
	"context"
	"fmt"
	"time"

	"turingsim/internal/tape"
)

// Config describes a machine to construct.
type Config struct {
	// Tape is the machine's storage. The machine takes exclusive
	// ownership; pass a fresh tape to each machine.
	Tape *tape.Tape

	// Initial is the control state the machine starts in.
	Initial State

	// States is the full state set. Optional; when set, Initial,
	// Accepting and Rejecting are validated against it.
	States []State

	// Accepting states halt Run successfully.
	Accepting []State

	// Rejecting states are tracked but do not halt Run unless
	// HaltOnReject is set on the machine. See the HaltOnReject doc.
	Rejecting []State

	// Table is the transition function.
	Table Table
}

// Machine is a deterministic single-tape Turing machine. It exclusively
// owns its tape; run independent machines for concurrent simulation.
type Machine struct {
	tape      *tape.Tape
	state     State
	lastRead  tape.Symbol
	accepting map[State]bool
	rejecting map[State]bool
	table     Table

	// Observer receives step-by-step progress. Nil means no reporting.
	Observer StepObserver

	// MaxSteps caps a run as a safety net. Zero means unbounded: a
	// table with no reachable accepting state then loops forever.
	MaxSteps int

	// HaltOnReject makes Run also stop on rejecting states. Off by
	// default: historically only the accepting set halts the loop, and
	// a machine that enters a rejecting state keeps running.
	HaltOnReject bool

	// StepDelay pauses after each step for human-paced observation.
	StepDelay time.Duration
}

// New builds a machine from cfg, validating that the configuration is
// internally consistent.
func New(cfg Config) (*Machine, error) {
	if cfg.Tape == nil {
		return nil, fmt.Errorf("machine: nil tape")
	}
	if cfg.Table == nil {
		return nil, fmt.Errorf("machine: nil transition table")
	}
	if cfg.Initial == "" {
		return nil, fmt.Errorf("machine: no initial state")
	}
	if len(cfg.States) > 0 {
		known := make(map[State]bool, len(cfg.States))
		for _, s := range cfg.States {
			known[s] = true
		}
		if !known[cfg.Initial] {
			return nil, fmt.Errorf("machine: initial state %s not in state set", cfg.Initial)
		}
		for _, s := range cfg.Accepting {
			if !known[s] {
				return nil, fmt.Errorf("machine: accepting state %s not in state set", s)
			}
		}
		for _, s := range cfg.Rejecting {
			if !known[s] {
				return nil, fmt.Errorf("machine: rejecting state %s not in state set", s)
			}
		}
	}

	m := &Machine{
		tape:      cfg.Tape,
		state:     cfg.Initial,
		lastRead:  cfg.Tape.Read(),
		accepting: make(map[State]bool, len(cfg.Accepting)),
		rejecting: make(map[State]bool, len(cfg.Rejecting)),
		table:     cfg.Table,
	}
	for _, s := range cfg.Accepting {
		m.accepting[s] = true
	}
	for _, s := range cfg.Rejecting {
		m.rejecting[s] = true
	}
	return m, nil
}

// State returns the current control state.
func (m *Machine) State() State {
	return m.state
}

// LastRead returns the symbol read by the most recent step (or at
// construction, before any step has run).
func (m *Machine) LastRead() tape.Symbol {
	return m.lastRead
}

// Tape returns the machine's tape for inspection.
func (m *Machine) Tape() *tape.Tape {
	return m.tape
}

// Accepted reports whether the current state is accepting.
func (m *Machine) Accepted() bool {
	return m.accepting[m.state]
}

// Rejected reports whether the current state is rejecting.
func (m *Machine) Rejected() bool {
	return m.rejecting[m.state]
}

// Step applies one transition: read the symbol under the head, look up
// (state, symbol), then update the state, write the output symbol and
// move the head. The three mutations happen together; a failed lookup
// changes nothing but the cached last-read symbol.
//
// A lookup miss means the table is incomplete for this input and is
// returned as a fatal error.
func (m *Machine) Step() (Transition, error) {
	input := m.tape.Read()
	m.lastRead = input

	action, err := m.table.Lookup(m.state, input)
	if err != nil {
		return Transition{}, err
	}

	from := m.state
	m.state = action.Next
	m.tape.Write(action.Write)
	switch action.Move {
	case Left:
		m.tape.MoveLeft()
	case Right:
		m.tape.MoveRight()
	case Stay:
	}

	return Transition{
		From:   from,
		Input:  input,
		Output: action.Write,
		To:     action.Next,
		Move:   action.Move,
	}, nil
}

// Run steps the machine until the current state is accepting, then
// returns the tape's serialization in the result. Context cancellation
// is checked between steps; a step itself is never interrupted.
//
// Run returns an error only for the fatal transition-lookup miss.
// Cancellation, the MaxSteps cap and HaltOnReject are reported through
// the result's Halt reason instead.
func (m *Machine) Run(ctx context.Context) (*RunResult, error) {
	start := time.Now()

	if m.Observer != nil {
		m.Observer.OnRunStart(m)
	}

	steps := 0
	halt := HaltAccept
	for !m.accepting[m.state] {
		if m.HaltOnReject && m.rejecting[m.state] {
			halt = HaltReject
			break
		}
		if ctx.Err() != nil {
			halt = HaltCancelled
			break
		}
		if m.MaxSteps > 0 && steps >= m.MaxSteps {
			halt = HaltMaxSteps
			break
		}

		tr, err := m.Step()
		if err != nil {
			return nil, err
		}
		steps++

		if m.Observer != nil {
			m.Observer.OnStep(m, tr, steps)
		}
		if m.StepDelay > 0 {
			time.Sleep(m.StepDelay)
		}
	}

	result := &RunResult{
		Output:   m.tape.String(),
		Steps:    steps,
		Halt:     halt,
		Duration: time.Since(start),
	}
	if m.Observer != nil {
		m.Observer.OnHalt(m, result)
	}
	return result, nil
}
