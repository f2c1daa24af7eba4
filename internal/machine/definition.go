package machine

import (
	"fmt"
	"os"
	"unicode/utf8"

	"turingsim/internal/jsonutil"
	"turingsim/internal/tape"
)

// Definition is the JSON form of a machine, as loaded from a definition
// file. Symbols are single-character strings; the empty string denotes
// the blank.
type Definition struct {
	Name      string  `json:"name,omitempty"`
	Initial   State   `json:"initial"`
	States    []State `json:"states,omitempty"`
	Accepting []State `json:"accepting"`
	Rejecting []State `json:"rejecting,omitempty"`
	Rules     []Rule  `json:"rules"`
}

// Rule is one transition in a Definition.
type Rule struct {
	State State     `json:"state"`
	Read  string    `json:"read"`
	Next  State     `json:"next"`
	Write string    `json:"write"`
	Move  Direction `json:"move"`
}

// LoadDefinition reads and parses a machine definition file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading machine definition: %w", err)
	}
	return ParseDefinition(data)
}

// ParseDefinition parses a JSON machine definition.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := jsonutil.UnmarshalWithContext(data, &def, "parsing machine definition"); err != nil {
		return nil, err
	}
	if len(def.Rules) == 0 {
		return nil, fmt.Errorf("machine definition has no rules")
	}
	return &def, nil
}

// Compile converts the definition's rules into a transition table,
// rejecting malformed symbols and duplicate (state, symbol) keys.
func (d *Definition) Compile() (Table, error) {
	table := make(Table, len(d.Rules))
	for i, rule := range d.Rules {
		read, err := symbolFromJSON(rule.Read)
		if err != nil {
			return nil, fmt.Errorf("rule %d: read: %w", i, err)
		}
		write, err := symbolFromJSON(rule.Write)
		if err != nil {
			return nil, fmt.Errorf("rule %d: write: %w", i, err)
		}
		key := Key{State: rule.State, Read: read}
		if _, exists := table[key]; exists {
			return nil, fmt.Errorf("rule %d: duplicate transition for (%s, %s)", i, rule.State, FormatSymbol(read))
		}
		table[key] = Action{Next: rule.Next, Write: write, Move: rule.Move}
	}
	return table, nil
}

// NewMachine compiles the definition and constructs a machine bound to
// the given tape.
func (d *Definition) NewMachine(t *tape.Tape) (*Machine, error) {
	table, err := d.Compile()
	if err != nil {
		return nil, err
	}
	return New(Config{
		Tape:      t,
		Initial:   d.Initial,
		States:    d.States,
		Accepting: d.Accepting,
		Rejecting: d.Rejecting,
		Table:     table,
	})
}

// symbolFromJSON maps a definition symbol string to a tape symbol.
// "" is the blank; anything longer than one character is malformed.
func symbolFromJSON(s string) (tape.Symbol, error) {
	if s == "" {
		return tape.Blank, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return tape.Blank, fmt.Errorf("symbol must be a single character, got %q", s)
	}
	return tape.Symbol(r), nil
}
