package machine

import (
	"encoding/json"
	"fmt"
)

// Direction is the head movement a transition performs.
type Direction int

const (
	Left  Direction = iota // Move the head one cell left.
	Right                  // Move the head one cell right.
	Stay                   // Leave the head where it is.
)

// String returns the single-letter label for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	case Stay:
		return "S"
	default:
		return "?"
	}
}

// ParseDirection converts a label back to a Direction. It accepts the
// single-letter forms produced by String as well as full words.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "L", "left":
		return Left, nil
	case "R", "right":
		return Right, nil
	case "S", "stay":
		return Stay, nil
	default:
		return 0, fmt.Errorf("unknown direction: %s", s)
	}
}

// MarshalJSON implements json.Marshaler.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
