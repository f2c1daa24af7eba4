package machine

import (
	"encoding/json"
	"fmt"
	"time"
)

// HaltReason indicates why a run stopped.
type HaltReason int

const (
	HaltAccept    HaltReason = iota // Reached an accepting state.
	HaltReject                      // Reached a rejecting state (HaltOnReject only).
	HaltMaxSteps                    // Hit the MaxSteps safety cap.
	HaltCancelled                   // Context cancelled between steps.
)

// String returns a human-readable label for the halt reason.
func (r HaltReason) String() string {
	switch r {
	case HaltAccept:
		return "accept"
	case HaltReject:
		return "reject"
	case HaltMaxSteps:
		return "max-steps"
	case HaltCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler.
func (r HaltReason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *HaltReason) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "accept":
		*r = HaltAccept
	case "reject":
		*r = HaltReject
	case "max-steps":
		*r = HaltMaxSteps
	case "cancelled":
		*r = HaltCancelled
	default:
		return fmt.Errorf("unknown HaltReason: %s", s)
	}
	return nil
}

// RunResult holds the outcome of one Machine.Run invocation.
type RunResult struct {
	// Output is the tape's lossy serialization when the run stopped.
	Output string `json:"output"`

	// Steps is the number of transitions applied.
	Steps int `json:"steps"`

	// Halt is why the run stopped.
	Halt HaltReason `json:"halt"`

	// Duration is the wall-clock run time, including any step pacing.
	Duration time.Duration `json:"duration_ns"`
}
