package machine

// StepObserver receives progress updates from a running machine.
// Presentation (tape drawing, configuration printing, TUIs) hangs off
// this interface rather than living in the run loop.
type StepObserver interface {
	// OnRunStart is called once before the first step.
	OnRunStart(m *Machine)

	// OnStep is called after each applied transition. step counts from 1.
	OnStep(m *Machine, tr Transition, step int)

	// OnHalt is called once when the run stops, with the final result.
	OnHalt(m *Machine, result *RunResult)
}

// NoopObserver implements StepObserver with no-ops. Embed it to pick up
// default implementations.
type NoopObserver struct{}

func (NoopObserver) OnRunStart(*Machine)              {}
func (NoopObserver) OnStep(*Machine, Transition, int) {}
func (NoopObserver) OnHalt(*Machine, *RunResult)      {}

// MultiObserver fans out progress updates to multiple observers.
// Nil observers are skipped.
type MultiObserver struct {
	observers []StepObserver
}

// Ensure MultiObserver implements StepObserver.
var _ StepObserver = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver that forwards calls to all
// provided observers, filtering out nils.
func NewMultiObserver(observers ...StepObserver) *MultiObserver {
	filtered := make([]StepObserver, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// safeCall calls fn with panic recovery. One observer failing shouldn't
// block the others.
func safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
		}
	}()
	fn()
}

// OnRunStart forwards the call to all observers.
func (m *MultiObserver) OnRunStart(mc *Machine) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnRunStart(mc) })
	}
}

// OnStep forwards the call to all observers.
func (m *MultiObserver) OnStep(mc *Machine, tr Transition, step int) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnStep(mc, tr, step) })
	}
}

// OnHalt forwards the call to all observers.
func (m *MultiObserver) OnHalt(mc *Machine, result *RunResult) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnHalt(mc, result) })
	}
}
