package tui

import (
	"errors"
	"strings"
	"testing"

	"turingsim/internal/machine"
	"turingsim/internal/tape"
)

func stepMsgFor(tr machine.Transition, state machine.State, step int) stepMsg {
	return stepMsg{
		snap:  tapeSnapshot{cells: []tape.Symbol{tape.Symbol('a')}, head: 0},
		tr:    tr,
		state: state,
		step:  step,
	}
}

func TestModel_HandleRunStarted(t *testing.T) {
	model := NewModel("encrypt")

	newModel, _ := model.Update(runStartedMsg{snap: tapeSnapshot{cells: []tape.Symbol{tape.Blank}, head: 0}})

	m := newModel.(*Model)
	if !m.started {
		t.Error("started should be true")
	}
}

func TestModel_StepUpdatesStateAndRingBuffer(t *testing.T) {
	model := NewModel("encrypt")

	tr := machine.Transition{From: "scan", Input: tape.Symbol('a'), Output: tape.Symbol('b'), To: "scan", Move: machine.Right}
	var m *Model = model
	for i := 1; i <= MaxTransitions+3; i++ {
		newModel, _ := m.Update(stepMsgFor(tr, "scan", i))
		m = newModel.(*Model)
	}

	if m.step != MaxTransitions+3 {
		t.Errorf("step = %d, want %d", m.step, MaxTransitions+3)
	}
	if m.state != machine.State("scan") {
		t.Errorf("state = %s, want scan", m.state)
	}
	if len(m.transitions) != MaxTransitions {
		t.Errorf("ring buffer holds %d transitions, want %d", len(m.transitions), MaxTransitions)
	}
}

func TestModel_HandleHalt(t *testing.T) {
	model := NewModel("encrypt")

	result := &machine.RunResult{Output: "mjqqt", Steps: 6, Halt: machine.HaltAccept}
	newModel, _ := model.Update(haltMsg{result: result})

	m := newModel.(*Model)
	if !m.done {
		t.Error("done should be true")
	}
	if m.result != result {
		t.Error("result should be stored")
	}

	view := m.View()
	if !strings.Contains(view, "mjqqt") {
		t.Errorf("halt view does not show the output: %q", view)
	}
}

func TestModel_HandleRunError(t *testing.T) {
	model := NewModel("encrypt")

	newModel, _ := model.Update(runErrorMsg{err: errors.New("no transition defined for (scan, '!')")})

	m := newModel.(*Model)
	if !m.done {
		t.Error("done should be true after an error")
	}
	view := m.View()
	if !strings.Contains(view, "no transition defined") {
		t.Errorf("error view does not show the error: %q", view)
	}
}
