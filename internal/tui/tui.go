package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"turingsim/internal/machine"
	"turingsim/internal/render"
	"turingsim/internal/tape"
)

// MaxTransitions is the number of recent transitions to display.
const MaxTransitions = 8

// keyMap defines the watch-mode keybindings.
type keyMap struct {
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// tapeSnapshot is an immutable view of the tape taken between steps.
type tapeSnapshot struct {
	cells []tape.Symbol
	head  int
}

// Message types for TUI updates
type (
	runStartedMsg struct{ snap tapeSnapshot }
	stepMsg       struct {
		snap  tapeSnapshot
		tr    machine.Transition
		state machine.State
		step  int
	}
	haltMsg         struct{ result *machine.RunResult }
	runErrorMsg     struct{ err error }
	durationTickMsg struct{}
)

// Observer implements machine.StepObserver and forwards events to the TUI.
type Observer struct {
	machine.NoopObserver
	program *tea.Program
}

// Ensure Observer implements StepObserver.
var _ machine.StepObserver = (*Observer)(nil)

func snapshot(m *machine.Machine) tapeSnapshot {
	t := m.Tape()
	return tapeSnapshot{cells: t.Cells(), head: t.Head()}
}

// OnRunStart is called before the first step.
func (o *Observer) OnRunStart(m *machine.Machine) {
	if o.program != nil {
		o.program.Send(runStartedMsg{snap: snapshot(m)})
	}
}

// OnStep is called after every applied transition.
func (o *Observer) OnStep(m *machine.Machine, tr machine.Transition, step int) {
	if o.program != nil {
		o.program.Send(stepMsg{snap: snapshot(m), tr: tr, state: m.State(), step: step})
	}
}

// OnHalt is called when the run stops.
func (o *Observer) OnHalt(_ *machine.Machine, result *machine.RunResult) {
	if o.program != nil {
		o.program.Send(haltMsg{result: result})
	}
}

// Model is the Bubble Tea model for the watch view.
type Model struct {
	title  string
	styles Styles
	tape   render.Styles
	keys   keyMap
	help   help.Model

	snap        tapeSnapshot
	state       machine.State
	step        int
	transitions []machine.Transition // Ring buffer of recent transitions

	started  bool
	done     bool
	result   *machine.RunResult
	err      error
	runStart time.Time
	elapsed  time.Duration

	width  int
	height int

	cancel context.CancelFunc
}

// Compile-time interface compliance check
var _ tea.Model = (*Model)(nil)

// NewModel creates a watch model titled after the machine being run.
func NewModel(title string) *Model {
	return &Model{
		title:       title,
		styles:      DefaultStyles(),
		tape:        render.DefaultStyles(),
		keys:        defaultKeyMap(),
		help:        help.New(),
		transitions: make([]machine.Transition, 0, MaxTransitions+1),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case runStartedMsg:
		m.started = true
		m.snap = msg.snap

	case stepMsg:
		m.snap = msg.snap
		m.state = msg.state
		m.step = msg.step
		m.transitions = append(m.transitions, msg.tr)
		if len(m.transitions) > MaxTransitions {
			m.transitions = m.transitions[1:]
		}

	case haltMsg:
		m.done = true
		m.result = msg.result

	case runErrorMsg:
		m.done = true
		m.err = msg.err

	case durationTickMsg:
		if !m.done && m.started {
			m.elapsed = time.Since(m.runStart)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("turingsim") + " " + m.styles.Subtitle.Render(m.title))
	b.WriteString("\n\n")

	if m.started {
		b.WriteString(m.styles.Border.Render(m.tape.Frame(m.snap.cells, m.snap.head)))
		b.WriteString("\n\n")
	}

	if m.state != "" {
		b.WriteString(m.styles.Status.Render(fmt.Sprintf("state %s · step %d · %s",
			m.state, m.step, m.elapsed.Round(time.Millisecond))))
		b.WriteString("\n\n")
	}

	for _, tr := range m.transitions {
		b.WriteString(m.styles.Muted.Render(tr.String()))
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString("\n")
		switch {
		case m.err != nil:
			b.WriteString(m.styles.Error.Render(fmt.Sprintf("✗ %v", m.err)))
		case m.result != nil:
			b.WriteString(m.styles.Success.Render(
				fmt.Sprintf("✓ %s after %d step(s): %q", m.result.Halt, m.result.Steps, m.result.Output)))
		}
		b.WriteString("\n" + m.styles.Muted.Render("press q to exit"))
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

// Run drives the machine under a live TUI and returns the run result
// once the machine halts and the user exits the view. An additional
// observer, if provided, receives the same progress events.
func Run(ctx context.Context, mc *machine.Machine, title string, additional machine.StepObserver) (*machine.RunResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(title)
	m.cancel = cancel
	m.runStart = time.Now()

	p := tea.NewProgram(m, tea.WithAltScreen())

	tuiObserver := &Observer{program: p}
	if additional != nil {
		mc.Observer = machine.NewMultiObserver(additional, tuiObserver)
	} else {
		mc.Observer = tuiObserver
	}

	var (
		result *machine.RunResult
		runErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		// Duration ticker for the elapsed display.
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		go func() {
			for {
				select {
				case <-ticker.C:
					p.Send(durationTickMsg{})
				case <-ctx.Done():
					return
				}
			}
		}()

		result, runErr = mc.Run(ctx)
		if runErr != nil {
			p.Send(runErrorMsg{err: runErr})
		}
	}()

	if _, err := p.Run(); err != nil {
		return nil, err
	}
	cancel()
	<-done
	if runErr != nil {
		return nil, runErr
	}
	return result, nil
}
