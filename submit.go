package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/rshep3087/ledgerly/callstate"
)

// errSubmitAborted is returned when the user quits while a submission is
// still in flight.
var errSubmitAborted = errors.New("submission aborted")

// phaseOf maps a call state onto the phase shown by the submit view.
func phaseOf[T any](s callstate.State[T]) submitPhase {
	switch {
	case s.Loading:
		return phaseSubmitting
	case s.Error != "":
		return phaseFailed
	case s.Data != nil:
		return phaseSucceeded
	}
	return phaseIdle
}

// submitStateMsg carries a call state transition into the program.
type submitStateMsg[T any] struct {
	state callstate.State[T]
}

// submitDoneMsg is sent once the call has settled.
type submitDoneMsg[T any] struct {
	state callstate.State[T]
	err   error
}

// submitModel shows a spinner while a callstate.Call runs, then its outcome.
type submitModel[A, T any] struct {
	ctx    context.Context
	cancel context.CancelFunc
	call   *callstate.Call[A, T]
	args   A

	title   string
	render  func(T) string
	spinner spinner.Model
	styles  styles

	state callstate.State[T]
	err   error
	done  bool
}

func newSubmitModel[A, T any](
	ctx context.Context,
	call *callstate.Call[A, T],
	args A,
	title string,
	render func(T) string,
) *submitModel[A, T] {
	ctx, cancel := context.WithCancel(ctx)
	st := createStyles(defaultTheme())

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = st.titleStyle

	return &submitModel[A, T]{
		ctx:     ctx,
		cancel:  cancel,
		call:    call,
		args:    args,
		title:   title,
		render:  render,
		spinner: s,
		styles:  st,
	}
}

func (m *submitModel[A, T]) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.submit)
}

func (m *submitModel[A, T]) submit() tea.Msg {
	_, err := m.call.Execute(m.ctx, m.args)
	return submitDoneMsg[T]{state: m.call.State(), err: err}
}

func (m *submitModel[A, T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.cancel()
			if !m.done {
				m.err = errSubmitAborted
			}
			return m, tea.Quit
		}
	case submitStateMsg[T]:
		m.state = msg.state
	case submitDoneMsg[T]:
		m.state = msg.state
		m.err = msg.err
		m.done = true
		m.cancel()
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *submitModel[A, T]) View() string {
	switch phaseOf(m.state) {
	case phaseSucceeded:
		out := m.styles.successStyle.Render("✓ " + m.title)
		if m.render != nil {
			out += "\n" + m.render(*m.state.Data)
		}
		return out + "\n"
	case phaseFailed:
		return m.styles.errorStyle.Render("✗ "+m.state.Error) + "\n"
	default:
		return fmt.Sprintf("%s %s…\n", m.spinner.View(), m.title)
	}
}

// runSubmit executes fn under a spinner and returns its result. The call's
// state transitions are forwarded to the view as they happen.
func runSubmit[A, T any](
	ctx context.Context,
	out io.Writer,
	fn callstate.Func[A, T],
	args A,
	title string,
	render func(T) string,
) (T, error) {
	var (
		zero T
		p    *tea.Program
	)

	call := callstate.New(fn, callstate.WithObserver[A, T](func(s callstate.State[T]) {
		log.Debug("submit state", "phase", phaseOf(s))
		if p != nil {
			p.Send(submitStateMsg[T]{state: s})
		}
	}))

	m := newSubmitModel(ctx, call, args, title, render)
	p = tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return zero, fmt.Errorf("failed to run submit view: %w", err)
	}

	sm, ok := final.(*submitModel[A, T])
	if !ok {
		return zero, errors.New("unexpected submit model")
	}
	if sm.err != nil {
		return zero, sm.err
	}

	data, ok := call.Data()
	if !ok {
		return zero, errors.New("submission finished without a result")
	}
	return data, nil
}
