package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simon/tmux-startup/internal/config"
	"github.com/simon/tmux-startup/internal/state"
)

const pollInterval = 1500 * time.Millisecond

// Reconciler is the subset of reconcile.Reconciler the dashboard drives.
type Reconciler interface {
	LiveWindows() (map[string][]int, error)
	CreateWindow(c config.Command) (bool, error)
	CloseWindow(name string) error
	SignalStop(name string) ([]int, error)
}

// Recorder stores start/stop history. Implementations must accept a nil receiver.
type Recorder interface {
	Record(name, session string, action state.Action)
}

type tickMsg time.Time

type liveMsg struct {
	Windows map[string][]int
	Err     error
}

type actionMsg struct {
	Text string
	Err  error
}

type Model struct {
	commands      config.List
	filtered      config.List
	live          map[string][]int
	cursor        int
	input         textinput.Model
	confirmKill   *config.Command
	reconciler    Reconciler
	recorder      Recorder
	width, height int
	status        string
	quitting      bool
	err           error
}

func NewModel(commands config.List, r Reconciler, rec Recorder) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	m := Model{
		commands:   commands,
		live:       map[string][]int{},
		input:      ti,
		reconciler: r,
		recorder:   rec,
	}
	m.applyFilter()
	return m
}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.refresh, tickCmd())
}

func (m Model) refresh() tea.Msg {
	windows, err := m.reconciler.LiveWindows()
	return liveMsg{Windows: windows, Err: err}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case liveMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.live = msg.Windows
		}
		return m, nil

	case actionMsg:
		m.err = msg.Err
		m.status = msg.Text
		return m, m.refresh

	case tickMsg:
		return m, tea.Batch(tickCmd(), m.refresh)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits
	if key.Matches(msg, keys.CtrlC) {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, keys.Escape) {
		if m.confirmKill != nil {
			m.confirmKill = nil
			return m, nil
		}
		if m.input.Value() == "" {
			m.quitting = true
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.applyFilter()
		return m, nil
	}

	// If kill confirmation is pending, only Enter proceeds
	if m.confirmKill != nil {
		c := *m.confirmKill
		m.confirmKill = nil
		if key.Matches(msg, keys.Enter) {
			return m, m.killCmd(c)
		}
		return m, nil
	}

	if key.Matches(msg, keys.Quit) && m.input.Value() == "" {
		m.quitting = true
		return m, tea.Quit
	}

	// Letters always go to the filter, so navigation stays on non-printing keys.
	if key.Matches(msg, keys.Up) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}
	if key.Matches(msg, keys.Down) {
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Enter):
		if sel := m.selected(); sel != nil {
			return m, m.startCmd(*sel)
		}
		return m, nil
	case key.Matches(msg, keys.Stop):
		if sel := m.selected(); sel != nil {
			return m, m.stopCmd(*sel)
		}
		return m, nil
	case key.Matches(msg, keys.Kill):
		if sel := m.selected(); sel != nil {
			c := *sel
			m.confirmKill = &c
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) startCmd(c config.Command) tea.Cmd {
	return func() tea.Msg {
		created, err := m.reconciler.CreateWindow(c)
		if err != nil {
			return actionMsg{Err: err}
		}
		if !created {
			return actionMsg{Text: fmt.Sprintf("%s is already running", c.Name)}
		}
		m.recorder.Record(c.Name, c.Session, state.Started)
		return actionMsg{Text: fmt.Sprintf("started %s in %s", c.Name, c.Session)}
	}
}

func (m Model) stopCmd(c config.Command) tea.Cmd {
	return func() tea.Msg {
		pids, err := m.reconciler.SignalStop(c.Name)
		if len(pids) > 0 {
			m.recorder.Record(c.Name, c.Session, state.Stopped)
		}
		if err != nil {
			return actionMsg{Err: err}
		}
		if len(pids) == 0 {
			return actionMsg{Text: fmt.Sprintf("%s is not running", c.Name)}
		}
		return actionMsg{Text: fmt.Sprintf("sent SIGTERM to %s (%d processes)", c.Name, len(pids))}
	}
}

func (m Model) killCmd(c config.Command) tea.Cmd {
	return func() tea.Msg {
		if err := m.reconciler.CloseWindow(c.Name); err != nil {
			return actionMsg{Err: err}
		}
		m.recorder.Record(c.Name, c.Session, state.Killed)
		return actionMsg{Text: fmt.Sprintf("killed window %s", c.Name)}
	}
}

func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if query == "" {
		m.filtered = m.commands
	} else {
		m.filtered = m.commands.Filter(func(c config.Command) bool {
			return strings.Contains(strings.ToLower(c.Name), query) ||
				strings.Contains(strings.ToLower(c.Session), query) ||
				strings.Contains(strings.ToLower(c.Command), query)
		})
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(len(m.filtered)-1, 0)
	}
}

func (m Model) selected() *config.Command {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	return &m.filtered[m.cursor]
}
