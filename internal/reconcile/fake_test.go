package reconcile

import (
	"fmt"
	"syscall"

	"github.com/simon/tmux-startup/internal/tmux"
)

// fakeTmux records calls and serves canned live state.
type fakeTmux struct {
	panes     []tmux.Pane
	sessions  []string
	calls     []string
	listErr   error
	createErr error

	// live makes created windows show up in later ListPanes calls.
	live    bool
	nextPid int
}

func (f *fakeTmux) CreateSession(session, name, command string) error {
	f.calls = append(f.calls, fmt.Sprintf("new-session %s %s %s", session, name, command))
	if f.createErr != nil {
		return f.createErr
	}
	f.sessions = append(f.sessions, session)
	f.addPane(name)
	return nil
}

func (f *fakeTmux) CreateWindow(session, name, command string) error {
	f.calls = append(f.calls, fmt.Sprintf("new-window %s %s %s", session, name, command))
	if f.createErr != nil {
		return f.createErr
	}
	f.addPane(name)
	return nil
}

func (f *fakeTmux) addPane(name string) {
	if !f.live {
		return
	}
	f.nextPid++
	f.panes = append(f.panes, tmux.Pane{Pid: 10000 + f.nextPid, Window: name})
}

func (f *fakeTmux) KillWindow(name string) error {
	f.calls = append(f.calls, "kill-window "+name)
	return nil
}

func (f *fakeTmux) ListPanes() ([]tmux.Pane, error) {
	return f.panes, f.listErr
}

func (f *fakeTmux) ListSessions() ([]string, error) {
	return f.sessions, f.listErr
}

type fakeSignaler struct {
	sent []int
	fail map[int]error
}

func (f *fakeSignaler) Signal(pid int, sig syscall.Signal) error {
	if err := f.fail[pid]; err != nil {
		return err
	}
	if sig == syscall.SIGTERM {
		f.sent = append(f.sent, pid)
	}
	return nil
}
