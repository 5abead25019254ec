package reconcile

import (
	"fmt"
	"syscall"

	"github.com/charmbracelet/log"
	ps "github.com/mitchellh/go-ps"
	"golang.org/x/sys/unix"

	"github.com/simon/tmux-startup/internal/config"
	"github.com/simon/tmux-startup/internal/tmux"
)

// Signaler delivers a signal to a process.
type Signaler interface {
	Signal(pid int, sig syscall.Signal) error
}

// UnixSignaler sends real signals with kill(2).
type UnixSignaler struct{}

func (UnixSignaler) Signal(pid int, sig syscall.Signal) error {
	return unix.Kill(pid, sig)
}

// Reconciler converges live tmux windows toward the registered commands.
// Live state is queried fresh on every call.
type Reconciler struct {
	exec   tmux.Executor
	signal Signaler
}

func New(exec tmux.Executor, signal Signaler) *Reconciler {
	if signal == nil {
		signal = UnixSignaler{}
	}
	return &Reconciler{exec: exec, signal: signal}
}

// CreateWindow opens a window for c unless one named c.Name already has a
// live pane. A new session is created when c.Session is not running.
// It reports whether anything was created.
func (r *Reconciler) CreateWindow(c config.Command) (bool, error) {
	pids, err := r.LivePids(c.Name)
	if err != nil {
		return false, err
	}
	if len(pids) > 0 {
		log.Debug("window already running", "name", c.Name, "pids", pids)
		return false, nil
	}

	running, err := r.IsSessionRunning(c.Session)
	if err != nil {
		return false, err
	}

	if !running {
		if err := r.exec.CreateSession(c.Session, c.Name, c.Command); err != nil {
			return false, fmt.Errorf("failed to create session %q for %q: %w", c.Session, c.Name, err)
		}
	} else if err := r.exec.CreateWindow(c.Session, c.Name, c.Command); err != nil {
		return false, fmt.Errorf("failed to create window %q in %q: %w", c.Name, c.Session, err)
	}
	return true, nil
}

// CloseWindow kills the window named name without waiting.
func (r *Reconciler) CloseWindow(name string) error {
	if err := r.exec.KillWindow(name); err != nil {
		return fmt.Errorf("failed to kill window %q: %w", name, err)
	}
	return nil
}

// SignalStop sends SIGTERM to every pane process under windows named name and
// returns the pids signalled. It does not wait for them to exit.
func (r *Reconciler) SignalStop(name string) ([]int, error) {
	pids, err := r.LivePids(name)
	if err != nil {
		return nil, err
	}

	var sent []int
	var firstErr error
	for _, pid := range pids {
		if err := r.signal.Signal(pid, syscall.SIGTERM); err != nil {
			log.Warn("failed to signal process", "name", name, "pid", pid, "err", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to signal pid %d of %q: %w", pid, name, err)
			}
			continue
		}
		sent = append(sent, pid)
	}
	return sent, firstErr
}

// LivePids returns the pane pids of every window named name across sessions.
func (r *Reconciler) LivePids(name string) ([]int, error) {
	panes, err := r.exec.ListPanes()
	if err != nil {
		return nil, err
	}

	var pids []int
	for _, p := range panes {
		if p.Window == name {
			pids = append(pids, p.Pid)
		}
	}
	return pids, nil
}

// Running reports whether name has at least one live pane.
func (r *Reconciler) Running(name string) (bool, error) {
	pids, err := r.LivePids(name)
	return len(pids) > 0, err
}

// LiveWindows maps every window name to its pane pids with a single query.
func (r *Reconciler) LiveWindows() (map[string][]int, error) {
	panes, err := r.exec.ListPanes()
	if err != nil {
		return nil, err
	}

	windows := make(map[string][]int)
	for _, p := range panes {
		windows[p.Window] = append(windows[p.Window], p.Pid)
	}
	return windows, nil
}

// IsSessionRunning reports whether a session with exactly this name exists.
func (r *Reconciler) IsSessionRunning(session string) (bool, error) {
	sessions, err := r.exec.ListSessions()
	if err != nil {
		return false, err
	}
	for _, s := range sessions {
		if s == session {
			return true, nil
		}
	}
	return false, nil
}

// Process is a live pane process.
type Process struct {
	Pid        int
	Executable string // empty if the process already exited
}

// Processes resolves the executables behind name's pane pids.
func (r *Reconciler) Processes(name string) ([]Process, error) {
	pids, err := r.LivePids(name)
	if err != nil {
		return nil, err
	}

	procs := make([]Process, 0, len(pids))
	for _, pid := range pids {
		procs = append(procs, Process{Pid: pid, Executable: executable(pid)})
	}
	return procs, nil
}

func executable(pid int) string {
	p, err := ps.FindProcess(pid)
	if err != nil || p == nil {
		return ""
	}
	return p.Executable()
}
