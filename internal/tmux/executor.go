package tmux

// Executor abstracts the tmux operations used to reconcile windows, so tests
// can swap in a fake instead of running a real server.
type Executor interface {
	// CreateSession starts a detached session running command and renames its
	// first window to name. It waits for tmux to exit.
	CreateSession(session, name, command string) error
	// CreateWindow opens a detached window in an existing session. It does not
	// wait for tmux to exit.
	CreateWindow(session, name, command string) error
	// KillWindow destroys the window targeted by name without waiting.
	KillWindow(name string) error
	// ListPanes returns every pane across all sessions.
	ListPanes() ([]Pane, error)
	// ListSessions returns the names of all live sessions.
	ListSessions() ([]string, error)
}
