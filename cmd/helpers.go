package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/simon/tmux-startup/internal/config"
	"github.com/simon/tmux-startup/internal/reconcile"
	"github.com/simon/tmux-startup/internal/state"
	"github.com/simon/tmux-startup/internal/tmux"
)

// Swapped out by tests.
var (
	environ     = config.EnvFromOS
	newExecutor = func(bin string) (tmux.Executor, error) { return tmux.NewLocalExecutor(bin) }
	signaler    = reconcile.Signaler(reconcile.UnixSignaler{})
)

// openStore resolves the config directory and loads the command list.
// Nothing is touched on disk when no directory can be resolved.
func openStore() (*config.Store, error) {
	dir, err := config.ResolveDir(environ())
	if err != nil {
		return nil, err
	}
	return config.Open(dir)
}

// newReconciler builds a reconciler for the tmux binary chosen by --tmux,
// $TMUX_STARTUP_TMUX or the default.
func newReconciler(cmd *cobra.Command) (*reconcile.Reconciler, error) {
	bin, _ := cmd.Flags().GetString("tmux")
	if bin == "" {
		bin = environ()["TMUX_STARTUP_TMUX"]
	}
	exec, err := newExecutor(bin)
	if err != nil {
		return nil, err
	}
	return reconcile.New(exec, signaler), nil
}

// history is the optional run history. A nil *history records nothing.
type history struct {
	store *state.Store
}

// openHistory opens the history database. Failures only disable history.
func openHistory() *history {
	dir, err := config.ResolveStateDir(environ())
	if err != nil {
		log.Debug("history disabled", "err", err)
		return nil
	}
	store, err := state.Open(dir)
	if err != nil {
		log.Debug("history disabled", "dir", dir, "err", err)
		return nil
	}
	return &history{store: store}
}

func (h *history) Record(name, session string, action state.Action) {
	if h == nil {
		return
	}
	if err := h.store.Record(name, session, action); err != nil {
		log.Debug("failed to record history", "name", name, "err", err)
	}
}

func (h *history) Close() {
	if h != nil {
		h.store.Close()
	}
}

// eachCommand runs fn for every command, logging failures and carrying on.
// The failures are returned joined once all commands have been tried.
func eachCommand(cmds config.List, fn func(config.Command) error) error {
	var errs []error
	for _, c := range cmds {
		if err := fn(c); err != nil {
			log.Warn("command failed", "name", c.Name, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
		}
	}
	return errors.Join(errs...)
}

// sessionOf returns the registered session for name, if any.
func sessionOf(cmds config.List, name string) string {
	if i := cmds.Find(name); i >= 0 {
		return cmds[i].Session
	}
	return ""
}

// startAll creates windows for cmds in order. tmux is not looked up when
// there is nothing to start.
func startAll(cmd *cobra.Command, cmds config.List) error {
	if len(cmds) == 0 {
		return nil
	}
	r, err := newReconciler(cmd)
	if err != nil {
		return err
	}
	h := openHistory()
	defer h.Close()

	return eachCommand(cmds, func(c config.Command) error {
		created, err := r.CreateWindow(c)
		if err != nil {
			return err
		}
		if created {
			log.Info("started", "name", c.Name, "session", c.Session)
			h.Record(c.Name, c.Session, state.Started)
		} else {
			log.Debug("already running", "name", c.Name)
		}
		return nil
	})
}
