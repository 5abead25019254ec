package tmux

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// LocalExecutor runs tmux commands on the local machine.
type LocalExecutor struct {
	Bin string
}

// NewLocalExecutor resolves bin (tmux if empty) on $PATH.
func NewLocalExecutor(bin string) (*LocalExecutor, error) {
	path, err := FindTmux(bin)
	if err != nil {
		return nil, err
	}
	return &LocalExecutor{Bin: path}, nil
}

func (l *LocalExecutor) CreateSession(session, name, command string) error {
	_, err := l.output("new-session", "-ds", session, command, ";", "rename-window", name)
	return err
}

func (l *LocalExecutor) CreateWindow(session, name, command string) error {
	return l.spawn("new-window", "-dt", session, "-n", name, command)
}

func (l *LocalExecutor) KillWindow(name string) error {
	return l.spawn("kill-window", "-t", name)
}

func (l *LocalExecutor) ListPanes() ([]Pane, error) {
	out, err := l.output("list-panes", "-a", "-F", paneFormat)
	if err != nil {
		return nil, err
	}
	return ParsePanes(out), nil
}

func (l *LocalExecutor) ListSessions() ([]string, error) {
	out, err := l.output("list-sessions", "-F", sessionFormat)
	if err != nil {
		return nil, err
	}
	return ParseSessions(out), nil
}

// output runs tmux and waits for it, returning stdout. A missing server is
// reported as empty output.
func (l *LocalExecutor) output(args ...string) (string, error) {
	log.Debug("tmux", "args", args)

	cmd := exec.Command(l.Bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if noServer(stderr.String()) {
			return "", nil
		}
		return "", fmt.Errorf("tmux %s failed: %s: %w", args[0], strings.TrimSpace(stderr.String()), err)
	}
	return string(out), nil
}

// spawn starts tmux and returns without waiting for it to finish. The exit
// status is never checked; the child is reaped in the background.
func (l *LocalExecutor) spawn(args ...string) error {
	log.Debug("tmux (spawn)", "args", args)

	cmd := exec.Command(l.Bin, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("tmux %s failed to start: %w", args[0], err)
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}
