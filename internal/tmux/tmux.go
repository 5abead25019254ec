package tmux

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultBinary is the multiplexer looked up on $PATH when none is configured.
const DefaultBinary = "tmux"

const (
	paneFormat    = "#{pane_pid} #{window_name}"
	sessionFormat = "#{session_name}"
)

// ErrNotFound is returned when the tmux binary cannot be located.
var ErrNotFound = errors.New("tmux not found")

// Pane is one line of list-panes output.
type Pane struct {
	Pid    int
	Window string
}

// FindTmux locates the tmux binary.
func FindTmux(bin string) (string, error) {
	if bin == "" {
		bin = DefaultBinary
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrNotFound, bin, err)
	}
	return path, nil
}

// ParsePanes parses "<pid> <window_name>" lines. Lines without a space or
// with a non-numeric pid are skipped. Window names may contain spaces.
func ParsePanes(output string) []Pane {
	var panes []Pane
	for _, line := range strings.Split(output, "\n") {
		pidStr, window, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		pid, err := strconv.Atoi(pidStr)
		if err != nil {
			continue
		}
		panes = append(panes, Pane{Pid: pid, Window: window})
	}
	return panes
}

// ParseSessions parses newline separated session names.
func ParseSessions(output string) []string {
	var sessions []string
	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}
		sessions = append(sessions, line)
	}
	return sessions
}

// noServer reports whether tmux stderr means there is simply nothing running.
func noServer(stderr string) bool {
	return strings.Contains(stderr, "no server running") ||
		strings.Contains(stderr, "error connecting to") ||
		strings.Contains(stderr, "no sessions")
}
