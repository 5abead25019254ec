package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirName  = "tmux_startup"
	fileName = "tmux_startup.json"
)

// ErrNoConfigDir is returned when none of the config environment variables are set.
var ErrNoConfigDir = errors.New("please set $HOME, $XDG_CONFIG_HOME, or $TMUX_STARTUP_HOME")

// Env is a snapshot of environment variables.
type Env map[string]string

// EnvFromOS captures the current process environment.
func EnvFromOS() Env {
	env := make(Env)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// ResolveDir picks the config directory. First match wins:
// $TMUX_STARTUP_HOME, $XDG_CONFIG_HOME/tmux_startup, $HOME/.config/tmux_startup.
// A variable that is set but empty still counts as a match.
func ResolveDir(env Env) (string, error) {
	if path, ok := env["TMUX_STARTUP_HOME"]; ok {
		return path, nil
	}
	if path, ok := env["XDG_CONFIG_HOME"]; ok {
		return filepath.Join(path, dirName), nil
	}
	if path, ok := env["HOME"]; ok {
		return filepath.Join(path, ".config", dirName), nil
	}
	return "", ErrNoConfigDir
}

// ResolveStateDir returns the directory holding the history database:
// $XDG_STATE_HOME/tmux_startup, else $HOME/.local/state/tmux_startup.
func ResolveStateDir(env Env) (string, error) {
	if path := env["XDG_STATE_HOME"]; path != "" {
		return filepath.Join(path, dirName), nil
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".local", "state", dirName), nil
	}
	return "", errors.New("no state directory: $XDG_STATE_HOME and $HOME are unset")
}
