package config

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is returned by Add when a command with the same name exists
// and overwrite was not requested.
var ErrDuplicateName = errors.New("duplicate command name")

// DuplicateNameError names the command that already exists. It matches
// ErrDuplicateName with errors.Is.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("command by the name of %q already exists, use --overwrite to overwrite it", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool { return target == ErrDuplicateName }

// Command is a named shell command that runs in its own tmux window.
type Command struct {
	Session string `json:"session" yaml:"session"`
	Name    string `json:"name" yaml:"name"`
	Command string `json:"command" yaml:"command"`
	Startup bool   `json:"startup" yaml:"startup"`
}

// List is the ordered set of registered commands. Order is insertion order.
type List []Command

// Find returns the index of the first command named name, or -1.
func (l List) Find(name string) int {
	for i, c := range l {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Filter returns the commands matching keep, in list order.
func (l List) Filter(keep func(Command) bool) List {
	var out List
	for _, c := range l {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Startup returns the commands flagged to run on startup.
func (l List) Startup() List {
	return l.Filter(func(c Command) bool { return c.Startup })
}

// Named returns the commands whose name equals name.
func (l List) Named(name string) List {
	return l.Filter(func(c Command) bool { return c.Name == name })
}

// Add appends c, or replaces the existing command with the same name in place
// when overwrite is set. Without overwrite a name clash leaves l untouched.
func (l *List) Add(c Command, overwrite bool) error {
	i := l.Find(c.Name)
	switch {
	case i < 0:
		*l = append(*l, c)
	case overwrite:
		(*l)[i] = c
	default:
		return &DuplicateNameError{Name: c.Name}
	}
	return nil
}

// Remove drops every command named name and returns how many were removed.
func (l *List) Remove(name string) int {
	kept := (*l)[:0]
	for _, c := range *l {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	removed := len(*l) - len(kept)
	*l = kept
	return removed
}
