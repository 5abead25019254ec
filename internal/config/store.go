package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Store is the on-disk config file plus the list loaded from it.
// Commands mutate Commands and mark the store modified; Save is a no-op
// unless something changed.
type Store struct {
	Path     string
	Commands List
	modified bool
}

// Open creates dir if needed, creates the config file if absent and loads it.
// An empty or unparseable file yields an empty list. An empty dir means the
// current directory.
func Open(dir string) (*Store, error) {
	if filepath.Clean(dir) != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &Store{Path: path, Commands: decode(data)}, nil
}

func decode(data []byte) List {
	var cmds List
	if err := json.Unmarshal(data, &cmds); err != nil {
		log.Debug("ignoring unreadable config", "err", err)
		return List{}
	}
	if cmds == nil {
		return List{}
	}
	return cmds
}

// Add adds c to the list. See List.Add.
func (s *Store) Add(c Command, overwrite bool) error {
	if err := s.Commands.Add(c, overwrite); err != nil {
		return err
	}
	s.modified = true
	return nil
}

// Remove removes every command named name. The store counts as modified even
// when nothing matched, so the file is rewritten regardless.
func (s *Store) Remove(name string) int {
	n := s.Commands.Remove(name)
	s.modified = true
	return n
}

// Modified reports whether Save would write.
func (s *Store) Modified() bool { return s.modified }

// Save truncates the config file and writes the list as indented JSON,
// but only if Add or Remove ran.
func (s *Store) Save() error {
	if !s.modified {
		return nil
	}

	data, err := json.MarshalIndent(s.Commands, "", "  ")
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.Path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", s.Path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	s.modified = false
	log.Debug("saved config", "path", s.Path, "commands", len(s.Commands))
	return nil
}
