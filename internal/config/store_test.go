package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesMissingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "tmux_startup")

	s, err := Open(dir)
	require.NoError(t, err)
	assert.Empty(t, s.Commands)
	assert.NotNil(t, s.Commands)
	assert.False(t, s.Modified())

	info, err := os.Stat(filepath.Join(dir, "tmux_startup.json"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestOpenCorruptFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmux_startup.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := Open(dir)
	require.NoError(t, err)
	assert.Empty(t, s.Commands)

	// The corrupt contents survive until something is saved.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	for _, c := range sample() {
		require.NoError(t, s.Add(c, false))
	}
	require.NoError(t, s.Save())
	assert.False(t, s.Modified())

	reloaded, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, sample(), reloaded.Commands)
}

func TestSaveWritesIndentedJSONArray(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, s.Add(Command{Session: "dev", Name: "server", Command: "npm start", Startup: true}, false))
	assert.True(t, s.Modified())
	require.NoError(t, s.Save())

	data, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {\n")

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, map[string]any{
		"session": "dev",
		"name":    "server",
		"command": "npm start",
		"startup": true,
	}, raw[0])
}

func TestSaveSkippedWithoutMutation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmux_startup.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "garbage", string(data))
}

func TestDuplicateAddDoesNotMarkModified(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	s.Commands = sample()

	err = s.Add(Command{Name: "server"}, false)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.False(t, s.Modified())
}

func TestRemoveMissingStillSaves(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmux_startup.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	s, err := Open(dir)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Remove("missing"))
	assert.True(t, s.Modified())
	require.NoError(t, s.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSaveShrinksFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	for _, c := range sample() {
		require.NoError(t, s.Add(c, false))
	}
	require.NoError(t, s.Save())

	s.Remove("server")
	s.Remove("watch")
	s.Remove("logs")
	require.NoError(t, s.Save())

	data, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestOpenEmptyDirUsesWorkingDir(t *testing.T) {
	wd := t.TempDir()
	t.Chdir(wd)

	dir, err := ResolveDir(Env{"TMUX_STARTUP_HOME": ""})
	require.NoError(t, err)

	s, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, "tmux_startup.json", s.Path)

	require.NoError(t, s.Add(Command{Session: "dev", Name: "server", Command: "npm start"}, false))
	require.NoError(t, s.Save())

	_, err = os.Stat(filepath.Join(wd, "tmux_startup.json"))
	assert.NoError(t, err)
}
