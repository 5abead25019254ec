package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() List {
	return List{
		{Session: "dev", Name: "server", Command: "npm start", Startup: true},
		{Session: "dev", Name: "watch", Command: "npm run watch"},
		{Session: "ops", Name: "logs", Command: "journalctl -f", Startup: true},
	}
}

func TestAddAppends(t *testing.T) {
	var l List
	require.NoError(t, l.Add(Command{Session: "dev", Name: "server", Command: "npm start"}, false))
	require.NoError(t, l.Add(Command{Session: "dev", Name: "db", Command: "postgres"}, false))

	require.Len(t, l, 2)
	assert.Equal(t, "server", l[0].Name)
	assert.Equal(t, "db", l[1].Name)
}

func TestAddDuplicateWithoutOverwrite(t *testing.T) {
	l := sample()
	before := append(List(nil), l...)

	err := l.Add(Command{Session: "other", Name: "watch", Command: "true"}, false)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, before, l)

	err = l.Add(Command{Session: "other", Name: "watch", Command: "true"}, false)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, before, l)
}

func TestAddOverwriteKeepsPosition(t *testing.T) {
	l := sample()
	replacement := Command{Session: "other", Name: "watch", Command: "make watch", Startup: true}

	require.NoError(t, l.Add(replacement, true))

	require.Len(t, l, 3)
	assert.Equal(t, replacement, l[1])
	assert.Equal(t, "server", l[0].Name)
	assert.Equal(t, "logs", l[2].Name)
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name    string
		list    List
		remove  string
		removed int
		expect  []string
	}{
		{name: "single match", list: sample(), remove: "watch", removed: 1, expect: []string{"server", "logs"}},
		{name: "no match", list: sample(), remove: "nope", removed: 0, expect: []string{"server", "watch", "logs"}},
		{
			name:    "all duplicates",
			list:    List{{Name: "a"}, {Name: "b"}, {Name: "a"}},
			remove:  "a",
			removed: 2,
			expect:  []string{"b"},
		},
		{name: "empty list", list: List{}, remove: "a", removed: 0, expect: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.list.Remove(tt.remove)
			assert.Equal(t, tt.removed, n)

			names := []string{}
			for _, c := range tt.list {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.expect, names)
		})
	}
}

func TestFilters(t *testing.T) {
	l := sample()

	startup := l.Startup()
	require.Len(t, startup, 2)
	assert.Equal(t, "server", startup[0].Name)
	assert.Equal(t, "logs", startup[1].Name)

	assert.Len(t, l.Named("watch"), 1)
	assert.Empty(t, l.Named("missing"))

	assert.Equal(t, 2, l.Find("logs"))
	assert.Equal(t, -1, l.Find("missing"))
}

func TestAddDuplicateNamesCommand(t *testing.T) {
	l := sample()

	err := l.Add(Command{Name: "logs"}, false)

	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "logs", dup.Name)
	assert.ErrorIs(t, err, ErrDuplicateName)
}
