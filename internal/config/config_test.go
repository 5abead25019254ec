package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDir(t *testing.T) {
	tests := []struct {
		name   string
		env    Env
		expect string
	}{
		{
			name:   "explicit override wins",
			env:    Env{"TMUX_STARTUP_HOME": "/opt/ts", "XDG_CONFIG_HOME": "/xdg", "HOME": "/home/u"},
			expect: "/opt/ts",
		},
		{
			name:   "xdg config home",
			env:    Env{"XDG_CONFIG_HOME": "/xdg", "HOME": "/home/u"},
			expect: filepath.Join("/xdg", "tmux_startup"),
		},
		{
			name:   "home fallback",
			env:    Env{"HOME": "/home/u"},
			expect: filepath.Join("/home/u", ".config", "tmux_startup"),
		},
		{
			name:   "empty override still counts",
			env:    Env{"TMUX_STARTUP_HOME": "", "HOME": "/home/u"},
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := ResolveDir(tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, dir)
		})
	}
}

func TestResolveDirUnset(t *testing.T) {
	_, err := ResolveDir(Env{"PATH": "/usr/bin"})
	assert.ErrorIs(t, err, ErrNoConfigDir)
}

func TestResolveStateDir(t *testing.T) {
	dir, err := ResolveStateDir(Env{"XDG_STATE_HOME": "/state", "HOME": "/home/u"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/state", "tmux_startup"), dir)

	dir, err = ResolveStateDir(Env{"HOME": "/home/u"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/u", ".local", "state", "tmux_startup"), dir)

	_, err = ResolveStateDir(Env{})
	assert.Error(t, err)
}
