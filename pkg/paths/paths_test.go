package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakePath(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		expected string
	}{
		{
			name:     "relative segments",
			segments: []string{"path", "to", "file.txt"},
			expected: filepath.Join("path", "to", "file.txt"),
		},
		{
			name:     "absolute first segment",
			segments: []string{"/root", "a", "b"},
			expected: "/root/a/b",
		},
		{
			name:     "parent segment is cleaned",
			segments: []string{"/root", "a", "..", "b"},
			expected: "/root/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MakePath(tt.segments...))
		})
	}
}

func TestAnchors(t *testing.T) {
	a := Anchors{Cwd: "/work/project", Home: "/home/ada"}

	t.Run("make path from cwd", func(t *testing.T) {
		assert.Equal(t, "/work/project/src/index.ts", a.MakePathFromCwd("src", "index.ts"))
		assert.Equal(t, "/work/project", a.MakePathFromCwd())
	})

	t.Run("abs resolves against cwd anchor", func(t *testing.T) {
		assert.Equal(t, "/work/project/a/b", a.Abs("a/b"))
		assert.Equal(t, "/work", a.Abs(".."))
		assert.Equal(t, "/etc/hosts", a.Abs("/etc/../etc/hosts"))
	})

	t.Run("expand home", func(t *testing.T) {
		assert.Equal(t, "/home/ada", a.ExpandHome("~"))
		assert.Equal(t, "/home/ada/.config", a.ExpandHome("~/.config"))
		assert.Equal(t, "rel/~", a.ExpandHome("rel/~"))
	})
}

func TestDetect(t *testing.T) {
	t.Run("home from env", func(t *testing.T) {
		t.Setenv(EnvHome, "/home/test")
		a, err := Detect()
		require.NoError(t, err)
		assert.Equal(t, "/home/test", a.Home)
		assert.True(t, filepath.IsAbs(a.Cwd))
	})

	t.Run("home fallback placeholder", func(t *testing.T) {
		t.Setenv(EnvHome, "")
		a := MustDetect()
		assert.Equal(t, HomeFallback, a.Home)
	})
}

func TestIsRoot(t *testing.T) {
	assert.True(t, IsRoot("/"))
	assert.False(t, IsRoot("/usr"))
	assert.False(t, IsRoot("/usr/local/.."))
}

func TestStateDir(t *testing.T) {
	t.Setenv(EnvStateDir, "/custom/state")
	assert.Equal(t, "/custom/state", StateDir())
	assert.Equal(t, "/custom/state/cfgkit.log", LogFilePath())
}
