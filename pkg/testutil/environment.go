package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cfgkit/pkg/files"
	"github.com/arthur-debert/cfgkit/pkg/filesystem"
	"github.com/arthur-debert/cfgkit/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment bundles the anchors, filesystem and Files instance a test
// operates on. Cwd is a directory below HomeDir so upward searches have room
// to walk.
type TestEnvironment struct {
	Root    string
	HomeDir string
	Cwd     string

	FS    filesystem.FS
	Files *files.Files

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType, opts ...files.Option) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		root, err := filepath.EvalSymlinks(t.TempDir())
		require.NoError(t, err)
		env.Root = root
		env.FS = filesystem.NewOS()
	}

	env.HomeDir = filepath.Join(env.Root, "home")
	env.Cwd = filepath.Join(env.HomeDir, "project")
	require.NoError(t, env.FS.MkdirAll(env.Cwd, 0755))

	env.Files = env.NewFiles(opts...)
	return env
}

// Anchors returns the anchors of the environment
func (env *TestEnvironment) Anchors() paths.Anchors {
	return paths.Anchors{Cwd: env.Cwd, Home: env.HomeDir}
}

// NewFiles builds a Files bound to the environment. opts are applied after
// the environment's own options, so they can replace the filesystem.
func (env *TestEnvironment) NewFiles(opts ...files.Option) *files.Files {
	base := []files.Option{
		files.WithFS(env.FS),
		files.WithAnchors(env.Anchors()),
		files.WithLogger(zerolog.Nop()),
	}
	return files.New(append(base, opts...)...)
}

// Path returns rel joined onto the working directory
func (env *TestEnvironment) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(env.Cwd, rel)
}

// WriteFile creates a file relative to the working directory, creating
// parent directories as needed
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()

	path := env.Path(rel)
	require.NoError(env.t, env.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, env.FS.WriteFile(path, []byte(content), 0644))
	return path
}

// Mkdir creates a directory relative to the working directory
func (env *TestEnvironment) Mkdir(rel string) string {
	env.t.Helper()

	path := env.Path(rel)
	require.NoError(env.t, env.FS.MkdirAll(path, 0755))
	return path
}

// ReadFile returns the content of a file relative to the working directory
func (env *TestEnvironment) ReadFile(rel string) string {
	env.t.Helper()

	data, err := env.FS.ReadFile(env.Path(rel))
	require.NoError(env.t, err)
	return string(data)
}

// WithFileTree creates a complete file tree under the working directory
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, env.Cwd, tree)
}

// FileTree represents a directory structure for testing. Values are either
// file content strings or nested FileTrees.
type FileTree map[string]interface{}

// CreateFileTree recursively creates tree under basePath
func CreateFileTree(t *testing.T, fsys filesystem.FS, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fsys.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
			}
			if err := fsys.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fsys.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			CreateFileTree(t, fsys, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
