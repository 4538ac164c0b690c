package config_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cfgkit/pkg/config"
	"github.com/arthur-debert/cfgkit/pkg/template"
	"github.com/arthur-debert/cfgkit/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, template.HandlebarsEngineName, cfg.Template.Engine)
	assert.Empty(t, cfg.Template.Extension)
	assert.Equal(t, fs.FileMode(0644), cfg.Files.FileMode)
	assert.Equal(t, fs.FileMode(0755), cfg.Files.DirMode)
	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.Empty(t, cfg.Source)
}

func TestLoadLayers(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	t.Run("toml_file_found_walking_up", func(t *testing.T) {
		path := testutil.CreateFile(t, env.HomeDir, ".cfgkit.toml", `
[template]
engine = "gotemplate"

[files]
filemode = "0600"
`)
		t.Cleanup(func() { _ = env.FS.Remove(path) })

		cfg, err := config.Load(env.Files, nil)
		require.NoError(t, err)
		assert.Equal(t, path, cfg.Source)
		assert.Equal(t, template.GoTemplateEngineName, cfg.Template.Engine)
		assert.Equal(t, fs.FileMode(0600), cfg.Files.FileMode)
		assert.Equal(t, fs.FileMode(0755), cfg.Files.DirMode)
	})

	t.Run("yaml_file", func(t *testing.T) {
		path := testutil.CreateFile(t, env.Cwd, ".cfgkit.yaml", "log:\n  verbosity: 2\ntemplate:\n  extension: .handlebars\n")
		t.Cleanup(func() { _ = env.FS.Remove(path) })

		cfg, err := config.Load(env.Files, nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(env.Cwd, ".cfgkit.yaml"), cfg.Source)
		assert.Equal(t, 2, cfg.Log.Verbosity)
		assert.Equal(t, ".handlebars", cfg.Template.Extension)
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		path := testutil.CreateFile(t, env.Cwd, ".cfgkit.toml", "[log]\nverbosity = 1\n")
		t.Cleanup(func() { _ = env.FS.Remove(path) })
		t.Setenv("CFGKIT_LOG_VERBOSITY", "3")
		t.Setenv("CFGKIT_FILES_DIRMODE", "0700")

		cfg, err := config.Load(env.Files, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Log.Verbosity)
		assert.Equal(t, fs.FileMode(0700), cfg.Files.DirMode)
	})

	t.Run("overrides_win", func(t *testing.T) {
		t.Setenv("CFGKIT_TEMPLATE_ENGINE", "gotemplate")

		cfg, err := config.Load(env.Files, map[string]interface{}{
			"template.engine": "handlebars",
			"log.verbosity":   1,
		})
		require.NoError(t, err)
		assert.Equal(t, "handlebars", cfg.Template.Engine)
		assert.Equal(t, 1, cfg.Log.Verbosity)
	})

	t.Run("malformed_file", func(t *testing.T) {
		path := testutil.CreateFile(t, env.Cwd, ".cfgkit.toml", "[template\n")
		t.Cleanup(func() { _ = env.FS.Remove(path) })

		_, err := config.Load(env.Files, nil)
		assert.Error(t, err)
	})

	t.Run("invalid_file_mode", func(t *testing.T) {
		t.Setenv("CFGKIT_FILES_FILEMODE", "rw-r--r--")

		_, err := config.Load(env.Files, nil)
		assert.Error(t, err)
	})
}

func TestFilesOptions(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	cfg, err := config.Load(nil, map[string]interface{}{"template.engine": "gotemplate"})
	require.NoError(t, err)

	opts, err := cfg.FilesOptions()
	require.NoError(t, err)

	f := env.NewFiles(opts...)
	assert.Equal(t, template.GoTemplateEngineName, f.Engine().Name())
	assert.Equal(t, ".tmpl", f.Engine().Extension())

	cfg.Template.Engine = "jinja"
	_, err = cfg.FilesOptions()
	assert.Error(t, err)
}
