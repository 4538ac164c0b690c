package cfgkit

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/cfgkit/pkg/errors"
	"github.com/arthur-debert/cfgkit/pkg/format"
	"github.com/arthur-debert/cfgkit/pkg/paths"
	"github.com/arthur-debert/cfgkit/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// setupWorkspace returns a project directory below a fake HOME, with logs
// sent to a temporary state directory
func setupWorkspace(t *testing.T) string {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	t.Setenv(paths.EnvHome, root)
	t.Setenv(paths.EnvStateDir, filepath.Join(root, ".state"))

	return testutil.CreateDir(t, root, "project")
}

func run(t *testing.T, dir, stdin string, args ...string) result {
	t.Helper()

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"-C", dir}, args...))

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestSetAndGet(t *testing.T) {
	dir := setupWorkspace(t)

	res := run(t, dir, "", "set", "app.json", "--data", `{"name": "app", "private": true}`)
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "wrote app.json")
	testutil.AssertFileContent(t, filepath.Join(dir, "app.json"), "{\n  \"name\": \"app\",\n  \"private\": true\n}")

	res = run(t, dir, "", "get", "app.json")
	require.NoError(t, res.err)
	assert.Equal(t, "{\n  \"name\": \"app\",\n  \"private\": true\n}\n", res.stdout)

	res = run(t, dir, "", "get", "app.json", "--format", "yaml")
	require.NoError(t, res.err)
	assert.Equal(t, "name: app\nprivate: true\n", res.stdout)
}

func TestSetMergeFromStdin(t *testing.T) {
	dir := setupWorkspace(t)
	testutil.CreateFile(t, dir, "ci/config.yaml", "steps:\n  - lint\nname: ci\n")

	res := run(t, dir, "steps: [test, lint]\nenv:\n  CI: 'true'\n", "set", "ci/config.yaml", "--mode", "merge")
	require.NoError(t, res.err)

	data, err := format.Decode(format.YAML, []byte(testutil.ReadFile(t, filepath.Join(dir, "ci", "config.yaml"))))
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"name":  "ci",
		"steps": []interface{}{"lint", "test"},
		"env":   map[string]interface{}{"CI": "true"},
	}, data)
}

func TestSetArrayFlags(t *testing.T) {
	dir := setupWorkspace(t)
	path := testutil.CreateFile(t, dir, "data.json", `{"a": [1, 2]}`)

	res := run(t, dir, "", "set", "data.json", "--mode", "merge", "--keep-duplicates", "--data", `{"a": [2, 3]}`)
	require.NoError(t, res.err)
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    2,\n    2,\n    3\n  ]\n}", testutil.ReadFile(t, path))

	res = run(t, dir, "", "set", "data.json", "--mode", "merge", "--replace-arrays", "--data", `{"a": [9]}`)
	require.NoError(t, res.err)
	assert.Equal(t, "{\n  \"a\": [\n    9\n  ]\n}", testutil.ReadFile(t, path))
}

func TestSetText(t *testing.T) {
	dir := setupWorkspace(t)
	testutil.CreateFile(t, dir, ".gitignore", "node_modules")

	res := run(t, dir, "", "set", ".gitignore", "--mode", "merge", "--data", "dist")
	require.NoError(t, res.err)
	testutil.AssertFileContent(t, filepath.Join(dir, ".gitignore"), "node_modules\ndist")
}

func TestSetErrors(t *testing.T) {
	dir := setupWorkspace(t)

	tests := []struct {
		name    string
		stdin   string
		args    []string
		code    errors.ErrorCode
		message string
	}{
		{name: "no_data", args: []string{"set", "a.json"}, message: MsgErrNoData},
		{name: "bad_mode", args: []string{"set", "a.json", "--mode", "append", "--data", "{}"}, code: errors.ErrFileWrite},
		{name: "bad_format", args: []string{"set", "a.json", "--format", "ini", "--data", "{}"}, code: errors.ErrFileParse},
		{name: "unparsable_data", args: []string{"set", "a.yaml", "--data", "a: [1"}, message: "failed to parse --data as yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, dir, tt.stdin, tt.args...)
			require.Error(t, res.err)
			if tt.code != "" {
				assert.Equal(t, tt.code, errors.GetErrorCode(res.err))
			}
			if tt.message != "" {
				assert.Contains(t, res.err.Error(), tt.message)
			}
		})
	}
}

func TestGetErrors(t *testing.T) {
	dir := setupWorkspace(t)
	testutil.CreateFile(t, dir, "broken.json", `{"a": `)

	res := run(t, dir, "", "get", "missing.json")
	assert.Equal(t, errors.ErrFileRead, errors.GetErrorCode(res.err))

	res = run(t, dir, "", "get", "broken.json")
	assert.Equal(t, errors.ErrFileParse, errors.GetErrorCode(res.err))
}

func TestCopy(t *testing.T) {
	dir := setupWorkspace(t)
	testutil.CreateFile(t, dir, "templates/editorconfig", "root = true\n")
	testutil.CreateFile(t, dir, "templates/prettierrc", "{}\n")

	res := run(t, dir, "", "copy", "templates/editorconfig", "--as", ".editorconfig")
	require.NoError(t, res.err)
	testutil.AssertFileContent(t, filepath.Join(dir, ".editorconfig"), "root = true\n")

	res = run(t, dir, "", "copy", "templates/editorconfig", "templates/prettierrc", "--dest", "out")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "copied 2 file(s) to out")
	assert.True(t, testutil.FileExists(t, filepath.Join(dir, "out", "prettierrc")))

	res = run(t, dir, "", "copy", "templates/editorconfig", "templates/prettierrc", "--as", "x")
	assert.EqualError(t, res.err, MsgErrAsMultiple)

	res = run(t, dir, "", "copy", "missing.txt")
	assert.Equal(t, errors.ErrFileNotFound, errors.GetErrorCode(res.err))

	res = run(t, dir, "", "copy", "templates")
	assert.Equal(t, errors.ErrFileIsDirectory, errors.GetErrorCode(res.err))
}

func TestRender(t *testing.T) {
	dir := setupWorkspace(t)
	testutil.CreateFile(t, dir, "greeting.hbs", "Hello, {{name}}! {{#if admin}}(admin){{/if}}")
	testutil.CreateFile(t, dir, "values.yaml", "name: Grace\nadmin: true\n")
	testutil.CreateFile(t, dir, "broken.hbs", "{{#if x}}never closed")
	testutil.CreateFile(t, dir, "config.yaml", "a: 1\n")

	t.Run("set_values", func(t *testing.T) {
		res := run(t, dir, "", "render", "greeting.hbs", "--set", "name=Ada")
		require.NoError(t, res.err)
		assert.Equal(t, "Hello, Ada! ", res.stdout)
	})

	t.Run("values_file_then_set_overrides", func(t *testing.T) {
		res := run(t, dir, "", "render", "greeting.hbs", "--values", "values.yaml", "--set", "name=Ada")
		require.NoError(t, res.err)
		assert.Equal(t, "Hello, Ada! (admin)", res.stdout)
	})

	t.Run("out_file", func(t *testing.T) {
		res := run(t, dir, "", "render", "greeting.hbs", "--values", "values.yaml", "--out", "out/greeting.txt")
		require.NoError(t, res.err)
		assert.Empty(t, res.stdout)
		testutil.AssertFileContent(t, filepath.Join(dir, "out", "greeting.txt"), "Hello, Grace! (admin)")
	})

	t.Run("not_a_template", func(t *testing.T) {
		res := run(t, dir, "", "render", "config.yaml")
		assert.Equal(t, errors.ErrFileIsNotATemplate, errors.GetErrorCode(res.err))
	})

	t.Run("engine_error_gets_template_scope", func(t *testing.T) {
		res := run(t, dir, "", "render", "broken.hbs")
		require.Error(t, res.err)
		assert.Equal(t, errors.ScopeTemplate, errors.GetErrorScope(res.err))
	})

	t.Run("bad_set", func(t *testing.T) {
		res := run(t, dir, "", "render", "greeting.hbs", "--set", "novalue")
		assert.EqualError(t, res.err, `invalid --set value "novalue", expected key=value`)
	})
}

func TestRenderWithConfiguredEngine(t *testing.T) {
	dir := setupWorkspace(t)
	testutil.CreateFile(t, dir, ".cfgkit.toml", "[template]\nengine = \"gotemplate\"\n")
	testutil.CreateFile(t, dir, "readme.tmpl", "# {{ .name | upper }}")

	res := run(t, dir, "", "render", "readme.tmpl", "--set", "name=cfgkit")
	require.NoError(t, res.err)
	assert.Equal(t, "# CFGKIT", res.stdout)
}

func TestFindUp(t *testing.T) {
	dir := setupWorkspace(t)
	home := filepath.Dir(dir)
	testutil.CreateFile(t, home, "package.json", "{}")
	deep := testutil.CreateDir(t, dir, "src/components")

	res := run(t, deep, "", "find-up", "package.json")
	require.NoError(t, res.err)
	assert.Equal(t, filepath.Join(home, "package.json")+"\n", res.stdout)

	res = run(t, deep, "", "find-up", "package.json", "--stop", dir)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "package.json not found")
}

func TestPathFlagsExpandHome(t *testing.T) {
	dir := setupWorkspace(t)
	home := filepath.Dir(dir)
	testutil.CreateFile(t, home, "package.json", "{}")
	testutil.CreateFile(t, dir, "templates/editorconfig", "root = true\n")
	testutil.CreateFile(t, home, "values.yaml", "name: Grace\n")
	testutil.CreateFile(t, dir, "greeting.hbs", "Hello, {{name}}!")
	deep := testutil.CreateDir(t, dir, "src/components")

	tests := []struct {
		name   string
		dir    string
		args   []string
		stdout string
		errMsg string
		file   string
	}{
		{
			name:   "find_up_stop",
			dir:    deep,
			args:   []string{"find-up", "package.json", "--stop", "~/project"},
			errMsg: "package.json not found",
		},
		{
			name:   "find_up_from",
			dir:    home,
			args:   []string{"find-up", "package.json", "--from", "~/project/src"},
			stdout: filepath.Join(home, "package.json") + "\n",
		},
		{
			name: "copy_dest",
			dir:  dir,
			args: []string{"copy", "templates/editorconfig", "--dest", "~/shared"},
			file: filepath.Join(home, "shared", "editorconfig"),
		},
		{
			name:   "render_values",
			dir:    dir,
			args:   []string{"render", "greeting.hbs", "--values", "~/values.yaml"},
			stdout: "Hello, Grace!",
		},
		{
			name: "render_out",
			dir:  dir,
			args: []string{"render", "greeting.hbs", "--set", "name=Ada", "--out", "~/greeting.txt"},
			file: filepath.Join(home, "greeting.txt"),
		},
		{
			name:   "working_directory",
			dir:    "~/project",
			args:   []string{"exists", "greeting.hbs"},
			stdout: "true\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.dir, "", tt.args...)
			if tt.errMsg != "" {
				require.Error(t, res.err)
				assert.Contains(t, res.err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, res.err)
			if tt.stdout != "" {
				assert.Equal(t, tt.stdout, res.stdout)
			}
			if tt.file != "" {
				assert.True(t, testutil.FileExists(t, tt.file))
			}
		})
	}
}

func TestExists(t *testing.T) {
	dir := setupWorkspace(t)
	testutil.CreateFile(t, dir, "file.txt", "x")

	tests := []struct {
		args     []string
		expected string
	}{
		{args: []string{"exists", "file.txt"}, expected: "true\n"},
		{args: []string{"exists", "file.txt", "--file"}, expected: "true\n"},
		{args: []string{"exists", "file.txt", "--dir"}, expected: "false\n"},
		{args: []string{"exists", ".", "--dir"}, expected: "true\n"},
		{args: []string{"exists", "nope"}, expected: "false\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, "_"), func(t *testing.T) {
			res := run(t, dir, "", tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.expected, res.stdout)
		})
	}

	res := run(t, dir, "", "exists", "file.txt", "--dir", "--file")
	assert.EqualError(t, res.err, MsgErrDirAndFile)
}

func TestVersionAndCompletion(t *testing.T) {
	dir := setupWorkspace(t)

	res := run(t, dir, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "cfgkit version dev")

	res = run(t, dir, "", "completion", "bash")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "cfgkit")
}

func TestNoCommand(t *testing.T) {
	dir := setupWorkspace(t)

	res := run(t, dir, "")
	assert.EqualError(t, res.err, MsgErrNoCommand)
	assert.Contains(t, res.stdout, "USAGE:")
}

func TestLogFileIsWritten(t *testing.T) {
	dir := setupWorkspace(t)

	res := run(t, dir, "", "-vv", "exists", "x")
	require.NoError(t, res.err)

	_, err := os.Stat(paths.LogFilePath())
	assert.NoError(t, err)
}

func TestParseData(t *testing.T) {
	got, err := parseData(format.Text, "  raw  ")
	require.NoError(t, err)
	assert.Equal(t, "  raw  ", got)

	got, err = parseData(format.JSON, "name: yaml-is-fine")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"name": "yaml-is-fine"}, got)

	got, err = parseData(format.TOML, "[server]\nport = 80\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"server": map[string]interface{}{"port": int64(80)}}, got)
}

func TestHelpTopics(t *testing.T) {
	setupWorkspace(t)

	tests := []struct {
		args     []string
		contains string
	}{
		{args: []string{"help", "topics"}, contains: "  merging\n"},
		{args: []string{"help", "merging"}, contains: "--replace-arrays"},
		{args: []string{"help", "--mode"}, contains: "replace  overwrite the file"},
		{args: []string{"help", "set"}, contains: MsgSetShort},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, "_"), func(t *testing.T) {
			cmd := NewRootCmd()
			var stdout bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetErr(&stdout)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Contains(t, stdout.String(), tt.contains)
		})
	}
}
