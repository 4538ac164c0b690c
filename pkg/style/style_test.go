package style_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/cfgkit/pkg/errors"
	"github.com/arthur-debert/cfgkit/pkg/style"
	"github.com/stretchr/testify/assert"
)

func TestPlainRendererRenderError(t *testing.T) {
	r := style.NewPlainRenderer()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
		{
			name:     "plain_error",
			err:      stderrors.New("boom"),
			expected: "Error: boom",
		},
		{
			name: "core_error_with_details",
			err: errors.New(errors.ErrFileNotFound, "File not found: a.txt").
				WithDetail("path", "/work/a.txt"),
			expected: "🚨 core: [FILE_NOT_FOUND] File not found: a.txt\n  path: /work/a.txt",
		},
		{
			name: "template_scope",
			err: errors.New(errors.ErrFileIsNotATemplate, "File is not a template: a.yaml").
				WithScope(errors.ScopeTemplate),
			expected: "🧩 template: [FILE_IS_NOT_A_TEMPLATE] File is not a template: a.yaml",
		},
		{
			name: "tool_scope_sorted_details",
			err: errors.New(errors.ErrFileWrite, "Failed to write file").
				WithScope(errors.ScopeTool).
				WithDetail("path", "/p").
				WithDetail("format", "json"),
			expected: "🔧 tool: [FILE_WRITE_ERROR] Failed to write file\n  format: json\n  path: /p",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.RenderError(tt.err))
		})
	}
}

func TestTerminalRendererRenderError(t *testing.T) {
	r := style.NewTerminalRenderer()

	out := r.RenderError(errors.New(errors.ErrFileParse, "Unsupported format: ini").
		WithDetail("format", "ini"))
	assert.Contains(t, out, "🚨")
	assert.Contains(t, out, "core:")
	assert.Contains(t, out, "[FILE_PARSE_ERROR] Unsupported format: ini")
	assert.Contains(t, out, "format: ini")

	assert.Contains(t, r.RenderError(stderrors.New("boom")), "boom")
	assert.Empty(t, r.RenderError(nil))
}

func TestRenderSuccess(t *testing.T) {
	assert.Equal(t, "wrote a.json", style.NewPlainRenderer().RenderSuccess("wrote a.json"))
	assert.Contains(t, style.NewTerminalRenderer().RenderSuccess("wrote a.json"), "wrote a.json")
}

func TestScopeStyle(t *testing.T) {
	assert.Equal(t, style.ScopeStyle(errors.ScopeCore).GetForeground(), style.ScopeStyle(errors.Scope("other")).GetForeground())
	assert.NotEqual(t, style.ScopeStyle(errors.ScopeCore).GetForeground(), style.ScopeStyle(errors.ScopeTemplate).GetForeground())
	assert.True(t, style.ScopeStyle(errors.ScopeTool).GetBold())
}

func TestNewRendererForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, style.SupportsColor(&buf))
	assert.IsType(t, &style.PlainRenderer{}, style.NewRenderer(&buf))
}

func TestMarkup(t *testing.T) {
	assert.Equal(t, "Use cfgkit get to read a.json", style.Strip("Use [code]cfgkit get[/code] to read [path]a.json[/path]"))
	assert.Contains(t, style.Render("[bold]cfgkit[/bold] files"), "cfgkit")
	assert.NotContains(t, style.Render("[bold]cfgkit[/bold]"), "[bold]")
	assert.Equal(t, "no markup", style.Render("no markup"))
}
