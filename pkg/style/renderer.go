package style

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/cfgkit/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Renderer formats command results for an output stream
type Renderer interface {
	RenderError(err error) string
	RenderSuccess(message string) string
}

// NewRenderer picks a TerminalRenderer when w is a color-capable terminal
// and a PlainRenderer otherwise. NO_COLOR disables color.
func NewRenderer(w io.Writer) Renderer {
	if SupportsColor(w) {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// SupportsColor reports whether w is a terminal that should receive colored
// output
func SupportsColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
}

// scopeHeader is "<icon> <scope>:" for the scope of err
func scopeHeader(err error) (icon string, scope errors.Scope) {
	scope = errors.GetErrorScope(err)
	icon, ok := ScopeIcons[scope]
	if !ok {
		icon = ScopeIcons[errors.ScopeCore]
	}
	return icon, scope
}

func sortedDetails(err error) []string {
	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, details[k]))
	}
	return lines
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderError renders an error with its scope badge and details
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	if _, ok := errors.AsFilesError(err); !ok {
		return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, ErrorStyle.Render(err.Error()))
	}

	icon, scope := scopeHeader(err)
	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s %s %s",
		icon,
		ScopeStyle(scope).Render(string(scope)+":"),
		ErrorStyle.Render(err.Error())))

	for _, line := range sortedDetails(err) {
		result.WriteString("\n" + Indent(MutedStyle.Render(line), 1))
	}
	return result.String()
}

// RenderSuccess renders a completion message
func (r *TerminalRenderer) RenderSuccess(message string) string {
	return fmt.Sprintf("%s %s", SuccessIndicator, message)
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	if _, ok := errors.AsFilesError(err); !ok {
		return fmt.Sprintf("Error: %s", err.Error())
	}

	icon, scope := scopeHeader(err)
	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s %s: %s", icon, scope, err.Error()))
	for _, line := range sortedDetails(err) {
		result.WriteString("\n  " + line)
	}
	return result.String()
}

// RenderSuccess renders a plain completion message
func (r *PlainRenderer) RenderSuccess(message string) string {
	return message
}
