package style

import (
	"github.com/arthur-debert/cfgkit/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle   = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(AccentColor)
	BoldStyle    = lipgloss.NewStyle().Bold(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Background(SurfaceColor).
			Padding(0, 1)

	PathStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
)

// SuccessIndicator prefixes completion messages
var SuccessIndicator = SuccessStyle.Render("✓")

// ScopeIcons prefix errors by the party expected to fix them
var ScopeIcons = map[errors.Scope]string{
	errors.ScopeCore:     "🚨",
	errors.ScopeTool:     "🔧",
	errors.ScopeTemplate: "🧩",
}

// ScopeStyle returns the badge style of an error scope. Unknown scopes
// look like core ones.
func ScopeStyle(scope errors.Scope) lipgloss.Style {
	color, ok := scopeColors[scope]
	if !ok {
		color = scopeColors[errors.ScopeCore]
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// Indent pads every line of s by two spaces per level
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
