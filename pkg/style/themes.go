package style

import (
	"github.com/arthur-debert/cfgkit/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

// Palette. Each color has a light and a dark terminal variant.
var (
	AccentColor  = lipgloss.AdaptiveColor{Light: "#0B6E99", Dark: "#5FB3D9"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#5C6370", Dark: "#9DA5B4"}
	SurfaceColor = lipgloss.AdaptiveColor{Light: "#EEF1F4", Dark: "#2A2D3A"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFB74D"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"}
)

// scopeColors tint the scope badge of an error
var scopeColors = map[errors.Scope]lipgloss.AdaptiveColor{
	errors.ScopeCore:     ErrorColor,
	errors.ScopeTool:     WarningColor,
	errors.ScopeTemplate: {Light: "#6A1B9A", Dark: "#BA68C8"},
}
