package cfgkit

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/cfgkit/pkg/style"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !style.SupportsColor(os.Stdout) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// formatMarkup renders help markup, or strips it when output is not a terminal
func formatMarkup(s string) string {
	if !style.SupportsColor(os.Stdout) {
		return style.Strip(s)
	}
	return style.Render(s)
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}
