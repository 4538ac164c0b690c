package cfgkit

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/cfgkit/pkg/cobrax/topics"
	"github.com/arthur-debert/cfgkit/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help
var helpFiles embed.FS

// installHelpTopics adds the embedded help topics to the help command.
// Markdown topics are rendered with glamour on color terminals.
func installHelpTopics(rootCmd *cobra.Command) {
	source, err := fs.Sub(helpFiles, "help")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if style.SupportsColor(os.Stdout) {
		renderer = topics.NewGlamourRenderer()
	}

	if _, err := topics.Install(rootCmd, source, topics.Options{Renderer: renderer}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}
