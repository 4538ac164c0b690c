package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/cfgkit/cmd/cfgkit"
	"github.com/arthur-debert/cfgkit/pkg/style"
)

func main() {
	rootCmd := cfgkit.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.NewRenderer(os.Stderr).RenderError(err))
		os.Exit(1)
	}
}
