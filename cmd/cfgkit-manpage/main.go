package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/cfgkit/cmd/cfgkit"
	"github.com/arthur-debert/cfgkit/internal/version"
)

// Writes the cfgkit man page to stdout, or one page per command into the
// directory given as the only argument.
func main() {
	rootCmd := cfgkit.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CFGKIT",
		Section: "1",
		Source:  "cfgkit " + version.Version,
		Manual:  "cfgkit manual",
	}

	var err error
	if len(os.Args) > 1 {
		if err = os.MkdirAll(os.Args[1], 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, os.Args[1])
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
