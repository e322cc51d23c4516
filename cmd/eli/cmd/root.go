/*
File    : eli/cmd/eli/cmd/root.go

Package cmd is the cobra command tree for the eli CLI: a thin front
door around the embeddable Interpreter, not part of the core language
spec (spec §1 scopes the process entry point out of the core, leaving
it to the host). It exists only so the interpreter can be exercised
from a terminal the way the teacher's own main/repl packages let Go-Mix
be exercised, without it being treated as anything the core depends on.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "eli",
	Short: "Embedded Lisp Interpreter",
	Long: `eli runs fragments of the embedded Lisp interpreter's S-expression
language: a small functional language meant to be linked into a host
application, exposed here as a standalone command for scripting and
exploration.`,
	Version: "0.1.0",
	// No subcommand given falls through to the REPL, so `eli` on its own
	// behaves like `eli repl`.
	RunE: startRepl,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
	})
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
