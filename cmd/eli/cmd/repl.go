package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	eli "github.com/yekhlakov/eli-go"
	"github.com/yekhlakov/eli-go/internal/replio"
)

var prompt string

const banner = `   ___  _     ___
  / _ \| |   |_ _|
 | |_| | |    | |
 |  _  | |___ | |
 |_| |_|_____|___|`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive eli session",
	RunE:  startRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&prompt, "prompt", "eli> ", "REPL prompt string")
}

func startRepl(_ *cobra.Command, _ []string) error {
	r := replio.New(banner, rootCmd.Version, prompt, "----------------------------------------")
	r.NoColor = noColor || !isatty.IsTerminal(os.Stdout.Fd())

	interp := eli.New()
	return r.Start(interp, os.Stdout)
}
