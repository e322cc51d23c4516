package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	eli "github.com/yekhlakov/eli-go"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run an eli source file",
	Long: `Read the given file as a single S-expression, evaluate it, and print
the result — or the error message, to stderr, if evaluation failed.

Examples:
  eli run script.eli
  eli run --no-color script.eli`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		exitWithError("cannot read %s: %v", filename, err)
		return err
	}

	interp := eli.New()
	result, errMsg := interp.Run(string(content))
	if errMsg != "" {
		fmt.Fprintln(os.Stderr, errMsg)
		os.Exit(1)
		return nil
	}

	fmt.Println(result)
	return nil
}
