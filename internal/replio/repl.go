/*
File    : eli/internal/replio/repl.go

Package replio implements the interactive Read-Eval-Print Loop for the
`eli repl` subcommand, adapted from the teacher's repl package: a
chzyer/readline-backed input loop with fatih/color feedback, panic
recovery around each evaluated line, and a `.exit` escape hatch.

Unlike the teacher's REPL, there is no persistent evaluator state to
thread between lines beyond the one long-lived *eli.Interpreter — ELI's
only cross-line state is the global table `def` writes to, which
already lives inside the Interpreter.
*/
package replio

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	eli "github.com/yekhlakov/eli-go"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's display chrome; the Interpreter
// every line is run against is passed to Start.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
	Line    string
	NoColor bool
}

// New returns a Repl with the given display chrome. Colors are disabled
// by setting NoColor on the returned value, e.g. when stdout is not a
// terminal.
func New(banner, version, prompt, line string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt, Line: line}
}

func (r *Repl) printBanner(w io.Writer) {
	if r.NoColor {
		io.WriteString(w, r.Line+"\n"+r.Banner+"\n"+r.Line+"\n")
		io.WriteString(w, "eli "+r.Version+" -- type .exit to quit\n"+r.Line+"\n")
		return
	}
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintf(w, "eli %s -- type .exit to quit\n", r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop against interp until the user exits or input ends.
func (r *Repl) Start(interp *eli.Interpreter, w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl+D, readline.ErrInterrupt on Ctrl+C
			io.WriteString(w, "\n")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return nil
		}
		rl.SaveHistory(line)

		r.evalLine(interp, w, line)
	}
}

// evalLine runs one line with panic recovery, since a malformed script
// fragment should not bring down an interactive session.
func (r *Repl) evalLine(interp *eli.Interpreter, w io.Writer, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.printError(w, "panic: ")
		}
	}()

	result, errMsg := interp.Run(line)
	if errMsg != "" {
		r.printError(w, errMsg)
		return
	}
	if r.NoColor {
		io.WriteString(w, result+"\n")
		return
	}
	cyanColor.Fprintf(w, "%s\n", result)
}

func (r *Repl) printError(w io.Writer, msg string) {
	if r.NoColor {
		io.WriteString(w, "error: "+msg+"\n")
		return
	}
	redColor.Fprintf(w, "error: %s\n", msg)
}
