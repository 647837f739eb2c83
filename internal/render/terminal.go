// Package render draws game feedback on a terminal.
//
// Correct letters are shown uppercase in green, present letters lowercase in
// yellow and absent letters as '-'. Colors are plain ANSI escapes, written
// through go-colorable so they also work on consoles without native support.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/term/internal/game"
)

const (
	red    = "\x1b[31m"
	green  = "\x1b[32m"
	yellow = "\x1b[33m"
	reset  = "\x1b[0m"

	blank = '-'
)

// Terminal implements game.UI over a pair of output streams.
type Terminal struct {
	out    io.Writer
	errOut io.Writer
	color  bool
}

var _ game.UI = (*Terminal)(nil)

// New returns a Terminal writing prompts and feedback to out and the loss
// message to errOut.
func New(out, errOut io.Writer, color bool) *Terminal {
	return &Terminal{out: out, errOut: errOut, color: color}
}

// Stdio returns a Terminal on the process's stdout/stderr. mode is one of
// "auto", "always" or "never"; auto enables colors when stdout is a terminal.
func Stdio(mode string) *Terminal {
	color := false
	switch mode {
	case "always":
		color = true
	case "auto":
		color = IsTerminal(os.Stdout)
	}
	return New(colorable.NewColorableStdout(), colorable.NewColorableStderr(), color)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (t *Terminal) paint(code, s string) string {
	if !t.color {
		return s
	}
	return code + s + reset
}

// Line formats one evaluated guess.
func (t *Terminal) Line(guess string, verdicts []game.Verdict) string {
	var b strings.Builder
	for i, v := range verdicts {
		c := guess[i]
		switch v {
		case game.Correct:
			b.WriteString(t.paint(green, strings.ToUpper(string(c))))
		case game.Present:
			b.WriteString(t.paint(yellow, strings.ToLower(string(c))))
		default:
			b.WriteByte(blank)
		}
	}
	return b.String()
}

func (t *Terminal) Welcome() {
	fmt.Fprintln(t.out, "Welcome to Terminal Wordle!")
}

func (t *Terminal) Prompt(length, remaining int) {
	if remaining == 1 {
		fmt.Fprintf(t.out, "Enter a %d letter word (last attempt):\n", length)
		return
	}
	fmt.Fprintf(t.out, "Enter a %d letter word (%d attempts remaining):\n", length, remaining)
}

func (t *Terminal) Invalid(err error) {
	fmt.Fprintln(t.out, err.Error())
}

func (t *Terminal) Feedback(guess string, verdicts []game.Verdict) {
	fmt.Fprintln(t.out, t.Line(guess, verdicts))
}

func (t *Terminal) Won() {
	fmt.Fprintln(t.out, t.paint(green, "Correct!"))
}

func (t *Terminal) Reveal(answer string) {
	fmt.Fprintln(t.errOut, t.paint(red, fmt.Sprintf("Bad luck - the word is %q.", answer)))
}
