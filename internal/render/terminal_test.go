package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/term/internal/game"
)

func TestLine(t *testing.T) {
	t.Parallel()

	v := game.Evaluate("allee", "label", 5)

	plain := New(nil, nil, false)
	assert.Equal(t, "allE-", plain.Line("allee", v))

	colored := New(nil, nil, true)
	assert.Equal(t,
		"\x1b[33ma\x1b[0m\x1b[33ml\x1b[0m\x1b[33ml\x1b[0m\x1b[32mE\x1b[0m-",
		colored.Line("allee", v))
}

func TestTerminal_Messages(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	term := New(&out, &errOut, false)

	term.Welcome()
	term.Prompt(5, 6)
	term.Prompt(5, 1)
	term.Invalid(errors.New("Words must be 5 letters long - try again."))
	term.Feedback("crane", game.Evaluate("crane", "crate", 5))
	term.Won()
	term.Reveal("crate")

	assert.Equal(t, "Welcome to Terminal Wordle!\n"+
		"Enter a 5 letter word (6 attempts remaining):\n"+
		"Enter a 5 letter word (last attempt):\n"+
		"Words must be 5 letters long - try again.\n"+
		"CRA-E\n"+
		"Correct!\n", out.String())
	assert.Equal(t, "Bad luck - the word is \"crate\".\n", errOut.String())
}

func TestTerminal_ColoredReveal(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	New(&out, &errOut, true).Reveal("crate")

	assert.Equal(t, "\x1b[31mBad luck - the word is \"crate\".\x1b[0m\n", errOut.String())
	assert.Empty(t, out.String())
}
