package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/robalobadob/wordle/apps/term/internal/config"
)

const usage = "Usage: wordle [-len word-length] [-max max-guesses] [-daily] [dictionary]"

var (
	errUsage     = errors.New("bad arguments")
	errDuplicate = errors.New("flag given more than once")
)

// options is what one invocation asks for; zero fields are filled from config.
type options struct {
	length     int
	maxGuesses int
	dictionary string
	daily      bool
}

// boundedInt is a flag.Value accepting config.MinSetting..config.MaxSetting once.
type boundedInt struct {
	v   *int
	set bool
}

func (b *boundedInt) String() string {
	if b == nil || b.v == nil {
		return ""
	}
	return strconv.Itoa(*b.v)
}

func (b *boundedInt) Set(s string) error {
	if b.set {
		return errDuplicate
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if !config.InRange(n) {
		return fmt.Errorf("%d out of range %d..%d", n, config.MinSetting, config.MaxSetting)
	}
	*b.v = n
	b.set = true
	return nil
}

// onceBool is a boolean flag that may appear at most once.
type onceBool struct {
	v   *bool
	set bool
}

func (b *onceBool) String() string {
	if b == nil || b.v == nil {
		return "false"
	}
	return strconv.FormatBool(*b.v)
}

func (b *onceBool) Set(s string) error {
	if b.set {
		return errDuplicate
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*b.v = v
	b.set = true
	return nil
}

func (b *onceBool) IsBoolFlag() bool { return true }

// parseArgs parses flags and at most one dictionary path, in any order.
// Every failure wraps errUsage.
func parseArgs(args []string, defaults options) (options, error) {
	opts := defaults

	fs := flag.NewFlagSet("wordle", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&boundedInt{v: &opts.length}, "len", "word length")
	fs.Var(&boundedInt{v: &opts.maxGuesses}, "max", "maximum guesses")
	fs.Var(&onceBool{v: &opts.daily}, "daily", "play the word of the day")

	haveDict := false
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return defaults, fmt.Errorf("%w: %w", errUsage, err)
		}
		if fs.NArg() == 0 {
			break
		}
		if haveDict {
			return defaults, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
		}
		opts.dictionary = fs.Arg(0)
		haveDict = true
		rest = fs.Args()[1:]
	}
	return opts, nil
}
