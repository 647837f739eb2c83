package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/term/internal/config"
	"github.com/robalobadob/wordle/apps/term/internal/daily"
	"github.com/robalobadob/wordle/apps/term/internal/game"
	"github.com/robalobadob/wordle/apps/term/internal/render"
	"github.com/robalobadob/wordle/apps/term/internal/words"
)

// Process exit codes besides the game outcomes (see game.Outcome.ExitCode).
const (
	exitUsage      = 1
	exitDictionary = 2
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "wordle:", err)
		os.Exit(exitUsage)
	}
	setupLogger(cfg.Log, os.Stderr)

	ui := render.Stdio(cfg.Game.Color)
	os.Exit(run(cfg, os.Args[1:], os.Stdin, ui, os.Stderr, time.Now()))
}

// run plays one session and returns the process exit code. now fixes the
// date used by -daily.
func run(cfg *config.Config, args []string, stdin io.Reader, ui game.UI, stderr io.Writer, now time.Time) int {
	opts, err := parseArgs(args, options{
		length:     cfg.Game.WordLength,
		maxGuesses: cfg.Game.MaxGuesses,
		dictionary: cfg.Game.Dictionary,
	})
	if err != nil {
		log.Debug().Err(err).Strs("args", args).Msg("rejected arguments")
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}

	dict, err := words.Load(context.Background(), opts.dictionary)
	if err != nil {
		log.Debug().Err(err).Str("dictionary", opts.dictionary).Msg("load dictionary")
		fmt.Fprintf(stderr, "wordle: dictionary file %q cannot be opened\n", opts.dictionary)
		return exitDictionary
	}

	answer, err := chooseAnswer(dict, opts, cfg.Game.DailySalt, now)
	if err != nil {
		log.Debug().Err(err).Int("length", opts.length).Msg("choose answer")
		fmt.Fprintf(stderr, "wordle: dictionary file %q has no %d letter words\n", opts.dictionary, opts.length)
		return exitDictionary
	}

	sess, err := game.NewSession(answer, opts.maxGuesses)
	if err != nil {
		log.Error().Err(err).Msg("new session")
		return exitDictionary
	}
	return game.Play(sess, dict, stdin, ui).ExitCode()
}

// chooseAnswer draws a random word of the requested length, or the word of
// the day when opts.daily is set.
func chooseAnswer(dict *words.Dictionary, opts options, salt string, now time.Time) (string, error) {
	if !opts.daily {
		return dict.PickRandom(opts.length)
	}
	w, err := daily.NewPicker(salt).Pick(dict.WordsOfLength(opts.length), now)
	if errors.Is(err, daily.ErrNoCandidates) {
		return "", fmt.Errorf("%w: %d", words.ErrNoWordsOfLength, opts.length)
	}
	return w, err
}

// setupLogger configures the global zerolog logger from LOG_LEVEL / LOG_FORMAT.
func setupLogger(c config.LogConfig, w io.Writer) {
	if lvl, err := zerolog.ParseLevel(c.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.Format == "json" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}
