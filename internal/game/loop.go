// internal/game/loop.go
//
// Line-driven game loop.
// Responsibilities:
//   - Prompt, read one line, validate, score and report until the session ends.
//   - Map end of input to LostEarlyTermination and a spent budget to LostExhausted.
//   - Reveal the answer on every loss.
//
// Play never fails: read errors are treated as end of input.

package game

import (
	"bufio"
	"errors"
	"io"

	"github.com/rs/zerolog/log"
)

// Play drives a session to completion, one line of input per turn.
//
// End of input before a line is read ends the session as LostEarlyTermination.
// A final line without a terminator still counts as a guess. Rejected guesses
// are reported through ui.Invalid and the same turn is asked again.
func Play(s *Session, lex Lexicon, in io.Reader, ui UI) Outcome {
	r := bufio.NewReader(in)
	ui.Welcome()
	log.Debug().Str("session", s.ID).Int("length", s.WordLength).Int("max", s.MaxGuesses).Msg("session started")

	for !s.Outcome.Finished() {
		ui.Prompt(s.WordLength, s.Remaining)

		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			log.Warn().Err(err).Str("session", s.ID).Msg("read guess")
		}
		if err != nil && line == "" {
			s.EndInput()
			break
		}

		verdicts, aerr := s.ApplyGuess(line, lex)
		var verr *ValidationError
		switch {
		case errors.As(aerr, &verr):
			ui.Invalid(verr)
			continue
		case aerr != nil:
			log.Error().Err(aerr).Str("session", s.ID).Msg("apply guess")
			s.EndInput()
			continue
		}

		log.Debug().Str("session", s.ID).Int("remaining", s.Remaining).Msg("guess applied")
		if s.Outcome != Won {
			ui.Feedback(s.Guesses[len(s.Guesses)-1], verdicts)
		}
	}

	switch s.Outcome {
	case Won:
		ui.Won()
	default:
		ui.Reveal(s.Answer)
	}
	log.Debug().Str("session", s.ID).Stringer("outcome", s.Outcome).Msg("session finished")
	return s.Outcome
}
