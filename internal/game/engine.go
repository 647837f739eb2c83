// internal/game/engine.go
//
// Core game engine for a single terminal session.
// Responsibilities:
//   - Create sessions from an answer and an attempt budget.
//   - Validate and apply guesses (length, alphabetic, dictionary membership).
//   - Score guesses using the classic two-pass Wordle algorithm.
//   - Track state transitions: in progress → won / lost (exhausted or input ended).
//
// Notes:
//   - The answer is chosen by the caller (see the words and daily packages).
//   - Invalid guesses never consume an attempt.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrSessionOver is returned when a guess is applied to a finished session.
	ErrSessionOver = errors.New("game: session is over")
	// ErrBadSession is returned by NewSession for an unusable answer or budget.
	ErrBadSession = errors.New("game: invalid session parameters")
)

// NewSession constructs a session in progress with the full attempt budget.
func NewSession(answer string, maxGuesses int) (*Session, error) {
	if maxGuesses < 1 {
		return nil, fmt.Errorf("%w: max guesses %d", ErrBadSession, maxGuesses)
	}
	if answer == "" || !isLowerAlpha(answer) {
		return nil, fmt.Errorf("%w: answer %q", ErrBadSession, answer)
	}
	return &Session{
		ID:         uuid.NewString(),
		Answer:     answer,
		WordLength: len(answer),
		MaxGuesses: maxGuesses,
		Remaining:  maxGuesses,
		Outcome:    InProgress,
		Guesses:    []string{},
	}, nil
}

// ApplyGuess validates and scores a raw guess, mutating the session state.
// Returns the per-letter verdicts or an error.
//
// A *ValidationError leaves the session untouched so the turn can be replayed.
//
// State transitions:
//   - Guess equals the answer → Won.
//   - Otherwise Remaining is decremented; at zero → LostExhausted.
func (s *Session) ApplyGuess(raw string, lex Lexicon) ([]Verdict, error) {
	if s.Outcome.Finished() {
		return nil, ErrSessionOver
	}
	guess, err := Validate(raw, s.WordLength, lex)
	if err != nil {
		return nil, err
	}
	s.Guesses = append(s.Guesses, guess)

	if guess == s.Answer {
		s.Outcome = Won
		return allCorrect(s.WordLength), nil
	}

	verdicts := Evaluate(guess, s.Answer, s.WordLength)
	s.Remaining--
	if s.Remaining <= 0 {
		s.Remaining = 0
		s.Outcome = LostExhausted
	}
	return verdicts, nil
}

// EndInput records that the input source has no more guesses. An in-progress
// session ends as LostEarlyTermination whatever its remaining budget.
func (s *Session) EndInput() {
	if s.Outcome.Finished() {
		return
	}
	s.Outcome = LostEarlyTermination
}

// Evaluate implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (unmatched) answer letters by letter index.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Absent.
//
// guess and answer must both be length lowercase letters; anything else is a
// caller bug and panics.
func Evaluate(guess, answer string, length int) []Verdict {
	if len(guess) != length || len(answer) != length {
		panic(fmt.Sprintf("game: evaluate %q against %q with length %d", guess, answer, length))
	}
	res := make([]Verdict, length)

	// Letter frequency for the unmatched answer positions (a–z).
	var counts [26]int

	for i := 0; i < length; i++ {
		if guess[i] == answer[i] {
			res[i] = Correct
		} else {
			counts[idx(answer[i])]++
		}
	}

	for i := 0; i < length; i++ {
		if res[i] == Correct {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			res[i] = Present
			counts[j]--
		} else {
			res[i] = Absent
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(b byte) int { return int(b - 'a') }

// isLowerAlpha checks that a string consists only of lowercase a–z.
func isLowerAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func allCorrect(n int) []Verdict {
	v := make([]Verdict, n)
	for i := range v {
		v[i] = Correct
	}
	return v
}
