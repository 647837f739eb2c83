// internal/game/validate.go
//
// Guess validation for a session.
// Checks run in a fixed order and the first failure wins:
//   1. length (in characters, after stripping the line ending)
//   2. letters only (ASCII a–z, either case)
//   3. dictionary membership (after lowercasing)
//
// Each failure is a *ValidationError wrapping one of the Err* sentinels,
// and its Error text is the message shown to the player.

package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation failure kinds. Match with errors.Is on the error Validate returns.
var (
	ErrWrongLength     = errors.New("wrong length")
	ErrNonAlphabetic   = errors.New("non-alphabetic")
	ErrNotInDictionary = errors.New("not in dictionary")
)

// ValidationError explains why a raw guess was rejected. Error() is the
// message shown to the player.
type ValidationError struct {
	Kind   error
	Input  string
	Length int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrWrongLength:
		return fmt.Sprintf("Words must be %d letters long - try again.", e.Length)
	case ErrNonAlphabetic:
		return "Words must contain only letters - try again."
	case ErrNotInDictionary:
		return "Word not found in the dictionary - try again."
	}
	return fmt.Sprintf("invalid guess %q", e.Input)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

// Validate turns one line of player input into a lowercase guess.
// Checks run in order and stop at the first failure: length, letters only,
// dictionary membership.
func Validate(raw string, length int, lex Lexicon) (string, error) {
	s := stripLineEnd(raw)

	if utf8.RuneCountInString(s) != length {
		return "", &ValidationError{Kind: ErrWrongLength, Input: s, Length: length}
	}
	for i := 0; i < len(s); i++ {
		if !isASCIILetter(s[i]) {
			return "", &ValidationError{Kind: ErrNonAlphabetic, Input: s, Length: length}
		}
	}

	word := strings.ToLower(s)
	if !lex.Contains(word) {
		return "", &ValidationError{Kind: ErrNotInDictionary, Input: word, Length: length}
	}
	return word, nil
}

// stripLineEnd removes one trailing "\n" or "\r\n".
func stripLineEnd(s string) string {
	if strings.HasSuffix(s, "\n") {
		s = s[:len(s)-1]
		s = strings.TrimSuffix(s, "\r")
	}
	return s
}

func isASCIILetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
