// internal/game/types.go
//
// Core type definitions for the terminal game engine.
// Defines:
//   - Verdict: per-letter result of a guess (correct/present/absent).
//   - Outcome: lifecycle state of a session and its process exit code.
//   - Session: state for a single in-progress or finished game.
//   - Lexicon / UI: the collaborators the engine consumes.

package game

// Verdict represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the answer at the same position.
//   - "present": letter exists in the answer but in a different position.
//   - "absent":  letter has no unmatched occurrence left in the answer.
type Verdict string

const (
	Correct Verdict = "correct"
	Present Verdict = "present"
	Absent  Verdict = "absent"
)

// Word length bounds accepted for a session.
const (
	MinWordLength = 3
	MaxWordLength = 9
)

// Outcome is the lifecycle state of a session. It leaves InProgress exactly once.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	LostExhausted
	LostEarlyTermination
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case LostExhausted:
		return "lost_exhausted"
	case LostEarlyTermination:
		return "lost_early_termination"
	}
	return "unknown"
}

// Finished reports whether o is a terminal state.
func (o Outcome) Finished() bool { return o != InProgress }

// ExitCode maps a terminal outcome to the process exit status:
// 0 won, 1 input ended early, 3 guesses exhausted.
func (o Outcome) ExitCode() int {
	switch o {
	case Won:
		return 0
	case LostEarlyTermination:
		return 1
	case LostExhausted:
		return 3
	}
	return 1
}

// Session holds the state of a single game from answer selection to outcome.
type Session struct {
	ID         string   // Unique session identifier (UUID), used in logs.
	Answer     string   // The solution word (always lowercase).
	WordLength int      // Number of letters per word.
	MaxGuesses int      // Attempt budget the session started with.
	Remaining  int      // Attempts left; only incorrect valid guesses consume one.
	Outcome    Outcome  // InProgress until the session ends.
	Guesses    []string // Validated guesses made so far (lowercased).
}

// Lexicon is the membership view of a dictionary the validator needs.
type Lexicon interface {
	Contains(word string) bool
}

// UI receives everything the game loop shows to the player.
type UI interface {
	Welcome()
	Prompt(length, remaining int)
	Invalid(err error)
	Feedback(guess string, verdicts []Verdict)
	Won()
	Reveal(answer string)
}
