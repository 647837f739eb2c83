// internal/words/words.go
//
// Provides dictionary management for the game engine.
//
// Responsibilities:
//   - Load a dictionary from a word file, a SQLite database or the embedded list.
//   - Maintain an ordered list plus a set for quick membership lookups.
//   - Supply PickRandom, Contains and WordsOfLength.
//
// Sources (Load):
//   1. exactly "embed:"              → the word list compiled into the binary.
//   2. *.db, *.sqlite, *.sqlite3     → table `words`, column `word`.
//   3. anything else                 → plain text, one word per line.
//
// Normalization (every source):
//   • Trimmed and lowercased.
//   • Apostrophes removed, so possessives keep their "s" ("cat's" → "cats").
//   • Entries that are not all a–z afterwards are skipped.
//   • Duplicates keep their first position.
//
// A Dictionary is immutable after construction. Contains and WordsOfLength
// are safe for concurrent use; PickRandom serializes access to the random source.

package words

import (
	"bufio"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	// ErrSourceUnreadable is returned when a dictionary source cannot be opened or read.
	ErrSourceUnreadable = errors.New("words: dictionary source unreadable")
	// ErrNoWordsOfLength is returned by PickRandom when no entry has the requested length.
	ErrNoWordsOfLength = errors.New("words: no words of requested length")
)

// EmbeddedSource selects the word list compiled into the binary.
const EmbeddedSource = "embed:"

// Dictionary is an immutable, ordered set of lowercase words.
type Dictionary struct {
	list []string
	set  map[string]struct{}

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithSeed makes PickRandom deterministic.
func WithSeed(seed uint64) Option {
	return func(d *Dictionary) { d.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithRand supplies the random source used by PickRandom.
func WithRand(r *rand.Rand) Option {
	return func(d *Dictionary) { d.rng = r }
}

// New builds a dictionary from raw entries, applying the usual normalization.
func New(entries []string, opts ...Option) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		w, ok := Normalize(e)
		if !ok {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	for _, o := range opts {
		o(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewPCG(cryptoSeed(), cryptoSeed()))
	}
	return d
}

// Load reads a dictionary from source. See the package comment for the
// recognized source kinds.
func Load(ctx context.Context, source string, opts ...Option) (*Dictionary, error) {
	var (
		entries []string
		err     error
	)
	switch {
	case source == EmbeddedSource:
		entries, err = readEmbedded()
	case isSQLitePath(source):
		entries, err = readSQLite(ctx, source)
	default:
		entries, err = readWordFile(source)
	}
	if err != nil {
		return nil, err
	}

	d := New(entries, opts...)
	log.Debug().Str("source", source).Int("entries", len(entries)).Int("words", d.Len()).Msg("dictionary loaded")
	return d, nil
}

// readWordFile loads one entry per line from a file.
func readWordFile(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrSourceUnreadable)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrSourceUnreadable, path, err)
	}
	return out, nil
}

func isSQLitePath(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Normalize applies the dictionary normalization to a single entry and
// reports whether the result is a usable word.
func Normalize(entry string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(entry))
	w = strings.ReplaceAll(w, "'", "")
	if w == "" || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// PickRandom returns a uniformly chosen word of the given length.
func (d *Dictionary) PickRandom(length int) (string, error) {
	candidates := d.WordsOfLength(length)
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %d", ErrNoWordsOfLength, length)
	}
	d.mu.Lock()
	i := d.rng.IntN(len(candidates))
	d.mu.Unlock()
	return candidates[i], nil
}

// Contains reports whether w is in the dictionary (exact match).
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[w]
	return ok
}

// WordsOfLength returns the words of the given length in dictionary order.
func (d *Dictionary) WordsOfLength(length int) []string {
	var out []string
	for _, w := range d.list {
		if len(w) == length {
			out = append(out, w)
		}
	}
	return out
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.list) }

func cryptoSeed() uint64 {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}
