// Package assets carries the word list compiled into the binary, used when
// the dictionary source is exactly "embed:".
package assets

import (
	_ "embed"
	"errors"
	"strings"
)

//go:embed words.txt
var wordList string

// ErrEmpty is returned when the embedded list holds no entries.
var ErrEmpty = errors.New("assets: embedded word list is empty")

// WordList returns the embedded entries in file order. Blank lines and
// lines starting with '#' are dropped; entries are otherwise left raw.
func WordList() ([]string, error) {
	lines := strings.Split(strings.ReplaceAll(wordList, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" || l[0] == '#' {
			continue
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}
