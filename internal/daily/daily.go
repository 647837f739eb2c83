// Package daily picks the same answer for everyone on a given UTC date.
//
// The day's answer is candidates[HMAC-SHA256(salt, "YYYY-MM-DD") mod len],
// reading the first eight bytes of the digest as a big-endian integer. The
// candidate order must be stable (dictionary order) for the choice to be
// reproducible across runs.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"time"
)

// ErrNoCandidates is returned by Pick when the candidate list is empty.
var ErrNoCandidates = errors.New("daily: no candidate words")

const dateLayout = "2006-01-02"

// Picker chooses the word of the day for one salt.
type Picker struct {
	salt []byte
}

// NewPicker returns a Picker keyed by salt.
func NewPicker(salt string) Picker {
	return Picker{salt: []byte(salt)}
}

// Day returns the UTC calendar day of t, which is what the pick depends on.
func Day(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// Index returns the position in a list of n candidates for the day of t.
// It returns 0 when n is not positive.
func (p Picker) Index(t time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	return int(p.digest(Day(t)) % uint64(n))
}

// Pick returns the candidate for the day of t.
func (p Picker) Pick(candidates []string, t time.Time) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	return candidates[p.Index(t, len(candidates))], nil
}

func (p Picker) digest(day string) uint64 {
	mac := hmac.New(sha256.New, p.salt)
	mac.Write([]byte(day))
	return binary.BigEndian.Uint64(mac.Sum(nil)[:8])
}
