package tabs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is returned by ParsePattern for malformed fret patterns.
var ErrInvalidPattern = errors.New("invalid fret pattern")

// maxPatternFret is the highest fret the one-character-per-string notation
// can hold ('z').
const maxPatternFret = 35

// encodeFret writes a fret as a single character:
// '0'-'9' for frets 0-9, 'a'-'z' for frets 10 and above.
func encodeFret(fret int) (byte, bool) {
	switch {
	case fret >= 0 && fret <= 9:
		return byte('0' + fret), true
	case fret >= 10 && fret <= maxPatternFret:
		return byte('a' + fret - 10), true
	}
	return 0, false
}

func decodeFret(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	}
	return 0, false
}

// Pattern renders the frets low E first, e.g. "x32010" for an open C.
// Frets that do not fit one character are written as '?'.
func (f Fingering) Pattern() string {
	var b strings.Builder
	for _, slot := range f {
		if !slot.Played {
			b.WriteByte('x')
			continue
		}
		c, ok := encodeFret(slot.Fret)
		if !ok {
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// FretPattern is a parsed fret pattern: the played/unplayed layout and frets
// of each string. Tones are unknown.
type FretPattern [NumStrings]struct {
	Fret   int
	Played bool
}

// ParsePattern parses the notation written by Pattern. 'X' is accepted for
// unplayed strings as well as 'x'.
func ParsePattern(s string) (FretPattern, error) {
	var p FretPattern
	s = strings.TrimSpace(s)
	if len(s) != NumStrings {
		return p, fmt.Errorf("%w: %q has %d strings, want %d", ErrInvalidPattern, s, len(s), NumStrings)
	}
	for i := 0; i < NumStrings; i++ {
		c := s[i]
		if c == 'x' || c == 'X' {
			continue
		}
		fret, ok := decodeFret(c)
		if !ok {
			return p, fmt.Errorf("%w: %q at string %s", ErrInvalidPattern, c, Strings[i])
		}
		p[i].Fret = fret
		p[i].Played = true
	}
	return p, nil
}

// Frets drops the tones of f.
func (f Fingering) Frets() FretPattern {
	var p FretPattern
	for i, slot := range f {
		p[i].Fret = slot.Fret
		p[i].Played = slot.Played
	}
	return p
}
