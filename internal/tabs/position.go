package tabs

import (
	"math"
	"strings"
)

// octave is the fret distance between a string's note and its octave
const octave = 12

// MaxPosition is the highest minimum fret a request may ask for. It is the
// last fret the pattern notation can write.
const MaxPosition = maxPatternFret

// ParsePosition reads the minimum fret of a request from its leading integer,
// so "5th" and "7fr" are 5 and 7 and "2.5" is 2. Input without leading
// digits, negative positions and positions above MaxPosition all mean 0.
func ParsePosition(position string) int {
	s := strings.TrimSpace(position)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > MaxPosition {
			return 0
		}
	}
	if negative {
		return 0
	}
	return n
}

// Normalize raises each fingering by whole octaves until its lowest played
// fret reaches minFret. Fingerings with nothing played pass through.
// The input slice and its fingerings are not modified.
func Normalize(fingerings []Fingering, minFret int) []Fingering {
	out := make([]Fingering, len(fingerings))
	for i, f := range fingerings {
		out[i] = f.AtPosition(minFret)
	}
	return out
}

// AtPosition returns f moved up by octaves so its lowest played fret is at
// least minFret. The shape is kept intact, so the result can land well above
// minFret (a chord starting on fret 2 asked for position 5 starts on 14).
// A fingering whose frets would overflow int is returned unchanged.
func (f Fingering) AtPosition(minFret int) Fingering {
	lowest, ok := f.MinFret()
	if !ok || lowest >= minFret {
		return f
	}
	gap := minFret - lowest
	if gap < 0 {
		return f
	}

	octaves := gap / octave
	if gap%octave != 0 {
		octaves++
	}
	if octaves > math.MaxInt/octave {
		return f
	}
	shift := octaves * octave
	for _, slot := range f {
		if slot.Played && slot.Fret > math.MaxInt-shift {
			return f
		}
	}

	for i := range f {
		if f[i].Played {
			f[i].Fret += shift
		}
	}
	return f
}
