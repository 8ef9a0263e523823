package tabs

import "strings"

// Tone is a pitch class in the range 0..11.
//
// For a chord root it is the absolute pitch class with C = 0. For a string
// slot in a template or fingering it is the interval class of that string's
// note above the chord root, so it does not change when a chord is transposed.
type Tone int

// Map of pitch names (letter plus accidental) to pitch classes
var pitchTones = map[string]Tone{
	"C": 0, "B#": 0,
	"C#": 1, "Db": 1,
	"D":  2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G":  7,
	"G#": 8, "Ab": 8,
	"A":  9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

// sharpNames spells each pitch class the way the chordserver keys do.
var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// ResolveTone converts a pitch name like "C", "f#" or "Bb" to its pitch class.
// The second result is false for anything outside the fixed enumeration,
// including the empty string.
func ResolveTone(name string) (Tone, bool) {
	name = normalizePitch(name)
	if name == "" {
		return 0, false
	}
	tone, ok := pitchTones[name]
	return tone, ok
}

// normalizePitch uppercases the letter and folds unicode accidentals
func normalizePitch(name string) string {
	name = strings.TrimSpace(name)
	name = strings.NewReplacer("♯", "#", "♭", "b").Replace(name)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Name returns the sharp spelling of a pitch class.
func (t Tone) Name() string {
	return sharpNames[mod12(int(t))]
}

// Distance is the number of semitones to move up from one pitch class to
// reach another, always in [0, 11].
func Distance(from, to Tone) int {
	return mod12(int(to) - int(from))
}

func mod12(n int) int {
	n %= 12
	if n < 0 {
		n += 12
	}
	return n
}
