package tabs

import (
	"fmt"
	"strings"
)

// ParseChordName splits a chord name like "F#m7" into its root ("F#") and
// type abbreviation ("m7"). A bare root is a major chord.
func ParseChordName(name string) (root, abbrev string, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("empty chord name")
	}

	letter := name[0]
	if !((letter >= 'A' && letter <= 'G') || (letter >= 'a' && letter <= 'g')) {
		return "", "", fmt.Errorf("chord name %q does not start with a note letter", name)
	}

	// Keep one accidental with the root
	rootLen := 1
	if len(name) > 1 && (name[1] == '#' || name[1] == 'b') {
		rootLen = 2
	} else if strings.HasPrefix(name[1:], "♯") || strings.HasPrefix(name[1:], "♭") {
		rootLen = 1 + len("♯")
	}

	root = name[:rootLen]
	abbrev = strings.TrimSpace(name[rootLen:])
	if abbrev == "" {
		abbrev = string(majorType)
	}
	return normalizePitch(root), abbrev, nil
}

// majorType is the dictionary key a bare chord name resolves to
const majorType ChordType = "major"
