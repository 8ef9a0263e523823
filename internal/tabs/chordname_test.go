package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChordName(t *testing.T) {
	tests := []struct {
		name       string
		wantRoot   string
		wantAbbrev string
	}{
		{"C", "C", "major"},
		{"Am", "A", "m"},
		{"F#m7b5", "F#", "m7b5"},
		{"Bb", "Bb", "major"},
		{"bbmaj7", "Bb", "maj7"},
		{"E♭7", "Eb", "7"},
		{" G 69 ", "G", "69"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, abbrev, err := ParseChordName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoot, root)
			assert.Equal(t, tt.wantAbbrev, abbrev)
		})
	}

	for _, bad := range []string{"", "  ", "H7", "7"} {
		_, _, err := ParseChordName(bad)
		assert.Error(t, err, "ParseChordName(%q)", bad)
	}
}
