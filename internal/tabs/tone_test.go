package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Tone
		ok    bool
	}{
		{"natural", "C", 0, true},
		{"sharp", "C#", 1, true},
		{"flat", "Db", 1, true},
		{"lower case letter", "f#", 6, true},
		{"unicode flat", "B♭", 10, true},
		{"surrounding space", "  G ", 7, true},
		{"enharmonic B sharp", "B#", 0, true},
		{"enharmonic F flat", "Fb", 4, true},
		{"empty", "", 0, false},
		{"mid typing accidental", "#", 0, false},
		{"not a pitch", "H", 0, false},
		{"double sharp", "C##", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveTone(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	c, _ := ResolveTone("C")
	d, _ := ResolveTone("D")
	a, _ := ResolveTone("A")

	assert.Equal(t, 0, Distance(c, c))
	assert.Equal(t, 2, Distance(c, d))
	assert.Equal(t, 10, Distance(d, c), "distance only moves up the neck")
	assert.Equal(t, 3, Distance(a, c))
}

func TestToneName(t *testing.T) {
	bb, _ := ResolveTone("Bb")
	assert.Equal(t, "A#", bb.Name())
	assert.Equal(t, "C", Tone(12).Name())
}
