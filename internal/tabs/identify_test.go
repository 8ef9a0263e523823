package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentify(t *testing.T) {
	d := MustDefault()

	tests := []struct {
		pattern string
		want    []Match
	}{
		{"x32010", []Match{{Root: "C", Type: "major", Shape: ShapeC}}},
		{"022000", []Match{{Root: "E", Type: "minor", Shape: ShapeE}}},
		{"x54232", []Match{{Root: "D", Type: "major", Shape: ShapeC}}},
		{"355433", []Match{{Root: "G", Type: "major", Shape: ShapeE}}},
		{"fhhgff", []Match{{Root: "G", Type: "major", Shape: ShapeE, Octaves: 1}}},
		{"xxx000", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := ParsePattern(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Identify(p))
		})
	}
}

func TestIdentifyFindsGeneratedFingerings(t *testing.T) {
	d := MustDefault()

	for _, typ := range d.Types() {
		for _, shape := range d.Shapes(typ) {
			for _, root := range []string{"C", "F#", "Bb"} {
				req := Request{Root: root, Type: string(typ), Shape: string(shape), Position: "3"}
				f := d.Generate(req)
				require.True(t, f.Valid(), "%+v", req)

				want, _ := ResolveTone(root)
				found := false
				for _, m := range d.Identify(f.Frets()) {
					if m.Type == typ && m.Shape == shape && m.Root == want.Name() {
						found = true
					}
				}
				assert.True(t, found, "%+v not identified from %s", req, f.Pattern())
			}
		}
	}
}
