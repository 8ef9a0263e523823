package tabs

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDictionary(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 1, d.Version())
	assert.Len(t, d.Types(), 13)
	assert.True(t, slices.IsSorted(d.Types()), "types are listed in name order")
	assert.Equal(t, []Shape{ShapeC, ShapeA, ShapeG, ShapeE, ShapeD}, d.Shapes("major"))
	assert.Equal(t, []Shape{ShapeC, ShapeA, ShapeG, ShapeD}, d.Shapes("half diminished"))

	// Every played slot keeps the fret/tone pairing
	for _, typ := range d.Types() {
		for _, shape := range d.Shapes(typ) {
			for _, tmpl := range d.Templates(typ, shape) {
				assert.Equal(t, shape, tmpl.Shape)
				assert.True(t, Fingering(tmpl.Slots).Valid(), "%s %s has no played string", typ, shape)
			}
		}
	}
}

func TestResolveType(t *testing.T) {
	d := MustDefault()

	tests := []struct {
		abbrev string
		want   ChordType
		ok     bool
	}{
		{"major", "major", true},
		{"maj", "major", true},
		{"M", "major", true},
		{"m", "minor", true},
		{"7", "dominate 7th", true},
		{"maj7", "major 7th", true},
		{"M7", "major 7th", true},
		{"m7", "minor 7th", true},
		{"m7b5", "half diminished", true},
		{"dim", "diminished", true},
		{"9", "dominate 9th", true},
		{"m9", "minor 9th", true},
		{"6/9", "69", true},
		{"7#9", "7#9", true},
		{"", "", false},
		{"m7b", "", false},
		{"sus4", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.abbrev, func(t *testing.T) {
			got, ok := d.ResolveType(tt.abbrev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDictionaryRejectsMalformedEntries(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `{`},
		{"no types", `{"version": 1, "types": {}}`},
		{"unknown shape", `{"types": {"major": {"shapes": {"F": [{"frets": [0,0,0,0,0,0], "tones": [0,0,0,0,0,0]}]}}}}`},
		{"short record", `{"types": {"major": {"shapes": {"C": [{"frets": [0,0,0], "tones": [0,0,0]}]}}}}`},
		{"sentinel mismatch", `{"types": {"major": {"shapes": {"C": [{"frets": ["X",3,2,0,1,0], "tones": [0,0,4,7,0,4]}]}}}}`},
		{"tone out of range", `{"types": {"major": {"shapes": {"C": [{"frets": ["X",3,2,0,1,0], "tones": ["X",12,4,7,0,4]}]}}}}`},
		{"negative fret", `{"types": {"major": {"shapes": {"C": [{"frets": ["X",-1,2,0,1,0], "tones": ["X",0,4,7,0,4]}]}}}}`},
		{"nothing played", `{"types": {"major": {"shapes": {"C": [{"frets": ["X","X","X","X","X","X"], "tones": ["X","X","X","X","X","X"]}]}}}}`},
		{"bad sentinel", `{"types": {"major": {"shapes": {"C": [{"frets": ["-",3,2,0,1,0], "tones": ["X",0,4,7,0,4]}]}}}}`},
		{"alias collides with type", `{"types": {
			"major": {"aliases": ["minor"], "shapes": {}},
			"minor": {"shapes": {}}}}`},
		{"alias collides with alias", `{"types": {
			"major": {"aliases": ["M"], "shapes": {}},
			"major 7th": {"aliases": ["M"], "shapes": {}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDictionary([]byte(tt.json))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDictionary), "got %v", err)
		})
	}
}

func TestDictionaryFileRoundTrip(t *testing.T) {
	d := MustDefault()

	rebuilt, err := NewDictionary(d.File())
	require.NoError(t, err)

	assert.Equal(t, d.Types(), rebuilt.Types())
	for _, typ := range d.Types() {
		assert.ElementsMatch(t, d.Aliases(typ), rebuilt.Aliases(typ))
		for _, shape := range FallbackOrder {
			assert.Equal(t, d.Templates(typ, shape), rebuilt.Templates(typ, shape))
		}
	}
}
