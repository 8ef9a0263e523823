package tabs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringNames(t *testing.T) {
	names := make([]string, 0, NumStrings)
	for _, s := range Strings {
		names = append(names, s.String())
	}
	assert.Equal(t, []string{"E", "A", "D", "G", "B", "e"}, names)
	assert.Equal(t, "String(7)", String(7).String())
}

func TestFingeringValid(t *testing.T) {
	assert.False(t, Empty.Valid())
	assert.True(t, openC.Valid())

	lowest, ok := openC.MinFret()
	assert.True(t, ok)
	assert.Equal(t, 0, lowest)

	_, ok = Empty.MinFret()
	assert.False(t, ok)
}

func TestFingeringJSON(t *testing.T) {
	data, err := json.Marshal(openC)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"E": {"fret": "", "tone": ""},
		"A": {"fret": 3, "tone": 0},
		"D": {"fret": 2, "tone": 4},
		"G": {"fret": 0, "tone": 7},
		"B": {"fret": 1, "tone": 0},
		"e": {"fret": 0, "tone": 4}
	}`, string(data))

	var back Fingering
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, openC, back)

	err = json.Unmarshal([]byte(`{"A": {"fret": 3, "tone": ""}}`), &back)
	assert.Error(t, err, "fret without tone")

	for _, data := range []string{
		`{"A": {"fret": -1, "tone": 0}}`,
		`{"A": {"fret": 3, "tone": 12}}`,
		`{"A": {"fret": 3, "tone": -2}}`,
	} {
		assert.Error(t, json.Unmarshal([]byte(data), &back), data)
	}
}
