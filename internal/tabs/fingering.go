package tabs

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// String identifies a guitar string in standard tuning, low to high.
type String int

const (
	LowE String = iota
	A
	D
	G
	B
	HighE
)

// NumStrings is the number of strings on the instrument.
const NumStrings = 6

// Strings lists every string from low E to high e.
var Strings = [NumStrings]String{LowE, A, D, G, B, HighE}

var stringNames = [NumStrings]string{"E", "A", "D", "G", "B", "e"}

func (s String) String() string {
	if s < 0 || int(s) >= NumStrings {
		return fmt.Sprintf("String(%d)", int(s))
	}
	return stringNames[s]
}

// Slot is one string of a fingering. An unplayed slot has neither fret nor tone.
type Slot struct {
	Fret   int
	Tone   Tone
	Played bool
}

// Fret returns a played slot.
func Fret(fret int, tone Tone) Slot {
	return Slot{Fret: fret, Tone: tone, Played: true}
}

// Muted is the unplayed slot.
var Muted = Slot{}

type slotJSON struct {
	Fret any `json:"fret"`
	Tone any `json:"tone"`
}

// MarshalJSON writes unplayed slots as empty strings.
func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.Played {
		return json.Marshal(slotJSON{Fret: "", Tone: ""})
	}
	return json.Marshal(slotJSON{Fret: s.Fret, Tone: int(s.Tone)})
}

// UnmarshalJSON accepts the form written by MarshalJSON.
func (s *Slot) UnmarshalJSON(data []byte) error {
	var raw struct {
		Fret json.RawMessage `json:"fret"`
		Tone json.RawMessage `json:"tone"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	fret, fretOK, err := decodeCell(raw.Fret, `""`)
	if err != nil {
		return fmt.Errorf("fret: %w", err)
	}
	tone, toneOK, err := decodeCell(raw.Tone, `""`)
	if err != nil {
		return fmt.Errorf("tone: %w", err)
	}
	if fretOK != toneOK {
		return fmt.Errorf("fret and tone must both be set or both be empty")
	}
	if fretOK && fret < 0 {
		return fmt.Errorf("negative fret %d", fret)
	}
	if toneOK && (tone < 0 || tone > 11) {
		return fmt.Errorf("tone %d out of range 0-11", tone)
	}
	*s = Slot{Fret: fret, Tone: Tone(tone), Played: fretOK}
	return nil
}

// decodeCell reads either an integer or the given empty sentinel.
func decodeCell(raw json.RawMessage, empty string) (int, bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == empty || string(raw) == "null" {
		return 0, false, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false, fmt.Errorf("want integer or %s, got %s", empty, raw)
	}
	return n, true, nil
}

// Fingering holds one slot per string, indexed by String. The zero value is
// the empty fingering: no string played.
type Fingering [NumStrings]Slot

// Empty is the canonical "no result" fingering.
var Empty Fingering

// Valid reports whether at least one string is played.
func (f Fingering) Valid() bool {
	_, ok := f.MinFret()
	return ok
}

// MinFret returns the lowest played fret. ok is false when nothing is played.
func (f Fingering) MinFret() (lowest int, ok bool) {
	for _, slot := range f {
		if !slot.Played {
			continue
		}
		if !ok || slot.Fret < lowest {
			lowest = slot.Fret
			ok = true
		}
	}
	return lowest, ok
}

// Slot returns the slot for a string.
func (f Fingering) Slot(s String) Slot {
	return f[s]
}

// MarshalJSON writes the fingering as an object keyed by string name.
func (f Fingering) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range Strings {
		if i > 0 {
			buf.WriteByte(',')
		}
		slot, err := json.Marshal(f[s])
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%q:%s", s.String(), slot)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object form. Missing strings are left unplayed.
func (f *Fingering) UnmarshalJSON(data []byte) error {
	var raw map[string]Slot
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out Fingering
	for _, s := range Strings {
		out[s] = raw[s.String()]
	}
	*f = out
	return nil
}
