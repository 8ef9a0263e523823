package tabs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrInvalidDictionary wraps every dictionary validation failure.
var ErrInvalidDictionary = errors.New("invalid chord dictionary")

//go:embed dictionary.json
var embeddedDictionary []byte

// ChordType is a canonical chord-type key such as "major" or "minor 7th".
type ChordType string

// Template is a fingering written against its shape's reference root.
type Template struct {
	Shape Shape
	Slots [NumStrings]Slot
}

// Dictionary is the read-only chord type -> shape -> templates mapping.
// It is safe for concurrent use once constructed.
type Dictionary struct {
	version int
	types   map[ChordType]map[Shape][]Template
	aliases map[ChordType][]string
	lookup  map[string]ChordType
	names   []ChordType
}

// File is the on-disk dictionary format.
type File struct {
	Version int                  `json:"version"`
	Types   map[string]TypeEntry `json:"types"`
}

// TypeEntry holds the aliases and per-shape records of one chord type.
type TypeEntry struct {
	Aliases []string            `json:"aliases,omitempty"`
	Shapes  map[string][]Record `json:"shapes"`
}

// Record is one raw template: six frets and six tones, low E first.
type Record struct {
	Frets []Cell `json:"frets"`
	Tones []Cell `json:"tones"`
}

// Cell is an integer or the "X" not-played sentinel.
type Cell struct {
	Value int
	Set   bool
}

// N returns a set cell.
func N(v int) Cell { return Cell{Value: v, Set: true} }

func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.Set {
		return []byte(`"X"`), nil
	}
	return json.Marshal(c.Value)
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	v, ok, err := decodeCell(data, `"X"`)
	if err != nil {
		return err
	}
	*c = Cell{Value: v, Set: ok}
	return nil
}

var defaultOnce = sync.OnceValues(func() (*Dictionary, error) {
	return ParseDictionary(embeddedDictionary)
})

// Default returns the dictionary compiled into the binary. It is parsed once.
func Default() (*Dictionary, error) {
	return defaultOnce()
}

// MustDefault is Default for callers that cannot recover from a broken build.
func MustDefault() *Dictionary {
	d, err := Default()
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDictionary decodes and validates a dictionary file.
func ParseDictionary(data []byte) (*Dictionary, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDictionary, err)
	}
	return NewDictionary(f)
}

// NewDictionary validates f and builds a Dictionary from it.
func NewDictionary(f File) (*Dictionary, error) {
	d := &Dictionary{
		version: f.Version,
		types:   make(map[ChordType]map[Shape][]Template, len(f.Types)),
		aliases: make(map[ChordType][]string, len(f.Types)),
		lookup:  make(map[string]ChordType),
	}
	if len(f.Types) == 0 {
		return nil, fmt.Errorf("%w: no chord types", ErrInvalidDictionary)
	}

	for name := range f.Types {
		if name == "" {
			return nil, fmt.Errorf("%w: empty chord type name", ErrInvalidDictionary)
		}
		d.names = append(d.names, ChordType(name))
		d.lookup[name] = ChordType(name)
	}
	slices.Sort(d.names)

	for _, typ := range d.names {
		entry := f.Types[string(typ)]

		// Register aliases, rejecting any that would make resolution ambiguous
		for _, alias := range entry.Aliases {
			if alias == "" {
				return nil, fmt.Errorf("%w: type %q has an empty alias", ErrInvalidDictionary, typ)
			}
			if other, exists := d.lookup[alias]; exists && other != typ {
				return nil, fmt.Errorf("%w: alias %q of %q already names %q", ErrInvalidDictionary, alias, typ, other)
			}
			if _, exists := d.lookup[alias]; !exists {
				d.lookup[alias] = typ
				d.aliases[typ] = append(d.aliases[typ], alias)
			}
		}

		shapes := make(map[Shape][]Template, len(entry.Shapes))
		for shapeName, records := range entry.Shapes {
			shape := Shape(shapeName)
			if !shape.Known() {
				return nil, fmt.Errorf("%w: type %q has unknown shape %q", ErrInvalidDictionary, typ, shapeName)
			}
			templates := make([]Template, 0, len(records))
			for i, rec := range records {
				tmpl, err := rec.template(shape)
				if err != nil {
					return nil, fmt.Errorf("%w: type %q shape %s record %d: %v", ErrInvalidDictionary, typ, shape, i, err)
				}
				templates = append(templates, tmpl)
			}
			if len(templates) > 0 {
				shapes[shape] = templates
			}
		}
		d.types[typ] = shapes
	}
	return d, nil
}

// template converts a record, rejecting malformed slots
func (r Record) template(shape Shape) (Template, error) {
	t := Template{Shape: shape}
	if len(r.Frets) != NumStrings || len(r.Tones) != NumStrings {
		return t, fmt.Errorf("want %d frets and tones, got %d and %d", NumStrings, len(r.Frets), len(r.Tones))
	}
	played := 0
	for i := 0; i < NumStrings; i++ {
		fret, tone := r.Frets[i], r.Tones[i]
		if fret.Set != tone.Set {
			return t, fmt.Errorf("string %s: fret and tone must both be X or both be set", Strings[i])
		}
		if !fret.Set {
			continue
		}
		if fret.Value < 0 {
			return t, fmt.Errorf("string %s: negative fret %d", Strings[i], fret.Value)
		}
		if tone.Value < 0 || tone.Value > 11 {
			return t, fmt.Errorf("string %s: tone %d out of range 0-11", Strings[i], tone.Value)
		}
		t.Slots[i] = Fret(fret.Value, Tone(tone.Value))
		played++
	}
	if played == 0 {
		return t, fmt.Errorf("no string is played")
	}
	return t, nil
}

// Record converts a template back to its file form.
func (t Template) Record() Record {
	r := Record{Frets: make([]Cell, NumStrings), Tones: make([]Cell, NumStrings)}
	for i, slot := range t.Slots {
		if slot.Played {
			r.Frets[i] = N(slot.Fret)
			r.Tones[i] = N(int(slot.Tone))
		}
	}
	return r
}

// Version is the dictionary file version.
func (d *Dictionary) Version() int { return d.version }

// Types returns every chord type in name order.
func (d *Dictionary) Types() []ChordType {
	return append([]ChordType(nil), d.names...)
}

// Aliases returns the registered aliases of a chord type.
func (d *Dictionary) Aliases(t ChordType) []string {
	return append([]string(nil), d.aliases[t]...)
}

// Shapes returns the shapes that have templates for t, in FallbackOrder.
func (d *Dictionary) Shapes(t ChordType) []Shape {
	var shapes []Shape
	for _, shape := range FallbackOrder {
		if len(d.types[t][shape]) > 0 {
			shapes = append(shapes, shape)
		}
	}
	return shapes
}

// Templates returns the templates registered under t and shape.
func (d *Dictionary) Templates(t ChordType, shape Shape) []Template {
	return append([]Template(nil), d.types[t][shape]...)
}

// ResolveType maps a chord-type key or alias to its canonical key.
// Unknown and empty abbreviations yield false.
func (d *Dictionary) ResolveType(abbrev string) (ChordType, bool) {
	t, ok := d.lookup[abbrev]
	return t, ok
}

// File converts the dictionary back into its file form.
func (d *Dictionary) File() File {
	f := File{Version: d.version, Types: make(map[string]TypeEntry, len(d.names))}
	for _, typ := range d.names {
		entry := TypeEntry{Aliases: d.Aliases(typ), Shapes: make(map[string][]Record)}
		for shape, templates := range d.types[typ] {
			for _, tmpl := range templates {
				entry.Shapes[string(shape)] = append(entry.Shapes[string(shape)], tmpl.Record())
			}
		}
		f.Types[string(typ)] = entry
	}
	return f
}
