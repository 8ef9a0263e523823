package tabs

// Match is a chord whose dictionary template produces a fret pattern.
type Match struct {
	Root    string    `json:"root"`
	Type    ChordType `json:"type"`
	Shape   Shape     `json:"shape"`
	Octaves int       `json:"octaves"`
}

// Identify finds every template that plays p. A template matches when the
// same strings are played and every played fret sits the same non-negative
// distance above the template's fret. Results are in type-name order, then
// FallbackOrder, then dictionary order.
func (d *Dictionary) Identify(p FretPattern) []Match {
	var matches []Match
	for _, typ := range d.names {
		for _, shape := range FallbackOrder {
			for _, tmpl := range d.types[typ][shape] {
				dist, ok := tmpl.distanceTo(p)
				if !ok {
					continue
				}
				root := Tone(mod12(int(shape.Root()) + dist))
				matches = append(matches, Match{
					Root:    root.Name(),
					Type:    typ,
					Shape:   shape,
					Octaves: dist / octave,
				})
			}
		}
	}
	return matches
}

// distanceTo returns how far p sits above the template
func (t Template) distanceTo(p FretPattern) (int, bool) {
	dist, found := 0, false
	for i, slot := range t.Slots {
		if slot.Played != p[i].Played {
			return 0, false
		}
		if !slot.Played {
			continue
		}
		diff := p[i].Fret - slot.Fret
		if !found {
			dist, found = diff, true
		} else if diff != dist {
			return 0, false
		}
	}
	if !found || dist < 0 {
		return 0, false
	}
	return dist, true
}
