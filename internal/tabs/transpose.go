package tabs

// Transpose moves every template from its shape's reference root to root.
// Played frets are raised by Distance(shape root, root); tones are kept since
// they are relative to the chord root. One fingering per template, in order.
func Transpose(templates []Template, root Tone) []Fingering {
	out := make([]Fingering, 0, len(templates))
	for _, tmpl := range templates {
		out = append(out, tmpl.Transpose(root))
	}
	return out
}

// Transpose returns the template played as a chord on root.
func (t Template) Transpose(root Tone) Fingering {
	offset := Distance(t.Shape.Root(), root)

	var f Fingering
	for i, slot := range t.Slots {
		if !slot.Played {
			continue
		}
		f[i] = Fret(slot.Fret+offset, slot.Tone)
	}
	return f
}
