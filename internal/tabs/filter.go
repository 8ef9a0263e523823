package tabs

// SelectTemplates returns the candidate templates for a chord type.
//
// A known shape yields exactly that shape's templates. ShapeAny pools every
// shape of the type in FallbackOrder. Unknown shapes and types yield nothing.
func (d *Dictionary) SelectTemplates(t ChordType, shape Shape) []Template {
	shapes, ok := d.types[t]
	if !ok {
		return nil
	}

	if shape.Known() {
		return append([]Template(nil), shapes[shape]...)
	}
	if shape != ShapeAny {
		return nil
	}

	var templates []Template
	for _, s := range FallbackOrder {
		templates = append(templates, shapes[s]...)
	}
	return templates
}
