package tabs

// Request describes the chord diagram a caller wants.
type Request struct {
	Root     string `json:"root"`
	Type     string `json:"type"`
	Shape    string `json:"shape"`
	Position string `json:"position"`
	Option   int    `json:"option"`
}

// Generate returns the fingering for req, or Empty when the request does not
// resolve (unknown root or type, no templates for the shape). It never fails.
func (d *Dictionary) Generate(req Request) Fingering {
	return Select(d.Candidates(req), req.Option)
}

// Candidates returns the ranked fingerings Generate selects from.
func (d *Dictionary) Candidates(req Request) []Fingering {
	root, ok := ResolveTone(req.Root)
	if !ok {
		return nil
	}
	typ, ok := d.ResolveType(req.Type)
	if !ok {
		return nil
	}
	shape, ok := ParseShape(req.Shape)
	if !ok {
		return nil
	}

	templates := d.SelectTemplates(typ, shape)
	if len(templates) == 0 {
		return nil
	}

	fingerings := Transpose(templates, root)
	fingerings = Normalize(fingerings, ParsePosition(req.Position))
	return Rank(fingerings)
}

// Generate runs req against the built-in dictionary.
func Generate(req Request) Fingering {
	return MustDefault().Generate(req)
}
