package tabs

// Shape names one of the five CAGED neck shapes.
type Shape string

const (
	ShapeC Shape = "C"
	ShapeA Shape = "A"
	ShapeG Shape = "G"
	ShapeE Shape = "E"
	ShapeD Shape = "D"

	// ShapeAny asks for every shape of a chord type.
	ShapeAny Shape = ""
)

// FallbackOrder is the order shapes are pooled in when no shape is requested.
// Candidates with equal minimum fret keep this order after ranking.
var FallbackOrder = []Shape{ShapeC, ShapeA, ShapeG, ShapeE, ShapeD}

// ParseShape maps request input to a Shape. "" and "any" mean ShapeAny.
// The second result is false for anything else that is not a known shape.
func ParseShape(s string) (Shape, bool) {
	switch s {
	case "", "any":
		return ShapeAny, true
	}
	shape := Shape(s)
	return shape, shape.Known()
}

// Known reports whether s is one of the five CAGED shapes.
func (s Shape) Known() bool {
	switch s {
	case ShapeC, ShapeA, ShapeG, ShapeE, ShapeD:
		return true
	}
	return false
}

// Root is the reference root a shape's templates are written against:
// a C-shape template is a C chord, an A-shape template an A chord, and so on.
func (s Shape) Root() Tone {
	tone, _ := ResolveTone(string(s))
	return tone
}
