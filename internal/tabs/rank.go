package tabs

import "slices"

// Rank returns the fingerings sorted by lowest played fret, ascending.
// The sort is stable. A fingering with nothing played compares equal to
// every other one, so it keeps its place relative to its neighbours.
func Rank(fingerings []Fingering) []Fingering {
	sorted := slices.Clone(fingerings)
	slices.SortStableFunc(sorted, func(a, b Fingering) int {
		minA, okA := a.MinFret()
		minB, okB := b.MinFret()
		if !okA || !okB {
			return 0
		}
		return minA - minB
	})
	return sorted
}

// Select picks a variant from a ranked list. option wraps around the list
// length; negative options count back from the end, so -1 is the last one.
// An empty list yields the Empty fingering.
func Select(sorted []Fingering, option int) Fingering {
	if len(sorted) == 0 {
		return Empty
	}
	i := option % len(sorted)
	if i < 0 {
		i += len(sorted)
	}
	return sorted[i]
}
