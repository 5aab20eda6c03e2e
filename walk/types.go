package walk

// Point is one lattice position; its length is the walk dimensionality.
type Point []int

// DirectionSet is an ordered set of unit moves. All moves must share the
// same arity; the aligned probability slice indexes into it.
type DirectionSet []Point

// Canonical axis-aligned direction sets. Order is part of the contract:
// probabilities align index-for-index with these moves.
var (
	// Directions1D: forward (+1), backward (-1).
	Directions1D = DirectionSet{{1}, {-1}}
	// Directions2D: right (+x), left (-x), up (+y), down (-y).
	Directions2D = DirectionSet{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	// Directions3D: +x, -x, +y, -y, +z, -z.
	Directions3D = DirectionSet{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
)

// arity returns the shared move arity, or -1 when the set is empty or ragged.
func (d DirectionSet) arity() int {
	if len(d) == 0 {
		return -1
	}
	dim := len(d[0])
	if dim == 0 {
		return -1
	}
	for _, mv := range d[1:] {
		if len(mv) != dim {
			return -1
		}
	}

	return dim
}
