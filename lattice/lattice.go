package lattice

// Lattice is a sparse map from Point to Cell with a running bounding box over
// boundary cells. The zero value is not usable; call New.
//
// A Lattice is not safe for concurrent mutation. It is built once per polygon,
// classified, and read-only afterwards.
type Lattice struct {
	cells     map[Point]*Cell
	bounds    Rect
	hasBounds bool
}

// New returns an empty Lattice.
func New() *Lattice {
	return &Lattice{cells: make(map[Point]*Cell)}
}

// Mark classifies p as kind and reports whether the cell changed.
//
// Rules:
//   - Marking Unclassified is a no-op.
//   - A cell that already has a classification keeps it (first wins).
//   - InteriorFilled is accepted only inside the bounding box.
//   - Vertex and Edge extend the bounding box.
//
// Complexity: O(1) average.
func (l *Lattice) Mark(p Point, kind Kind) bool {
	if kind == Unclassified {
		return false
	}
	if c, ok := l.cells[p]; ok && c.Kind != Unclassified {
		return false
	}
	if kind == InteriorFilled && !l.InBounds(p) {
		return false
	}
	l.cells[p] = &Cell{Kind: kind}
	if kind.IsBoundary() {
		l.extend(p)
	}

	return true
}

func (l *Lattice) extend(p Point) {
	if !l.hasBounds {
		l.bounds = Rect{Min: p, Max: p}
		l.hasBounds = true
		return
	}
	l.bounds.Min.X = min(l.bounds.Min.X, p.X)
	l.bounds.Min.Y = min(l.bounds.Min.Y, p.Y)
	l.bounds.Max.X = max(l.bounds.Max.X, p.X)
	l.bounds.Max.Y = max(l.bounds.Max.Y, p.Y)
}

// Kind returns the classification of p; absent cells are Unclassified.
func (l *Lattice) Kind(p Point) Kind {
	if c, ok := l.cells[p]; ok {
		return c.Kind
	}
	return Unclassified
}

// Cell returns a copy of the cell at p and whether it is stored.
func (l *Lattice) Cell(p Point) (Cell, bool) {
	c, ok := l.cells[p]
	if !ok {
		return Cell{}, false
	}
	return *c, true
}

// IsBoundary reports whether p is a Vertex or Edge cell.
func (l *Lattice) IsBoundary(p Point) bool { return l.Kind(p).IsBoundary() }

// Orientation returns the orientation tag of p (Unknown if absent or unresolved).
func (l *Lattice) Orientation(p Point) Orientation {
	if c, ok := l.cells[p]; ok {
		return c.Orientation
	}
	return Unknown
}

// SetOrientation tags the boundary cell p with o. It reports false, leaving the
// cell untouched, when p is not a boundary cell, o is not resolved, or p already
// carries a resolved tag.
func (l *Lattice) SetOrientation(p Point, o Orientation) bool {
	c, ok := l.cells[p]
	if !ok || !c.Kind.IsBoundary() || !o.Resolved() || c.Orientation.Resolved() {
		return false
	}
	c.Orientation = o

	return true
}

// Link records that the boundary path leaves p in direction d.
// It reports false when p is not a boundary cell.
func (l *Lattice) Link(p Point, d Direction) bool {
	c, ok := l.cells[p]
	if !ok || !c.Kind.IsBoundary() {
		return false
	}
	c.Links = c.Links.With(d)

	return true
}

// Bounds returns the closed bounding box of all boundary cells.
// ok is false while the lattice holds no boundary cell.
func (l *Lattice) Bounds() (r Rect, ok bool) { return l.bounds, l.hasBounds }

// InBounds reports whether p lies inside the bounding box.
func (l *Lattice) InBounds(p Point) bool { return l.hasBounds && l.bounds.Contains(p) }

// Len returns the number of stored (classified) cells.
func (l *Lattice) Len() int { return len(l.cells) }

// Count returns the number of cells classified as kind. Counting Unclassified
// returns the number of bounding-box cells that are neither boundary nor interior.
func (l *Lattice) Count(kind Kind) int {
	if kind == Unclassified {
		if !l.hasBounds {
			return 0
		}
		return l.bounds.Width()*l.bounds.Height() - len(l.cells)
	}
	n := 0
	for _, c := range l.cells {
		if c.Kind == kind {
			n++
		}
	}

	return n
}

// Each calls fn for every point of the bounding box in row-major order, passing
// the stored cell or a zero Cell. Iteration stops when fn returns false.
//
// Complexity: O(W×H).
func (l *Lattice) Each(fn func(p Point, c Cell) bool) {
	if !l.hasBounds {
		return
	}
	for y := l.bounds.Min.Y; y <= l.bounds.Max.Y; y++ {
		for x := l.bounds.Min.X; x <= l.bounds.Max.X; x++ {
			p := Point{X: x, Y: y}
			var c Cell
			if sc, ok := l.cells[p]; ok {
				c = *sc
			}
			if !fn(p, c) {
				return
			}
		}
	}
}

// Neighbors4 returns the four orthogonal neighbors of p in Directions order.
func Neighbors4(p Point) [4]Point {
	var out [4]Point
	for i, d := range Directions {
		out[i] = p.Add(d)
	}
	return out
}
