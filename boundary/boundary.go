package boundary

import "github.com/katalvlaran/rectigrid/lattice"

// Boundary is a validated, cyclic vertex sequence. It is immutable once built.
type Boundary struct {
	vertices []lattice.Point
}

// New copies vertices and checks that every consecutive pair (with wrap-around)
// shares a row or a column. Fewer than two vertices is accepted as degenerate.
//
// Returns *EdgeError wrapping ErrNotAxisAligned for the first bad pair.
func New(vertices []lattice.Point) (*Boundary, error) {
	vs := make([]lattice.Point, len(vertices))
	copy(vs, vertices)
	n := len(vs)
	for i := 0; i < n; i++ {
		a, b := vs[i], vs[(i+1)%n]
		if a.X != b.X && a.Y != b.Y {
			return nil, &EdgeError{Index: i, From: a, To: b}
		}
	}

	return &Boundary{vertices: vs}, nil
}

// Len returns the number of input vertices.
func (b *Boundary) Len() int { return len(b.vertices) }

// Vertices returns a copy of the input vertex sequence.
func (b *Boundary) Vertices() []lattice.Point {
	out := make([]lattice.Point, len(b.vertices))
	copy(out, b.vertices)
	return out
}

// Loop returns the vertex sequence with consecutive duplicates removed,
// including a duplicate of the first vertex at the end.
func (b *Boundary) Loop() []lattice.Point {
	var out []lattice.Point
	for _, p := range b.vertices {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}

	return out
}

// Materialize writes the boundary into l: vertices first, then the cells strictly
// between each consecutive pair. Path links are recorded in both directions for
// every step of every edge.
//
// Complexity: O(N + P).
func (b *Boundary) Materialize(l *lattice.Lattice) {
	for _, v := range b.vertices {
		l.Mark(v, lattice.Vertex)
	}
	n := len(b.vertices)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		from, to := b.vertices[i], b.vertices[(i+1)%n]
		d, ok := lattice.DirectionOf(from, to)
		if !ok {
			continue // zero-length edge
		}
		for p := from.Add(d); p != to; p = p.Add(d) {
			l.Mark(p, lattice.Edge)
		}
		for p := from; p != to; p = p.Add(d) {
			l.Link(p, d)
			l.Link(p.Add(d), d.Reverse())
		}
	}
}
