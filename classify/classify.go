package classify

import (
	"github.com/katalvlaran/rectigrid"
	"github.com/katalvlaran/rectigrid/lattice"
)

// rayOrder is the order rays are consulted: left, right, up, down.
var rayOrder = [4]lattice.Direction{lattice.West, lattice.East, lattice.North, lattice.South}

// Classify runs the ray pass and neighbor propagation over l's bounding box.
// Only Unclassified cells are examined, so calling it again on a classified
// lattice is cheap and, for simple polygons, changes nothing.
//
// Returns ErrOptionViolation for an invalid option; l is untouched in that case.
func Classify(l *lattice.Lattice, opts ...Option) (Stats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Stats{}, o.err
	}

	var st Stats
	if _, ok := l.Bounds(); !ok {
		return st, nil
	}

	l.Each(func(p lattice.Point, c lattice.Cell) bool {
		if c.Kind != lattice.Unclassified {
			return true
		}
		switch decide(l, p, o.Rule) {
		case exterior:
			st.Exterior++
		case interior:
			l.Mark(p, lattice.InteriorFilled)
			st.Interior++
		default:
			st.Undecided++
		}
		return true
	})

	for {
		n := propagate(l)
		st.Sweeps++
		st.Propagated += n
		if o.Propagation == SinglePass || n == 0 {
			break
		}
	}

	rectigrid.Logger().Debug("classify: done",
		"rule", o.Rule.String(),
		"interior", st.Interior,
		"exterior", st.Exterior,
		"undecided", st.Undecided,
		"propagated", st.Propagated,
		"sweeps", st.Sweeps)

	return st, nil
}

// Inside reports whether the ray pass alone would mark p interior under rule.
// Boundary and already-interior cells report false.
func Inside(l *lattice.Lattice, p lattice.Point, rule Rule) bool {
	if l.Kind(p) != lattice.Unclassified {
		return false
	}
	return decide(l, p, rule) == interior
}

type verdict int

const (
	undecided verdict = iota
	exterior
	interior
)

func decide(l *lattice.Lattice, p lattice.Point, rule Rule) verdict {
	if !l.InBounds(p) {
		return exterior
	}
	var rays [4]lattice.Ray
	for i, d := range rayOrder {
		rays[i] = l.Cast(p, d)
		if !rays[i].Hit() {
			return exterior
		}
	}

	if rule == Facing {
		near := rays[0]
		if tag := l.Orientation(near.First); tag.Resolved() {
			if tag.Faces(near.Dir.Reverse()) {
				return interior
			}
			return exterior
		}
	}

	for _, r := range rays {
		if r.Odd() {
			return interior
		}
	}
	return undecided
}

// propagate performs one row-major sweep and returns the number of cells marked.
// Cells marked earlier in the sweep count as neighbors for later cells.
func propagate(l *lattice.Lattice) int {
	n := 0
	l.Each(func(p lattice.Point, c lattice.Cell) bool {
		if c.Kind != lattice.Unclassified {
			return true
		}
		for _, q := range lattice.Neighbors4(p) {
			if l.Kind(q) == lattice.InteriorFilled {
				if l.Mark(p, lattice.InteriorFilled) {
					n++
				}
				break
			}
		}
		return true
	})

	return n
}
