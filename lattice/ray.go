package lattice

// Ray is the outcome of walking from a cell to the edge of the bounding box.
type Ray struct {
	Dir Direction
	// Hits counts boundary cells met along the way.
	Hits int
	// Crossings counts maximal contiguous runs of boundary cells; a run the ray
	// travels along counts once however long it is.
	Crossings int
	// First is the nearest boundary cell met; valid only when Hits > 0.
	First Point
}

// Hit reports whether the ray met any boundary cell.
func (r Ray) Hit() bool { return r.Hits > 0 }

// Odd reports whether the crossing count is odd.
func (r Ray) Odd() bool { return r.Crossings%2 == 1 }

// Cast walks from p (exclusive) in direction d until it leaves the bounding box.
//
// Complexity: O(W) or O(H) depending on the axis.
func (l *Lattice) Cast(p Point, d Direction) Ray {
	r := Ray{Dir: d}
	inRun := false
	for q := p.Add(d); l.InBounds(q); q = q.Add(d) {
		if !l.IsBoundary(q) {
			inRun = false
			continue
		}
		if r.Hits == 0 {
			r.First = q
		}
		r.Hits++
		if !inRun {
			r.Crossings++
			inRun = true
		}
	}

	return r
}

// Free reports whether at least one of the four rays from p leaves the bounding
// box without meeting a boundary cell, which proves p is exterior. Points outside
// the bounding box are free.
func (l *Lattice) Free(p Point) bool {
	if !l.InBounds(p) {
		return true
	}
	for _, d := range Directions {
		if !l.Cast(p, d).Hit() {
			return true
		}
	}
	return false
}
