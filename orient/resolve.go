package orient

import (
	"fmt"

	"github.com/katalvlaran/rectigrid"
	"github.com/katalvlaran/rectigrid/boundary"
	"github.com/katalvlaran/rectigrid/lattice"
)

// Stats summarizes one Resolve run.
type Stats struct {
	// Anchor is the vertex whose tag was derived locally; valid when Anchored.
	Anchor   lattice.Point
	Anchored bool
	// Tagged counts the boundary cells that received a tag during this run.
	Tagged int
}

// corners lists the four corner tags, one per diagonal quadrant.
var corners = [4]lattice.Orientation{inNE, inSE, inSW, inNW}

// Derive tags vertex v, entered from prev and left toward next, from its diagonal
// neighbors alone. ok is false when v is not a corner or the neighbors leave the
// answer open.
//
// Complexity: O(W+H) for the free-ray probes.
func Derive(l *lattice.Lattice, prev, v, next lattice.Point) (lattice.Orientation, bool) {
	in, ok1 := lattice.DirectionOf(prev, v)
	out, ok2 := lattice.DirectionOf(v, next)
	if !ok1 || !ok2 || in == out || in == out.Reverse() {
		return unknown, false
	}
	between := quadrant(in.Reverse(), out)

	var outside []lattice.Orientation
	for _, c := range corners {
		q := diagonal(v, c)
		if !l.InBounds(q) || (!l.IsBoundary(q) && l.Free(q)) {
			outside = append(outside, c)
		}
	}

	switch {
	case len(outside) == 3 && !contains(outside, between):
		return between, true
	case len(outside) == 1 && outside[0] == between:
		return opposite(between), true
	}
	return unknown, false
}

func contains(list []lattice.Orientation, o lattice.Orientation) bool {
	for _, x := range list {
		if x == o {
			return true
		}
	}
	return false
}

// Resolve tags every boundary cell of b, which must already be materialized into l.
//
// Behavior:
//  1. Find the first vertex of b.Loop() that Derive can tag; tag it.
//  2. Walk the loop once from there. Each edge cell receives Carry(previous tag,
//     travel); each vertex receives Turn(incoming side, travel, outgoing travel).
//  3. A cell that already holds a tag keeps it and the walk continues from it.
//
// Loops with fewer than three distinct vertices, or with no derivable corner,
// are left untagged without error.
//
// Returns an error wrapping ErrInconsistent when the tables have no entry.
func Resolve(l *lattice.Lattice, b *boundary.Boundary) (Stats, error) {
	var st Stats
	loop := b.Loop()
	n := len(loop)
	if n < 3 {
		return st, nil
	}

	start := -1
	for i := range loop {
		tag, ok := Derive(l, loop[(i+n-1)%n], loop[i], loop[(i+1)%n])
		if !ok {
			continue
		}
		start = i
		if l.SetOrientation(loop[i], tag) {
			st.Tagged++
		}
		break
	}
	if start < 0 {
		rectigrid.Logger().Debug("orient: no derivable corner", "vertices", n)
		return st, nil
	}
	st.Anchor, st.Anchored = loop[start], true
	rectigrid.Logger().Debug("orient: anchored", "vertex", st.Anchor.String(), "tag", l.Orientation(st.Anchor).String())

	for k := 0; k < n; k++ {
		i := (start + k) % n
		a, next, after := loop[i], loop[(i+1)%n], loop[(i+2)%n]
		travel, ok := lattice.DirectionOf(a, next)
		if !ok {
			return st, fmt.Errorf("%w: edge (%v)→(%v) has no direction", ErrInconsistent, a, next)
		}

		side, err := Carry(l.Orientation(a), travel)
		if err != nil {
			return st, fmt.Errorf("leaving %v: %w", a, err)
		}
		for p := a.Add(travel); p != next; p = p.Add(travel) {
			if l.SetOrientation(p, side) {
				st.Tagged++
			}
			if side, err = Carry(l.Orientation(p), travel); err != nil {
				return st, fmt.Errorf("leaving %v: %w", p, err)
			}
		}

		out, ok := lattice.DirectionOf(next, after)
		if !ok {
			return st, fmt.Errorf("%w: edge (%v)→(%v) has no direction", ErrInconsistent, next, after)
		}
		tag, err := Turn(side, travel, out)
		if err != nil {
			return st, fmt.Errorf("at %v: %w", next, err)
		}
		if l.SetOrientation(next, tag) {
			st.Tagged++
		}
	}

	return st, nil
}
