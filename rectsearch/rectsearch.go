package rectsearch

import (
	"github.com/katalvlaran/rectigrid/lattice"
)

// Result is the winning pair of a search. Found is false when no pair
// qualified, in which case Area is 0.
type Result struct {
	A, B  lattice.Point
	Area  int
	Found bool
}

// Area returns (|a.X-b.X|+1)·(|a.Y-b.Y|+1), or 0 when a and b share a coordinate.
func Area(a, b lattice.Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx == 0 || dy == 0 {
		return 0
	}
	return (dx + 1) * (dy + 1)
}

// Covered reports whether every cell strictly inside the rectangle spanned by a
// and b is InteriorFilled. A rectangle with no inner cells is trivially covered.
func Covered(l *lattice.Lattice, a, b lattice.Point) bool {
	x0, x1 := order(a.X, b.X)
	y0, y1 := order(a.Y, b.Y)
	for y := y0 + 1; y < y1; y++ {
		for x := x0 + 1; x < x1; x++ {
			if l.Kind(lattice.Pt(x, y)) != lattice.InteriorFilled {
				return false
			}
		}
	}

	return true
}

// Largest returns the biggest rectangle with corners in vertices whose inner
// cells are all InteriorFilled in l. The area is computed first so the coverage
// scan runs only for pairs that would improve the result.
func Largest(l *lattice.Lattice, vertices []lattice.Point) Result {
	return search(vertices, func(a, b lattice.Point) bool { return Covered(l, a, b) })
}

// LargestAny returns the biggest rectangle with corners in vertices, ignoring
// what lies inside it.
func LargestAny(vertices []lattice.Point) Result {
	return search(vertices, func(lattice.Point, lattice.Point) bool { return true })
}

func search(vertices []lattice.Point, ok func(a, b lattice.Point) bool) Result {
	var best Result
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			a, b := vertices[i], vertices[j]
			area := Area(a, b)
			if area <= best.Area {
				continue
			}
			if ok(a, b) {
				best = Result{A: a, B: b, Area: area, Found: true}
			}
		}
	}

	return best
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
