package rectsearch_test

import (
	"fmt"

	"github.com/katalvlaran/rectigrid/lattice"
	"github.com/katalvlaran/rectigrid/rectsearch"
)

// ExampleLargestAny picks the widest vertex pair regardless of interior.
func ExampleLargestAny() {
	vs := []lattice.Point{
		lattice.Pt(7, 1), lattice.Pt(11, 1), lattice.Pt(11, 7), lattice.Pt(9, 7),
		lattice.Pt(9, 5), lattice.Pt(2, 5), lattice.Pt(2, 3), lattice.Pt(7, 3),
	}
	r := rectsearch.LargestAny(vs)
	fmt.Println(r.A, r.B, r.Area)
	// Output:
	// 11,1 2,5 50
}

// ExampleArea shows the inclusive lattice area and the degenerate case.
func ExampleArea() {
	fmt.Println(rectsearch.Area(lattice.Pt(1, 1), lattice.Pt(5, 4)))
	fmt.Println(rectsearch.Area(lattice.Pt(1, 1), lattice.Pt(1, 4)))
	// Output:
	// 20
	// 0
}
