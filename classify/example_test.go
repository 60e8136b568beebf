package classify_test

import (
	"fmt"

	"github.com/katalvlaran/rectigrid/boundary"
	"github.com/katalvlaran/rectigrid/classify"
	"github.com/katalvlaran/rectigrid/lattice"
	"github.com/katalvlaran/rectigrid/orient"
)

// ExampleClassify fills the lattice points strictly inside a 4×3 square.
func ExampleClassify() {
	b, err := boundary.New([]lattice.Point{
		lattice.Pt(1, 1), lattice.Pt(5, 1), lattice.Pt(5, 4), lattice.Pt(1, 4),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	l := lattice.New()
	b.Materialize(l)
	if _, err = orient.Resolve(l, b); err != nil {
		fmt.Println("error:", err)
		return
	}

	st, err := classify.Classify(l, classify.WithRule(classify.Facing))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("interior:", st.Interior, "exterior:", st.Exterior)
	fmt.Println("inside (3,2):", l.Kind(lattice.Pt(3, 2)) == lattice.InteriorFilled)
	// Output:
	// interior: 6 exterior: 0
	// inside (3,2): true
}
