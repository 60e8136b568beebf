package orient

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rectigrid/lattice"
)

// ErrInconsistent indicates a tag/direction combination the tables do not cover.
var ErrInconsistent = errors.New("orient: inconsistent orientation")

const (
	unknown = lattice.Unknown
	inN     = lattice.InteriorNorth
	inE     = lattice.InteriorEast
	inS     = lattice.InteriorSouth
	inW     = lattice.InteriorWest
	inNE    = lattice.InteriorNorthEast
	inSE    = lattice.InteriorSouthEast
	inSW    = lattice.InteriorSouthWest
	inNW    = lattice.InteriorNorthWest
)

// carryTable[tag][travel] is the edge tag handed to the next cell when leaving a
// cell tagged tag in direction travel. Edge tags only carry along their own axis;
// corner tags hand over the component perpendicular to travel.
var carryTable = [...][4]lattice.Orientation{
	//        North    East     South    West
	unknown: {unknown, unknown, unknown, unknown},
	inN:     {unknown, inN, unknown, inN},
	inE:     {inE, unknown, inE, unknown},
	inS:     {unknown, inS, unknown, inS},
	inW:     {inW, unknown, inW, unknown},
	inNE:    {inE, inN, inE, inN},
	inSE:    {inE, inS, inE, inS},
	inSW:    {inW, inS, inW, inS},
	inNW:    {inW, inN, inW, inN},
}

// cornerTable[a][b] is the corner tag whose sides are a and b. Parallel pairs
// have no corner.
var cornerTable = [4][4]lattice.Orientation{
	//              North    East     South    West
	lattice.North: {unknown, inNE, unknown, inNW},
	lattice.East:  {inNE, unknown, inSE, unknown},
	lattice.South: {unknown, inSE, unknown, inSW},
	lattice.West:  {inNW, unknown, inSW, unknown},
}

// Carry returns the edge tag of the cell entered by travelling from a cell
// tagged tag in direction travel.
func Carry(tag lattice.Orientation, travel lattice.Direction) (lattice.Orientation, error) {
	if int(tag) >= len(carryTable) {
		return unknown, fmt.Errorf("%w: tag %v travelling %v", ErrInconsistent, tag, travel)
	}
	next := carryTable[tag][travel&3]
	if next == unknown {
		return unknown, fmt.Errorf("%w: tag %v travelling %v", ErrInconsistent, tag, travel)
	}
	return next, nil
}

// Turn returns the tag of a vertex entered travelling in direction travel with
// interior side side, and left in direction out. A straight pass keeps the edge
// tag; a quarter turn rotates the side with the travel and joins both into a
// corner tag; a U-turn is inconsistent.
func Turn(side lattice.Orientation, travel, out lattice.Direction) (lattice.Orientation, error) {
	if next, err := Carry(side, travel); err != nil || next != side {
		return unknown, fmt.Errorf("%w: side %v travelling %v", ErrInconsistent, side, travel)
	}
	sideDir, _ := side.EdgeSide()
	var outSide lattice.Direction
	switch out {
	case travel:
		return side, nil
	case travel.CW():
		outSide = sideDir.CW()
	case travel.CCW():
		outSide = sideDir.CCW()
	default:
		return unknown, fmt.Errorf("%w: U-turn from %v to %v", ErrInconsistent, travel, out)
	}

	return cornerTable[sideDir][outSide], nil
}

// quadrant returns the corner tag spanned by two perpendicular directions.
func quadrant(a, b lattice.Direction) lattice.Orientation { return cornerTable[a&3][b&3] }

// opposite returns the corner tag of the diagonally opposite quadrant.
func opposite(o lattice.Orientation) lattice.Orientation {
	var ds []lattice.Direction
	for _, d := range lattice.Directions {
		if o.Faces(d) {
			ds = append(ds, d.Reverse())
		}
	}
	if len(ds) != 2 {
		return unknown
	}
	return quadrant(ds[0], ds[1])
}

// diagonal returns the neighbor of p in the quadrant named by corner tag o.
func diagonal(p lattice.Point, o lattice.Orientation) lattice.Point {
	for _, d := range lattice.Directions {
		if o.Faces(d) {
			p = p.Add(d)
		}
	}
	return p
}
