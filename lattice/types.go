package lattice

import "fmt"

// Point is a lattice coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p moved one step in direction d.
func (p Point) Add(d Direction) Point {
	off := d.Offset()
	return Point{X: p.X + off[0], Y: p.Y + off[1]}
}

// String renders p as "x,y", the same form the input files use.
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Rect is a closed axis-aligned box: both Min and Max are inside.
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Width is the number of columns covered by r.
func (r Rect) Width() int { return r.Max.X - r.Min.X + 1 }

// Height is the number of rows covered by r.
func (r Rect) Height() int { return r.Max.Y - r.Min.Y + 1 }

// Grow returns r expanded by n cells on every side.
func (r Rect) Grow(n int) Rect {
	return Rect{
		Min: Point{X: r.Min.X - n, Y: r.Min.Y - n},
		Max: Point{X: r.Max.X + n, Y: r.Max.Y + n},
	}
}

// Kind is the classification state of a cell.
type Kind uint8

const (
	// Unclassified is the zero value: not boundary and not (yet) interior.
	// After classification it means exterior.
	Unclassified Kind = iota
	// Vertex marks a cell holding a polygon vertex.
	Vertex
	// Edge marks a cell strictly between two consecutive vertices.
	Edge
	// InteriorFilled marks a cell inside the polygon.
	InteriorFilled
)

// IsBoundary reports whether k is Vertex or Edge.
func (k Kind) IsBoundary() bool { return k == Vertex || k == Edge }

func (k Kind) String() string {
	switch k {
	case Unclassified:
		return "Unclassified"
	case Vertex:
		return "Vertex"
	case Edge:
		return "Edge"
	case InteriorFilled:
		return "InteriorFilled"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Direction is one of the four orthogonal lattice directions.
// Rows grow downward, so North is -Y.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four directions clockwise from North.
var Directions = [4]Direction{North, East, South, West}

var directionOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Offset returns the (dx, dy) unit step for d.
func (d Direction) Offset() [2]int { return directionOffsets[d&3] }

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction { return (d + 2) & 3 }

// CW returns d rotated a quarter turn clockwise (North → East).
func (d Direction) CW() Direction { return (d + 1) & 3 }

// CCW returns d rotated a quarter turn counter-clockwise (North → West).
func (d Direction) CCW() Direction { return (d + 3) & 3 }

// Horizontal reports whether d is East or West.
func (d Direction) Horizontal() bool { return d == East || d == West }

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DirectionOf returns the direction of travel from a to b.
// ok is false when a == b or when a and b share neither coordinate.
func DirectionOf(a, b Point) (d Direction, ok bool) {
	switch {
	case a == b:
		return 0, false
	case a.X == b.X && b.Y < a.Y:
		return North, true
	case a.X == b.X:
		return South, true
	case a.Y == b.Y && b.X > a.X:
		return East, true
	case a.Y == b.Y:
		return West, true
	}
	return 0, false
}

// DirectionSet is a bit set of directions.
type DirectionSet uint8

// SetOf builds a DirectionSet from ds.
func SetOf(ds ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range ds {
		s = s.With(d)
	}
	return s
}

// With returns s with d added.
func (s DirectionSet) With(d Direction) DirectionSet { return s | 1<<(d&3) }

// Has reports whether d is in s.
func (s DirectionSet) Has(d Direction) bool { return s&(1<<(d&3)) != 0 }

// Len returns the number of directions in s.
func (s DirectionSet) Len() int {
	n := 0
	for _, d := range Directions {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Orientation tells which side of a boundary cell faces the polygon interior.
//
// Straight-edge hints name the interior side of the edge. Corner hints name a
// diagonal quadrant: the corner's horizontal leg has its interior on the vertical
// component, its vertical leg on the horizontal component. The named quadrant is
// always interior; when the legs open toward it the corner is convex, otherwise it
// is concave and only the opposite quadrant is exterior.
type Orientation uint8

const (
	// Unknown means no orientation has been resolved yet.
	Unknown Orientation = iota
	InteriorNorth
	InteriorEast
	InteriorSouth
	InteriorWest
	InteriorNorthEast
	InteriorSouthEast
	InteriorSouthWest
	InteriorNorthWest
)

var orientationSides = [...]DirectionSet{
	Unknown:           0,
	InteriorNorth:     SetOf(North),
	InteriorEast:      SetOf(East),
	InteriorSouth:     SetOf(South),
	InteriorWest:      SetOf(West),
	InteriorNorthEast: SetOf(North, East),
	InteriorSouthEast: SetOf(South, East),
	InteriorSouthWest: SetOf(South, West),
	InteriorNorthWest: SetOf(North, West),
}

var orientationNames = [...]string{
	Unknown:           "Unknown",
	InteriorNorth:     "InteriorNorth",
	InteriorEast:      "InteriorEast",
	InteriorSouth:     "InteriorSouth",
	InteriorWest:      "InteriorWest",
	InteriorNorthEast: "InteriorNorthEast",
	InteriorSouthEast: "InteriorSouthEast",
	InteriorSouthWest: "InteriorSouthWest",
	InteriorNorthWest: "InteriorNorthWest",
}

// Side returns the straight-edge hint whose interior lies toward d.
func Side(d Direction) Orientation { return InteriorNorth + Orientation(d&3) }

// Resolved reports whether o is one of the eight hints.
func (o Orientation) Resolved() bool { return o != Unknown && int(o) < len(orientationSides) }

// IsEdge reports whether o is a straight-edge hint.
func (o Orientation) IsEdge() bool { return o >= InteriorNorth && o <= InteriorWest }

// EdgeSide returns the interior direction of a straight-edge hint.
func (o Orientation) EdgeSide() (Direction, bool) {
	if !o.IsEdge() {
		return 0, false
	}
	return Direction(o - InteriorNorth), true
}

// IsCorner reports whether o is a corner hint.
func (o Orientation) IsCorner() bool { return o >= InteriorNorthEast && o <= InteriorNorthWest }

// Sides returns the directions o marks as interior.
func (o Orientation) Sides() DirectionSet {
	if int(o) >= len(orientationSides) {
		return 0
	}
	return orientationSides[o]
}

// Faces reports whether the neighbor of the tagged cell in direction d lies on the
// interior side, for any neighbor that is not itself part of the boundary path.
func (o Orientation) Faces(d Direction) bool { return o.Sides().Has(d) }

func (o Orientation) String() string {
	if int(o) < len(orientationNames) {
		return orientationNames[o]
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Cell is the state stored for one lattice point.
type Cell struct {
	Kind        Kind
	Orientation Orientation
	// Links holds the directions in which the boundary path leaves this cell.
	Links DirectionSet
}
