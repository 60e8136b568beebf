package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDirection_Rotations checks Reverse/CW/CCW against the clockwise order
// North → East → South → West.
func TestDirection_Rotations(t *testing.T) {
	for i, d := range Directions {
		assert.Equal(t, Directions[(i+1)%4], d.CW(), "CW(%v)", d)
		assert.Equal(t, Directions[(i+3)%4], d.CCW(), "CCW(%v)", d)
		assert.Equal(t, Directions[(i+2)%4], d.Reverse(), "Reverse(%v)", d)
		assert.Equal(t, d, d.CW().CCW())
	}
	assert.True(t, East.Horizontal())
	assert.True(t, West.Horizontal())
	assert.False(t, North.Horizontal())
	assert.False(t, South.Horizontal())
}

// TestDirectionOf covers the four directions plus the rejected cases.
func TestDirectionOf(t *testing.T) {
	cases := []struct {
		name string
		a, b Point
		want Direction
		ok   bool
	}{
		{"North", Pt(3, 5), Pt(3, 1), North, true},
		{"South", Pt(3, 1), Pt(3, 5), South, true},
		{"East", Pt(1, 2), Pt(9, 2), East, true},
		{"West", Pt(9, 2), Pt(1, 2), West, true},
		{"Same", Pt(4, 4), Pt(4, 4), 0, false},
		{"Diagonal", Pt(0, 0), Pt(2, 3), 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := DirectionOf(tc.a, tc.b)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, d)
			}
		})
	}
}

// TestPoint_Add steps in every direction and renders the "x,y" form.
func TestPoint_Add(t *testing.T) {
	p := Pt(5, 5)
	assert.Equal(t, Pt(5, 4), p.Add(North))
	assert.Equal(t, Pt(6, 5), p.Add(East))
	assert.Equal(t, Pt(5, 6), p.Add(South))
	assert.Equal(t, Pt(4, 5), p.Add(West))
	assert.Equal(t, "5,5", p.String())
}

// TestOrientation_Faces verifies which sides each hint marks as interior.
func TestOrientation_Faces(t *testing.T) {
	assert.False(t, Unknown.Resolved())
	for _, d := range Directions {
		assert.False(t, Unknown.Faces(d))
		s := Side(d)
		assert.True(t, s.IsEdge())
		assert.True(t, s.Faces(d))
		assert.False(t, s.Faces(d.Reverse()))
		assert.Equal(t, 1, s.Sides().Len())
	}

	assert.True(t, InteriorSouthEast.IsCorner())
	assert.True(t, InteriorSouthEast.Faces(South))
	assert.True(t, InteriorSouthEast.Faces(East))
	assert.False(t, InteriorSouthEast.Faces(North))
	assert.False(t, InteriorSouthEast.Faces(West))
	assert.Equal(t, 2, InteriorNorthWest.Sides().Len())
	assert.Equal(t, "InteriorNorthWest", InteriorNorthWest.String())
}

// TestRect_Geometry checks Contains, Width, Height and Grow on a closed box.
func TestRect_Geometry(t *testing.T) {
	r := Rect{Min: Pt(1, 1), Max: Pt(5, 4)}
	assert.Equal(t, 5, r.Width())
	assert.Equal(t, 4, r.Height())
	assert.True(t, r.Contains(Pt(1, 1)))
	assert.True(t, r.Contains(Pt(5, 4)))
	assert.False(t, r.Contains(Pt(0, 2)))
	assert.False(t, r.Contains(Pt(3, 5)))

	g := r.Grow(1)
	assert.Equal(t, Pt(0, 0), g.Min)
	assert.Equal(t, Pt(6, 5), g.Max)
}

// TestOrientation_EdgeSide maps edge hints back to directions.
func TestOrientation_EdgeSide(t *testing.T) {
	for _, d := range Directions {
		got, ok := Side(d).EdgeSide()
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := InteriorNorthEast.EdgeSide()
	assert.False(t, ok)
	_, ok = Unknown.EdgeSide()
	assert.False(t, ok)
}
