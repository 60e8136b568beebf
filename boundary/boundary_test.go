package boundary_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectigrid/boundary"
	"github.com/katalvlaran/rectigrid/lattice"
)

func pts(xy ...int) []lattice.Point {
	out := make([]lattice.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, lattice.Pt(xy[i], xy[i+1]))
	}
	return out
}

// TestNew_RejectsDiagonalEdge reports the offending pair as a structured error.
func TestNew_RejectsDiagonalEdge(t *testing.T) {
	_, err := boundary.New(pts(1, 1, 5, 1, 6, 4, 1, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, boundary.ErrNotAxisAligned)

	var ee *boundary.EdgeError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 1, ee.Index)
	assert.Equal(t, lattice.Pt(5, 1), ee.From)
	assert.Equal(t, lattice.Pt(6, 4), ee.To)
	assert.Contains(t, err.Error(), "edge 1")
}

// TestNew_RejectsDiagonalWrap catches a bad last→first pair.
func TestNew_RejectsDiagonalWrap(t *testing.T) {
	_, err := boundary.New(pts(1, 1, 5, 1, 5, 4))
	var ee *boundary.EdgeError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 2, ee.Index)
	assert.Equal(t, lattice.Pt(1, 1), ee.To)
}

// TestNew_Degenerate accepts empty and single-vertex input.
func TestNew_Degenerate(t *testing.T) {
	for _, vs := range [][]lattice.Point{nil, pts(3, 3)} {
		b, err := boundary.New(vs)
		require.NoError(t, err)
		l := lattice.New()
		b.Materialize(l)
		assert.Equal(t, len(vs), l.Len())
	}
}

// TestMaterialize_Square draws the scenario square.
//
//	#XXX#
//	X...X
//	X...X
//	#XXX#
func TestMaterialize_Square(t *testing.T) {
	b, err := boundary.New(pts(1, 1, 5, 1, 5, 4, 1, 4))
	require.NoError(t, err)
	l := lattice.New()
	b.Materialize(l)

	assert.Equal(t, 4, l.Count(lattice.Vertex))
	assert.Equal(t, 10, l.Count(lattice.Edge))
	assert.Equal(t, 6, l.Count(lattice.Unclassified))
	r, ok := l.Bounds()
	require.True(t, ok)
	assert.Equal(t, lattice.Rect{Min: lattice.Pt(1, 1), Max: lattice.Pt(5, 4)}, r)

	for _, p := range pts(1, 1, 5, 1, 5, 4, 1, 4) {
		assert.Equal(t, lattice.Vertex, l.Kind(p), "vertex %v", p)
	}
	for _, p := range pts(2, 1, 4, 1, 5, 2, 5, 3, 3, 4, 1, 2) {
		assert.Equal(t, lattice.Edge, l.Kind(p), "edge %v", p)
	}
	assert.Equal(t, lattice.Unclassified, l.Kind(lattice.Pt(3, 2)))

	c, _ := l.Cell(lattice.Pt(1, 1))
	assert.Equal(t, lattice.SetOf(lattice.East, lattice.South), c.Links)
	c, _ = l.Cell(lattice.Pt(3, 1))
	assert.Equal(t, lattice.SetOf(lattice.East, lattice.West), c.Links)
}

// TestMaterialize_FirstWinsOnDuplicates keeps Vertex cells when a later edge
// passes through them and tolerates repeated vertices.
func TestMaterialize_FirstWinsOnDuplicates(t *testing.T) {
	b, err := boundary.New(pts(0, 0, 4, 0, 4, 0, 4, 3, 2, 3, 2, 3, 0, 3))
	require.NoError(t, err)
	l := lattice.New()
	b.Materialize(l)

	assert.Equal(t, 5, l.Count(lattice.Vertex))
	assert.Equal(t, lattice.Vertex, l.Kind(lattice.Pt(2, 3)))
	assert.Equal(t, lattice.Edge, l.Kind(lattice.Pt(1, 3)))
	assert.Equal(t, lattice.Edge, l.Kind(lattice.Pt(3, 3)))
	assert.Len(t, b.Loop(), 5)
}

// TestLoop_DropsZeroLengthEdges removes repeats including a closing duplicate.
func TestLoop_DropsZeroLengthEdges(t *testing.T) {
	b, err := boundary.New(pts(1, 1, 1, 1, 5, 1, 5, 4, 1, 4, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 6, b.Len())
	assert.Equal(t, pts(1, 1, 5, 1, 5, 4, 1, 4), b.Loop())
	assert.Len(t, b.Vertices(), 6)
}
