package boundary

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rectigrid/lattice"
)

// ErrNotAxisAligned indicates two consecutive vertices share neither coordinate.
var ErrNotAxisAligned = errors.New("boundary: consecutive vertices are not axis-aligned")

// EdgeError identifies the offending edge: Index is the position of From in the
// vertex sequence and To is the vertex that follows it (wrapping to the first).
type EdgeError struct {
	Index    int
	From, To lattice.Point
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("%v: edge %d from (%v) to (%v)", ErrNotAxisAligned, e.Index, e.From, e.To)
}

// Unwrap lets errors.Is match ErrNotAxisAligned.
func (e *EdgeError) Unwrap() error { return ErrNotAxisAligned }
