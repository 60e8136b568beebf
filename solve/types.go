package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rectigrid/classify"
	"github.com/katalvlaran/rectigrid/lattice"
	"github.com/katalvlaran/rectigrid/orient"
	"github.com/katalvlaran/rectigrid/rectsearch"
)

// ErrMode is returned for an unknown Mode.
var ErrMode = errors.New("solve: unknown mode")

// Mode selects which rectangles qualify.
type Mode int

const (
	// InteriorOnly requires every inner cell to be InteriorFilled.
	InteriorOnly Mode = iota
	// AnyPair accepts every non-degenerate vertex pair.
	AnyPair
)

func (m Mode) String() string {
	switch m {
	case InteriorOnly:
		return "interior"
	case AnyPair:
		return "any"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps "interior" or "any" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "interior", "":
		return InteriorOnly, nil
	case "any":
		return AnyPair, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrMode, s)
}

// Options configures Run.
type Options struct {
	Mode        Mode
	Rule        classify.Rule
	Propagation classify.Propagation
}

// DefaultOptions returns InteriorOnly with the classifier defaults.
func DefaultOptions() Options {
	c := classify.DefaultOptions()
	return Options{Mode: InteriorOnly, Rule: c.Rule, Propagation: c.Propagation}
}

// Result is everything a run produced. Lattice is nil in AnyPair mode.
type Result struct {
	Area     int
	Best     rectsearch.Result
	Lattice  *lattice.Lattice
	Orient   orient.Stats
	Classify classify.Stats
}

// InteriorRegions returns the connected regions of interior cells, or nil when
// no lattice was built.
func (r *Result) InteriorRegions() [][]lattice.Point {
	if r.Lattice == nil {
		return nil
	}
	return r.Lattice.InteriorRegions()
}
