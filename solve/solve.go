package solve

import (
	"fmt"

	"github.com/katalvlaran/rectigrid"
	"github.com/katalvlaran/rectigrid/boundary"
	"github.com/katalvlaran/rectigrid/classify"
	"github.com/katalvlaran/rectigrid/lattice"
	"github.com/katalvlaran/rectigrid/orient"
	"github.com/katalvlaran/rectigrid/rectsearch"
)

// Run solves one polygon. Validation happens before any lattice work, so a bad
// edge never reaches the classifier.
func Run(vertices []lattice.Point, opts Options) (*Result, error) {
	if opts.Mode != InteriorOnly && opts.Mode != AnyPair {
		return nil, fmt.Errorf("%w: %d", ErrMode, int(opts.Mode))
	}
	b, err := boundary.New(vertices)
	if err != nil {
		return nil, err
	}
	log := rectigrid.Logger()

	if opts.Mode == AnyPair {
		best := rectsearch.LargestAny(b.Vertices())
		log.Debug("solve: any-pair search", "vertices", b.Len(), "area", best.Area)
		return &Result{Area: best.Area, Best: best}, nil
	}

	res := &Result{Lattice: lattice.New()}
	b.Materialize(res.Lattice)

	if res.Orient, err = orient.Resolve(res.Lattice, b); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	res.Classify, err = classify.Classify(res.Lattice,
		classify.WithRule(opts.Rule),
		classify.WithPropagation(opts.Propagation))
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	res.Best = rectsearch.Largest(res.Lattice, b.Vertices())
	res.Area = res.Best.Area
	log.Debug("solve: interior search",
		"vertices", b.Len(),
		"interior", res.Lattice.Count(lattice.InteriorFilled),
		"area", res.Area)

	return res, nil
}
