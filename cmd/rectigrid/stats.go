package main

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/rectigrid/lattice"
	"github.com/katalvlaran/rectigrid/solve"
)

// writeStats prints the run summary with locale-grouped numbers.
func writeStats(w io.Writer, vertices, skipped int, res *solve.Result) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "vertices:     %d (%d lines skipped)\n", vertices, skipped)
	if res.Lattice == nil {
		return
	}
	l := res.Lattice
	if box, ok := l.Bounds(); ok {
		p.Fprintf(w, "bounds:       %d x %d\n", box.Width(), box.Height())
	}
	p.Fprintf(w, "boundary:     %d\n", l.Count(lattice.Vertex)+l.Count(lattice.Edge))
	p.Fprintf(w, "tagged:       %d\n", res.Orient.Tagged)
	p.Fprintf(w, "interior:     %d (%d by rays, %d propagated)\n",
		l.Count(lattice.InteriorFilled), res.Classify.Interior, res.Classify.Propagated)
	p.Fprintf(w, "regions:      %d\n", len(res.InteriorRegions()))
}
