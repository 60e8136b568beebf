package render

import (
	"strings"

	"github.com/katalvlaran/rectigrid/lattice"
)

var glyphs = [...]byte{
	lattice.Unclassified:   '.',
	lattice.Vertex:         '#',
	lattice.Edge:           'X',
	lattice.InteriorFilled: 'o',
}

// ASCII renders l's bounding box grown by margin cells on every side, one line
// per row, each line ending in '\n'. An empty lattice renders as "".
func ASCII(l *lattice.Lattice, margin int) string {
	box, ok := l.Bounds()
	if !ok {
		return ""
	}
	if margin > 0 {
		box = box.Grow(margin)
	}

	var sb strings.Builder
	sb.Grow((box.Width() + 1) * box.Height())
	for y := box.Min.Y; y <= box.Max.Y; y++ {
		for x := box.Min.X; x <= box.Max.X; x++ {
			sb.WriteByte(glyph(l.Kind(lattice.Pt(x, y))))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func glyph(k lattice.Kind) byte {
	if int(k) >= len(glyphs) {
		return '?'
	}
	return glyphs[k]
}
