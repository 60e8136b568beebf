package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/rectigrid/lattice"
)

var (
	// ErrEmptyLattice is returned when there is nothing to draw.
	ErrEmptyLattice = errors.New("render: lattice has no bounds")
	// ErrOptionViolation is returned for a non-positive scale or negative margin.
	ErrOptionViolation = errors.New("render: invalid image options")
)

// Palette maps cell kinds to colors. Highlight is blended over cells inside
// ImageOptions.Highlight with weight HighlightMix in [0,1].
type Palette struct {
	Background   colorful.Color
	Vertex       colorful.Color
	Edge         colorful.Color
	Interior     colorful.Color
	Highlight    colorful.Color
	HighlightMix float64
}

// DefaultPalette is a dark background with a red boundary and green interior.
func DefaultPalette() Palette {
	return Palette{
		Background:   mustHex("#1e1e24"),
		Vertex:       mustHex("#e63946"),
		Edge:         mustHex("#2a9d8f"),
		Interior:     mustHex("#8ecae6"),
		Highlight:    mustHex("#ffb703"),
		HighlightMix: 0.55,
	}
}

// ImageOptions controls Image. Scale is the side of one cell in pixels.
type ImageOptions struct {
	Scale     int
	Margin    int
	Palette   Palette
	Highlight *lattice.Rect
}

// DefaultImageOptions returns 8px cells, a one-cell margin and DefaultPalette.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{Scale: 8, Margin: 1, Palette: DefaultPalette()}
}

// Image paints l's bounding box, grown by opts.Margin, into an NRGBA image of
// (W·Scale)×(H·Scale) pixels.
func Image(l *lattice.Lattice, opts ImageOptions) (*image.NRGBA, error) {
	if opts.Scale < 1 || opts.Margin < 0 {
		return nil, fmt.Errorf("%w: scale %d, margin %d", ErrOptionViolation, opts.Scale, opts.Margin)
	}
	box, ok := l.Bounds()
	if !ok {
		return nil, ErrEmptyLattice
	}
	box = box.Grow(opts.Margin)

	pal := opts.Palette
	img := imaging.New(box.Width(), box.Height(), pal.Background)
	for y := box.Min.Y; y <= box.Max.Y; y++ {
		for x := box.Min.X; x <= box.Max.X; x++ {
			p := lattice.Pt(x, y)
			c := pal.cell(l.Kind(p))
			if opts.Highlight != nil && opts.Highlight.Contains(p) {
				c = c.BlendLab(pal.Highlight, pal.HighlightMix).Clamped()
			}
			img.Set(x-box.Min.X, y-box.Min.Y, c)
		}
	}
	if opts.Scale == 1 {
		return img, nil
	}

	return imaging.Resize(img, box.Width()*opts.Scale, box.Height()*opts.Scale, imaging.NearestNeighbor), nil
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path as PNG regardless of the path's extension.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err = WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

func (p Palette) cell(k lattice.Kind) colorful.Color {
	switch k {
	case lattice.Vertex:
		return p.Vertex
	case lattice.Edge:
		return p.Edge
	case lattice.InteriorFilled:
		return p.Interior
	}
	return p.Background
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
