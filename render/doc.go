// Package render draws a classified lattice, either as text or as a PNG.
//
// ASCII writes one character per cell, row by row from the top of the bounding
// box:
//
//	#  vertex
//	X  edge
//	o  interior
//	.  anything else
//
// Image paints one pixel per cell from a Palette, optionally tints a highlighted
// rectangle by blending in CIE-Lab space, then upscales with nearest-neighbor
// sampling so cells stay crisp.
package render
