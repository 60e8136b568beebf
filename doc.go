// Package rectigrid classifies the lattice cells of simple rectilinear polygons
// and finds the largest vertex-cornered rectangle lying fully inside them.
//
// 🚀 What is rectigrid?
//
//	A small, dependency-light toolkit that brings together:
//		• Lattice store: sparse coordinate → cell map with a tracked bounding box
//		• Boundary model: validated vertex loops materialized as Vertex/Edge cells
//		• Orientation: per-boundary-cell "which side is inside" tags
//		• Classification: four-ray parity + neighbor propagation
//		• Search: largest rectangle between two vertices with a fully interior body
//
// Under the hood, everything is organized under these subpackages:
//
//	lattice/     Point, Cell, Kind, Direction, Orientation and the sparse Lattice
//	boundary/    vertex loop validation and edge materialization
//	orient/      orientation resolver with explicit transition tables
//	classify/    interior classifier (RunParity or Facing rule)
//	rectsearch/  all-pairs rectangle search
//	vertexio/    "x,y" line reader
//	render/      ASCII and PNG views of a classified lattice
//	solve/       the whole pipeline in one call
//
// Quick ASCII example (zigzag polygon, '#' vertex, 'X' edge, 'o' interior):
//
//	......#XXX#
//	......XoooX
//	.#XXXX#oooX
//	.XooooooooX
//	.#XXXXXX#oX
//	........XoX
//	........#X#
//
// The largest rectangle with a fully interior body spans (2,3) to (9,5): area 24.
//
// Logging is silent by default; see SetLogger.
package rectigrid
