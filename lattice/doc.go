// Package lattice is the sparse cell store every other rectigrid package works on.
//
// What:
//
//   - Point is an integer (column, row) pair; rows grow downward (screen order).
//   - Lattice maps Point → *Cell, holding only classified cells. Anything absent is
//     Unclassified, which doubles as "exterior" once classification has run.
//   - The bounding box of all boundary cells is tracked as cells are marked; it is the
//     classification and search domain. Points outside it are always exterior.
//   - Boundary cells carry an Orientation tag (which side is interior) and the set of
//     directions in which the boundary path continues (Links).
//   - Flood and Components run BFS over 4-neighbors inside a rectangle.
//
// Why:
//
//   - Memory scales with boundary length plus tagged interior cells rather than with
//     the area of the bounding box.
//   - Ordering is never needed, only membership and bounded row-major sweeps.
//
// Invariants:
//
//   - The first classification of a cell wins; later Mark calls are ignored.
//   - InteriorFilled is monotonic and only ever set inside the bounding box.
//   - A resolved Orientation is never overwritten.
//
// Complexity:
//
//   - Mark, Kind, Cell, SetOrientation: O(1) average.
//   - Each, Count over the bounding box: O(W×H).
//   - Flood, Components: O(W×H) time and memory in the worst case.
package lattice
