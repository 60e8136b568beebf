// Package boundary holds the ordered vertex loop of a rectilinear polygon and
// writes it into a lattice.Lattice as Vertex and Edge cells.
//
// What:
//
//   - New validates that every consecutive pair of vertices, including the wrap
//     from last to first, shares a row or a column.
//   - Materialize marks each vertex as a Vertex cell and every lattice point strictly
//     between consecutive vertices as an Edge cell. The first classification of a
//     cell wins silently, so repeated points are tolerated. Each boundary cell also
//     records the directions in which the path leaves it (lattice.Cell.Links).
//   - Loop returns the vertex sequence with zero-length edges removed, the form the
//     orientation resolver walks.
//
// Errors:
//
//   - ErrNotAxisAligned (wrapped in *EdgeError): a consecutive pair shares neither
//     coordinate. Validation runs before anything touches a lattice.
//
// Complexity:
//
//   - New:         O(N) for N vertices.
//   - Materialize: O(N + P) where P is the perimeter in cells.
package boundary
