// Package orient gives every boundary cell of a rectilinear polygon an orientation
// tag saying which side faces the interior.
//
// What:
//
//   - Derive inspects the four diagonal neighbors of a corner vertex. A neighbor
//     outside the bounding box, or a non-boundary cell with a free ray to the box
//     edge, counts as outside. Three outside leave the quadrant between the legs as
//     the interior (convex corner). Exactly one outside, lying between the legs,
//     marks a concave corner; its tag names the opposite quadrant.
//   - Resolve anchors at the first vertex in boundary order that Derive can tag,
//     then walks the loop once, carrying the tag cell by cell:
//     Carry maps (current tag, direction of travel) to the next cell's edge tag,
//     Turn maps (incoming side, incoming travel, outgoing travel) to a corner tag.
//     Both are explicit tables. First assignment wins.
//
// Why:
//
//   - Ray parity is ambiguous where a ray runs along an edge and grazes a corner.
//     The tags give the classifier an exact local answer: the first boundary cell a
//     ray meets tells whether the ray started inside.
//
// Errors:
//
//   - ErrInconsistent: a tag/direction pair absent from the tables. Unreachable for
//     simple rectilinear polygons; treated as a defect and never retried.
//
// Complexity:
//
//   - Resolve: O(P) for the walk plus O(W+H) per Derive attempt.
package orient
