// Package classify decides, for every non-boundary cell in a lattice's bounding
// box, whether it lies inside the polygon, tagging interior cells InteriorFilled.
//
// What:
//
//	Phase 1, ray pass. For each Unclassified cell cast four rays (left, right, up,
//	down) to the edge of the bounding box. A ray that meets no boundary cell proves
//	the cell exterior. Otherwise the Rule decides:
//	  - RunParity: each maximal run of boundary cells along a ray is one crossing;
//	    the first ray with an odd count makes the cell interior.
//	  - Facing: the first boundary cell each ray meets is asked, through its
//	    orientation tag, whether its side facing the cell is interior. Falls back
//	    to RunParity when that cell carries no tag.
//
//	Phase 2, neighbor propagation. A row-major sweep marks every still-Unclassified
//	cell with an InteriorFilled orthogonal neighbor. One sweep by default
//	(SinglePass); FixedPoint repeats until a sweep changes nothing.
//
// Why:
//
//   - RunParity needs nothing but the boundary cells and reproduces the classic
//     behavior, including its blind spot: a run the ray merely grazes still counts,
//     so deep pockets can be filled by mistake.
//   - Facing uses the tags from package orient and is exact on simple polygons.
//
// Options:
//
//   - WithRule(RunParity | Facing)
//   - WithPropagation(SinglePass | FixedPoint)
//
// Errors:
//
//   - ErrOptionViolation: an unknown Rule or Propagation value.
//
// Complexity:
//
//   - Ray pass: O(W·H·(W+H)) over a W×H bounding box.
//   - Propagation: O(W·H) per sweep.
package classify
