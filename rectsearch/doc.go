// Package rectsearch finds the largest axis-aligned rectangle whose opposite
// corners are two polygon vertices.
//
// What:
//
//   - Area(a, b) is the inclusive lattice area (|dx|+1)·(|dy|+1), or 0 when the
//     two points share an x or y coordinate.
//   - Largest enumerates every unordered vertex pair and keeps the biggest
//     rectangle whose strictly-inner cells are all InteriorFilled. Cells on the
//     rectangle's own border are not checked.
//   - LargestAny drops the interior check and works on bare vertices.
//
// Ties keep the first pair found in index order (i < j).
//
// Complexity:
//
//   - Largest: O(N²) pairs, each O(dx·dy) for the coverage scan.
//   - LargestAny: O(N²).
package rectsearch
