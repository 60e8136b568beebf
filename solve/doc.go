// Package solve runs the whole pipeline in one call: validate and materialize
// the boundary, resolve orientation tags, classify the interior and search for
// the largest vertex-cornered rectangle.
//
// Modes:
//
//   - InteriorOnly (default): the rectangle's inner cells must all be interior.
//   - AnyPair: no interior check; classification is skipped.
//
// Errors:
//
//   - ErrMode: unknown Mode.
//   - boundary.ErrNotAxisAligned (as *boundary.EdgeError): bad input, returned
//     before anything is classified.
//   - orient.ErrInconsistent: the polygon is not simple.
//   - classify.ErrOptionViolation: bad Rule or Propagation.
package solve
