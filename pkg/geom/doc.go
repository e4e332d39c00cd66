// Package geom provides rectangle algebra for calendar layout.
//
// All functions are pure: rectangles are values that are derived, never
// mutated, so the package is safe for concurrent use.
//
// # Splitting
//
// [HSplit] partitions a rectangle into side-by-side parts, [VSplit] into
// stacked parts. Fractions are weights relative to the full extent and need
// not sum to one; whatever remains is trailing gap:
//
//	left, right := geom.MustHSplit2(r, 0.5, 0)
//	parts, err := geom.VSplit(r, 0.2, 0.8)
//
// # Scaling
//
// [RelScale] shrinks or grows a rectangle about an anchor given in
// normalized rectangle-local coordinates, where -1 is the left/top edge,
// 0 the center and 1 the right/bottom edge.
//
// # Pages
//
// [ParsePaper] understands ISO sizes (a0..a9, with a "w" suffix for the
// wide variant) and explicit W:H specifications; [Page] converts millimeters
// to device units at a given DPI.
package geom
