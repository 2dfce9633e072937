// Package render provides a reference Materializer: it rasterizes a
// successful generation run onto a rune canvas for terminal display.
//
// Pieces land on a doubled lattice (grid cell (x,y) → canvas (2x,2y)) so
// the connector between two adjacent pieces gets its own canvas cell.
// Connectors draw as '─' or '│' depending on the connecting door's
// orientation; the origin renders as '@', the exit as '⌂', everything else
// as '□'. Cells of one multi-cell piece are joined on the canvas so the
// piece reads as a single shape.
//
// String returns the plain canvas (stable, used in tests); Colored applies
// gookit/color styles per tile class.
package render
