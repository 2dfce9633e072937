// Package grid provides the geometric vocabulary for piece-based dungeon
// assembly: integer cells, the four cardinal directions with their matching
// pairs, directional doors, and the Piece contract that the search engine
// consumes.
//
// What
//
//   - Cell: immutable integer (x,y) coordinate with Add/Sub arithmetic.
//   - Direction: North/South/East/West; North↔South and East↔West match.
//   - Door: a directional connector at a world cell; Counterpart() yields
//     the door that would connect to it, one unit step away and facing back.
//   - Piece: read-only geometry queries (weight, door lookup by side,
//     doors and occupied cells at a given offset).
//   - Template: the standard validated Piece implementation; Unit() is a
//     shorthand for single-cell templates.
//
// Why
//
//	The search engine in dungen/search only decides which pieces go where;
//	it never owns geometry. Keeping the contract here lets callers supply
//	their own piece implementations (loaded boards, scripted sets) while the
//	engine stays agnostic.
//
// Coordinate convention
//
//	North is +Y, East is +X. Materializers that draw with the screen Y axis
//	pointing down must flip rows themselves.
//
// Errors
//
//   - ErrBadWeight     piece weight below 1.
//   - ErrNoCells       template with no footprint.
//   - ErrDoorOffPiece  door anchored outside the footprint.
package grid
