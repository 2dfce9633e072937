// Package dungeon orchestrates one generation run: it resets the
// materializer, places the origin at (0,0), invokes the backtracking
// search, and — only on global success — hands the accepted plan to the
// materializer in placement order.
//
// What
//
//   - Materializer: the external collaborator that turns accepted
//     placements into something visible or usable. The controller calls
//     Reset once at the start of a run, PlacePiece for the origin and each
//     accepted piece, and PlaceConnector once per accepted connection (the
//     connector's orientation comes from the door's Horizontal property).
//   - Generator: a reusable configuration (origin, exit, weighted pool,
//     search options); each Generate call is an independent synchronous run.
//   - BasicSet: a stock weighted library of single-cell corridor and room
//     templates for demos and tests.
//
// Failure model
//
//	A failed run materializes nothing beyond the origin: old state is
//	cleared only at the start of a run, never mid-failure, and the plan is
//	materialized only after the search succeeds as a whole. The caller
//	decides whether to retry (ErrExhausted) or give up (ErrBudgetExceeded).
package dungeon
