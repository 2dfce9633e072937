// Package dungen assembles grid-based dungeon layouts by connecting
// weighted tile pieces through directional doors, using randomized
// backtracking search under global shape and connectivity constraints.
//
// What's inside
//
//	grid/         — cells, directions, doors, and the Piece contract
//	search/       — the backtracking placement engine (the core)
//	connectivity/ — breadth-first origin→exit distance validation
//	dungeon/      — the run controller, Materializer contract, piece library
//	render/       — a terminal Materializer (colored ASCII canvas)
//	server/       — JSON layout snapshots and a websocket broadcast hub
//	cmd/dungen    — one-shot CLI generator
//	cmd/dungensrv — layout-streaming websocket server
//
// A run places a designated origin piece at (0,0), then grows the layout
// door by door: candidates are drawn with probability proportional to
// their weight, filtered against overlap and a bounding-box tolerance, and
// undone on backtrack. A closed layout succeeds only with the exact room
// count, exactly one exit, and a long-enough shortest path from origin to
// exit. Failure is cheap and expected; the iteration budget turns runaway
// searches into a reported abort instead of a hang.
//
// Every run is synchronous, single-threaded, and deterministic for a given
// seed: same seed, same dungeon.
//
//	go get github.com/dungenlab/dungen
package dungen
