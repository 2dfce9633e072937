package dungeon

import "github.com/dungenlab/dungen/grid"

// BasicSet returns the stock piece library: a two-door origin, a
// single-west-door exit, and a weighted pool of halls, corners, dead-end
// cells, junctions, and a chamber. Halls dominate the draw so layouts read
// as corridors punctuated by rooms; the caps let the search close stray
// frontier doors before the exit slot.
func BasicSet() (origin, exit grid.Piece, pool []grid.Piece) {
	origin = grid.Unit("origin", 1, grid.East, grid.North)
	exit = grid.Unit("exit", 1, grid.West)
	pool = []grid.Piece{
		grid.Unit("hall_ew", 6, grid.West, grid.East),
		grid.Unit("hall_ns", 6, grid.North, grid.South),
		grid.Unit("corner_ne", 3, grid.North, grid.East),
		grid.Unit("corner_nw", 3, grid.North, grid.West),
		grid.Unit("corner_se", 3, grid.South, grid.East),
		grid.Unit("corner_sw", 3, grid.South, grid.West),
		grid.Unit("cell_n", 3, grid.North),
		grid.Unit("cell_s", 3, grid.South),
		grid.Unit("cell_e", 3, grid.East),
		grid.Unit("cell_w", 3, grid.West),
		grid.Unit("tee_new", 1, grid.North, grid.East, grid.West),
		grid.Unit("tee_sew", 1, grid.South, grid.East, grid.West),
		grid.Unit("chamber", 1, grid.North, grid.South, grid.East, grid.West),
	}

	return origin, exit, pool
}
