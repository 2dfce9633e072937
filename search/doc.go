// Package search implements the randomized backtracking engine that
// assembles a dungeon layout from weighted piece templates.
//
// What
//
//   - Solve: depth-first recursive placement. Starting from the origin at
//     (0,0), each step picks an unconnected frontier door (shuffled), draws
//     candidates weighted-without-replacement from a Pool, filters them
//     (exit only in the last slot, door compatibility, single exit, cell
//     overlap, bounding-box span), recurses, and undoes state symmetrically
//     on failure.
//   - Leaf check: with no open doors left, a layout succeeds iff it has
//     exactly MaxRooms pieces, exactly one exit, per-axis span ≤ MaxSpan,
//     and origin→exit distance ≥ MinPath (see dungen/connectivity).
//   - Pool: weighted sampling without replacement via a cumulative-weight
//     prefix walk; every candidate is tried at most once per step.
//   - Offset: aligns a candidate's matching door one unit step across from
//     a frontier door.
//
// Why
//
//	Constrained combinatorial search with pruning. The per-step shuffle and
//	weighted draw vary topology across seeds while keeping every layout
//	reachable; incremental overlap and span checks cut branches that can
//	never satisfy the terminal constraints.
//
// Determinism
//
//	All randomness flows through one *rand.Rand (WithSeed/WithRand; the
//	zero seed maps to a fixed default). Same seed and inputs ⇒ identical
//	plan, iteration count, and diagnostics.
//
// Failure model
//
//	Ordinary constraint misses are the expected backtracking signal, not
//	errors. Only two terminal failures surface: ErrExhausted (full tree
//	explored, retry with another seed if desired) and ErrBudgetExceeded
//	(fatal: the run was aborted as too expensive, not proven impossible).
//
// Complexity
//
//	Worst case exponential in MaxRooms, hard-capped by the iteration
//	budget. Recursion depth is bounded by MaxRooms. One step costs
//	O(P·C) for P candidates of C cells each, plus O(V+E) for the leaf
//	connectivity check.
package search
