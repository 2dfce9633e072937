// Package search defines tunable options, sentinel errors, and result types
// for the backtracking placement engine.
package search

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/dungenlab/dungen/grid"
)

// Default configuration values, chosen to produce a winding dungeon that a
// depth-first search can still assemble within one budget.
const (
	// DefaultMaxRooms is the target accepted-piece count including the origin.
	DefaultMaxRooms = 25
	// DefaultBudget bounds the total number of search steps per run.
	DefaultBudget = 1500
	// DefaultMaxSpan bounds the bounding-box extent per axis (max - min).
	DefaultMaxSpan = 7
	// DefaultMinPath is the minimum origin→exit distance in door connections.
	DefaultMinPath = 6
)

// Sentinel errors for search execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNilPiece is returned when the origin or exit piece is nil.
	ErrNilPiece = errors.New("search: origin and exit pieces are required")

	// ErrEmptyPool signals a draw from an exhausted Pool. The engine's loop
	// invariant makes this unreachable; seeing it means a logic error.
	ErrEmptyPool = errors.New("search: draw from an empty pool")

	// ErrNoDoorOnSide signals an Offset call for a piece lacking a door in
	// the required direction; the engine checks HasDoor first.
	ErrNoDoorOnSide = errors.New("search: candidate has no door facing the required direction")

	// ErrBudgetExceeded is the fatal abort raised when the iteration budget
	// runs out mid-search. Distinct from ErrExhausted: the search tree was
	// not fully explored, it was too expensive to explore.
	ErrBudgetExceeded = errors.New("search: iteration budget exceeded")

	// ErrExhausted is returned when every candidate ordering failed the
	// constraints; the caller may retry with a different seed.
	ErrExhausted = errors.New("search: all candidate orderings exhausted")
)

// Option configures Solve via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds the tunable parameters of one generation run. All fields
// are read-only during the run.
type Options struct {
	// MaxRooms is the exact accepted-piece count (origin included) a
	// successful run must reach.
	MaxRooms int

	// Budget is the iteration budget; exceeding it aborts the run with
	// ErrBudgetExceeded.
	Budget int

	// MaxSpan bounds the occupied bounding box per axis: max-min ≤ MaxSpan.
	MaxSpan int

	// MinPath is the minimum breadth-first distance, in door connections,
	// from the origin cell to the exit's connecting cell.
	MinPath int

	// Rand drives frontier shuffling and weighted draws. Nil selects the
	// deterministic default stream (seed policy as in WithSeed(0)).
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the package defaults and no RNG
// (Solve falls back to the deterministic default stream).
func DefaultOptions() Options {
	return Options{
		MaxRooms: DefaultMaxRooms,
		Budget:   DefaultBudget,
		MaxSpan:  DefaultMaxSpan,
		MinPath:  DefaultMinPath,
		Rand:     nil,
		err:      nil,
	}
}

// WithMaxRooms sets the target room count. n < 2 (origin plus exit is the
// smallest layout) is invalid → ErrOptionViolation.
func WithMaxRooms(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: MaxRooms must be at least 2 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRooms = n
	}
}

// WithIterationBudget sets the iteration budget. n < 1 is invalid.
func WithIterationBudget(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Budget must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Budget = n
	}
}

// WithMaxSpan sets the per-axis bounding-box tolerance. n < 1 is invalid.
func WithMaxSpan(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxSpan must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSpan = n
	}
}

// WithMinPathLength sets the minimum origin→exit connection distance.
// n == 0 disables the check; n < 0 is invalid.
func WithMinPathLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MinPath cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MinPath = n
	}
}

// WithSeed selects a deterministic RNG stream. Seed 0 maps to a fixed
// default seed so the zero value still reproduces.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Nil is invalid; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// Placement is one accepted (piece, offset, connecting-door) record.
// Via is the frontier door on the already-placed layout that the piece
// connected to; the piece's own matching door sits at Via.Counterpart().
type Placement struct {
	Piece  grid.Piece
	Offset grid.Cell
	Via    grid.Door
}

// Extent is the inclusive bounding box of the occupied cells.
type Extent struct {
	Min, Max grid.Cell
}

// SpanX returns the X-axis extent (max - min).
func (e Extent) SpanX() int { return e.Max.X - e.Min.X }

// SpanY returns the Y-axis extent (max - min).
func (e Extent) SpanY() int { return e.Max.Y - e.Min.Y }

// Result describes a successful run. Plan lists the accepted placements in
// acceptance order, excluding the origin (which is always at offset 0,0).
type Result struct {
	// Plan has exactly MaxRooms-1 entries on success.
	Plan []Placement
	// Iterations is the number of search steps consumed.
	Iterations int
	// PathLength is the origin→exit distance in door connections.
	PathLength int
	// ExitAt is the exit piece's connecting-door cell.
	ExitAt grid.Cell
	// Bounds is the final occupied bounding box.
	Bounds Extent
}
