package search

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/dungenlab/dungen/connectivity"
	"github.com/dungenlab/dungen/grid"
)

// solver owns the mutable state of one in-flight run. A single depth-first
// branch is active at a time; accept and undo are exactly symmetric, so no
// branch ever observes another branch's mutations.
type solver struct {
	origin grid.Piece
	exit   grid.Piece
	pieces []grid.Piece // candidate templates, exit included
	opts   Options
	rng    *rand.Rand

	occupied   mapset.Set[grid.Cell]
	frontier   []grid.Door
	plan       []Placement
	box        box
	exitPlaced bool
	exitCell   grid.Cell
	iterations int
	pathLen    int
}

// box is the running inclusive extent of the occupied set. It always equals
// the min/max over all occupied cells: undo restores the saved copy.
type box struct {
	minX, maxX, minY, maxY int
	seeded                 bool
}

func (b *box) extend(c grid.Cell) {
	if !b.seeded {
		b.minX, b.maxX, b.minY, b.maxY = c.X, c.X, c.Y, c.Y
		b.seeded = true

		return
	}
	if c.X < b.minX {
		b.minX = c.X
	}
	if c.X > b.maxX {
		b.maxX = c.X
	}
	if c.Y < b.minY {
		b.minY = c.Y
	}
	if c.Y > b.maxY {
		b.maxY = c.Y
	}
}

func (b box) spanX() int { return b.maxX - b.minX }
func (b box) spanY() int { return b.maxY - b.minY }

// Solve assembles a layout of exactly MaxRooms pieces: the origin fixed at
// (0,0), exactly one exit, all doors connected, bounding box within MaxSpan
// per axis, and origin→exit distance ≥ MinPath.
//
// pool holds the intermediate piece templates; exit joins the candidate set
// internally and is identified by reference, so it must not also appear in
// pool. Returns the accepted plan in placement order (origin excluded), or:
//
//   - ErrOptionViolation  for invalid options
//   - ErrNilPiece         when origin or exit is nil
//   - ErrExhausted        when every candidate ordering fails (retryable)
//   - ErrBudgetExceeded   when the iteration budget runs out (fatal)
func Solve(origin, exit grid.Piece, pool []grid.Piece, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if origin == nil || exit == nil {
		return nil, ErrNilPiece
	}

	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(0)
	}

	candidates := make([]grid.Piece, 0, len(pool)+1)
	candidates = append(candidates, pool...)
	candidates = append(candidates, exit)

	s := &solver{
		origin:   origin,
		exit:     exit,
		pieces:   candidates,
		opts:     o,
		rng:      rng,
		occupied: mapset.New[grid.Cell](),
		plan:     make([]Placement, 0, o.MaxRooms-1),
	}

	// Seed with the origin at (0,0): depth 1, frontier = its doors.
	for _, c := range origin.Cells(grid.Cell{}) {
		s.occupied.Put(c)
		s.box.extend(c)
	}
	s.frontier = origin.Doors(grid.Cell{})

	ok, err := s.place(1)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w after %d iterations", ErrExhausted, s.iterations)
	}

	res := &Result{
		Plan:       s.plan,
		Iterations: s.iterations,
		PathLength: s.pathLen,
		ExitAt:     s.exitCell,
		Bounds: Extent{
			Min: grid.Cell{X: s.box.minX, Y: s.box.minY},
			Max: grid.Cell{X: s.box.maxX, Y: s.box.maxY},
		},
	}

	return res, nil
}

// place is one search step at the given depth (= pieces accepted so far).
// Returns (true, nil) on global success, (false, nil) when this subtree is
// exhausted, and a non-nil error only for the fatal budget abort.
func (s *solver) place(depth int) (bool, error) {
	s.iterations++
	if s.iterations > s.opts.Budget {
		return false, fmt.Errorf("%w after %d iterations", ErrBudgetExceeded, s.iterations)
	}

	shuffleDoors(s.frontier, s.rng)

	if len(s.frontier) == 0 {
		return s.leaf(depth), nil
	}

	door := s.frontier[0]
	// Snapshot the frontier before trying candidates: deeper steps shuffle
	// and splice the shared slice, so undo restores this exact copy.
	savedFrontier := append([]grid.Door(nil), s.frontier...)
	pool := NewPool(s.pieces)
	for pool.Len() > 0 {
		cand, err := pool.Draw(s.rng)
		if err != nil {
			return false, err
		}
		if !s.slotAllows(cand, depth) {
			continue
		}
		if !cand.HasDoor(door.Matching()) {
			continue
		}
		if cand == s.exit && s.exitPlaced {
			continue
		}
		off, err := Offset(door, cand)
		if err != nil {
			return false, err
		}
		cells := cand.Cells(off)
		if s.overlaps(cells) {
			continue
		}

		// Provisional bounding-box extension; revert and prune when the
		// shape tolerance would be violated.
		saved := s.box
		for _, c := range cells {
			s.box.extend(c)
		}
		if s.box.spanX() > s.opts.MaxSpan || s.box.spanY() > s.opts.MaxSpan {
			s.box = saved
			continue
		}

		s.accept(cand, off, door, cells)

		ok, err := s.place(depth + 1)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}

		s.undo(cand, cells, savedFrontier, saved)
	}

	return false, nil
}

// slotAllows enforces the exit-only-at-last-slot rule: the piece accepted
// at depth d becomes piece d+1, so the exit fits only when d == MaxRooms-1.
func (s *solver) slotAllows(p grid.Piece, depth int) bool {
	switch {
	case depth >= s.opts.MaxRooms:
		return false
	case depth == s.opts.MaxRooms-1:
		return p == s.exit
	default:
		return p != s.exit
	}
}

// leaf validates a closed layout: no open doors remain, so succeed iff the
// room count, single exit, shape tolerance, and minimum path all hold.
func (s *solver) leaf(depth int) bool {
	if depth != s.opts.MaxRooms {
		return false
	}
	if !s.exitPlaced {
		return false
	}
	if s.box.spanX() > s.opts.MaxSpan || s.box.spanY() > s.opts.MaxSpan {
		return false
	}
	dist, err := connectivity.Distance(s.links(), grid.Cell{}, s.exitCell)
	if err != nil || dist < s.opts.MinPath {
		return false
	}
	s.pathLen = dist

	return true
}

// overlaps reports whether any of cells is already occupied.
func (s *solver) overlaps(cells []grid.Cell) bool {
	for _, c := range cells {
		if s.occupied.Has(c) {
			return true
		}
	}

	return false
}

// accept commits the candidate: occupy its cells, swap the connected door
// out of the frontier, append the piece's remaining doors, record the
// placement, and update exit bookkeeping.
func (s *solver) accept(p grid.Piece, off grid.Cell, via grid.Door, cells []grid.Cell) {
	for _, c := range cells {
		s.occupied.Put(c)
	}

	// Drop via (index 0 after the shuffle) by swapping in the last door.
	last := len(s.frontier) - 1
	s.frontier[0] = s.frontier[last]
	s.frontier = s.frontier[:last]

	mate := via.Counterpart()
	for _, d := range p.Doors(off) {
		if d == mate {
			continue
		}
		s.frontier = append(s.frontier, d)
	}

	s.plan = append(s.plan, Placement{Piece: p, Offset: off, Via: via})
	if p == s.exit {
		s.exitPlaced = true
		s.exitCell = mate.At
	}
}

// undo reverts accept exactly: pop the placement, restore exit bookkeeping,
// reinstate the caller's frontier snapshot, free the cells, and restore the
// saved bounding box. The snapshot is copied so the next sibling cannot
// mutate it through the shared backing array.
func (s *solver) undo(p grid.Piece, cells []grid.Cell, frontier []grid.Door, saved box) {
	s.plan = s.plan[:len(s.plan)-1]
	if p == s.exit {
		s.exitPlaced = false
		s.exitCell = grid.Cell{}
	}
	s.frontier = append([]grid.Door(nil), frontier...)
	for _, c := range cells {
		s.occupied.Remove(c)
	}
	s.box = saved
}

// links builds the door-connection graph of the current plan: one link per
// accepted connection, plus pairwise links between a piece's own door cells
// (a room is internally traversable). For single-cell pieces the intra
// links collapse to self-links and are skipped by the validator.
func (s *solver) links() []connectivity.Link {
	out := make([]connectivity.Link, 0, 2*len(s.plan))
	for _, pl := range s.plan {
		out = append(out, connectivity.Link{A: pl.Via.At, B: pl.Via.Counterpart().At})
	}
	out = append(out, intraLinks(s.origin, grid.Cell{})...)
	for _, pl := range s.plan {
		out = append(out, intraLinks(pl.Piece, pl.Offset)...)
	}

	return out
}

// intraLinks joins the door cells of one placed piece pairwise.
func intraLinks(p grid.Piece, off grid.Cell) []connectivity.Link {
	doors := p.Doors(off)
	if len(doors) < 2 {
		return nil
	}
	var out []connectivity.Link
	for i := 0; i < len(doors); i++ {
		for j := i + 1; j < len(doors); j++ {
			if doors[i].At == doors[j].At {
				continue
			}
			out = append(out, connectivity.Link{A: doors[i].At, B: doors[j].At})
		}
	}

	return out
}
