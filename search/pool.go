package search

import (
	"math/rand"

	"github.com/dungenlab/dungen/grid"
)

// Pool draws pieces without replacement, with probability proportional to
// each piece's weight. One Pool serves one search step: the engine drains
// it so every candidate is tried at most once and none is skipped.
type Pool struct {
	pieces []grid.Piece
	total  int
}

// NewPool copies pieces into a fresh Pool and sums their weights.
// Complexity: O(n).
func NewPool(pieces []grid.Piece) *Pool {
	p := &Pool{pieces: append([]grid.Piece(nil), pieces...)}
	for _, pc := range p.pieces {
		p.total += pc.Weight()
	}

	return p
}

// Len returns the number of undrawn pieces.
func (p *Pool) Len() int { return len(p.pieces) }

// Draw removes and returns one piece, chosen with probability
// weight/Σweights: a uniform roll in [0, total) walks the cumulative-weight
// prefix until it lands inside a piece's band. Returns ErrEmptyPool when
// the pool is drained.
// Complexity: O(n) per draw.
func (p *Pool) Draw(rng *rand.Rand) (grid.Piece, error) {
	if len(p.pieces) == 0 {
		return nil, ErrEmptyPool
	}

	roll := rng.Intn(p.total)
	acc := 0
	for i, pc := range p.pieces {
		acc += pc.Weight()
		if roll < acc {
			p.total -= pc.Weight()
			last := len(p.pieces) - 1
			p.pieces[i] = p.pieces[last]
			p.pieces = p.pieces[:last]

			return pc, nil
		}
	}

	// Unreachable while weights are ≥ 1 and total is consistent.
	return nil, ErrEmptyPool
}
