package dungeon

import (
	"github.com/dungenlab/dungen/grid"
	"github.com/dungenlab/dungen/search"
)

// Materializer receives the accepted layout of a successful run. A nil
// Materializer is allowed in Generate: the run then only produces a plan.
type Materializer interface {
	// Reset discards any previously materialized state. Called exactly
	// once, at the start of a run.
	Reset()
	// PlacePiece materializes one piece at the given grid offset. The
	// origin always arrives first, at offset (0,0).
	PlacePiece(p grid.Piece, offset grid.Cell)
	// PlaceConnector materializes the connector joining two pieces through
	// d; d.Horizontal() selects its orientation.
	PlaceConnector(d grid.Door)
}

// Generator is a reusable generation configuration. The piece templates
// and options are read-only during a run; runs are independent and carry
// no state over.
type Generator struct {
	origin grid.Piece
	exit   grid.Piece
	pool   []grid.Piece
	opts   []search.Option
}

// New builds a Generator. pool holds the intermediate templates; exit must
// not appear in it (it is identified by reference).
func New(origin, exit grid.Piece, pool []grid.Piece, opts ...search.Option) *Generator {
	return &Generator{
		origin: origin,
		exit:   exit,
		pool:   append([]grid.Piece(nil), pool...),
		opts:   opts,
	}
}

// Generate runs one attempt: reset, materialize the origin, search, then
// materialize the plan in placement order. On failure the error from
// search.Solve is returned and nothing beyond the origin is materialized.
func (g *Generator) Generate(m Materializer, opts ...search.Option) (*search.Result, error) {
	if m != nil {
		m.Reset()
		m.PlacePiece(g.origin, grid.Cell{})
	}

	all := make([]search.Option, 0, len(g.opts)+len(opts))
	all = append(all, g.opts...)
	all = append(all, opts...)

	res, err := search.Solve(g.origin, g.exit, g.pool, all...)
	if err != nil {
		return nil, err
	}

	if m != nil {
		for _, pl := range res.Plan {
			m.PlacePiece(pl.Piece, pl.Offset)
			m.PlaceConnector(pl.Via)
		}
	}

	return res, nil
}
