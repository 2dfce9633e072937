package server

import (
	"encoding/json"

	"github.com/dungenlab/dungen/grid"
	"github.com/dungenlab/dungen/search"
)

// CellSnapshot is one occupied grid cell.
type CellSnapshot struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RoomSnapshot is one materialized piece.
type RoomSnapshot struct {
	Name  string         `json:"name"`
	Cells []CellSnapshot `json:"cells"`
	Exit  bool           `json:"exit,omitempty"`
}

// ConnectorSnapshot is one door connection between two pieces. X/Y address
// the frontier-door cell; the connector joins it to the next cell in the
// stated orientation.
type ConnectorSnapshot struct {
	X          int  `json:"x"`
	Y          int  `json:"y"`
	Horizontal bool `json:"horizontal"`
}

// Snapshot describes one successful generation run.
type Snapshot struct {
	Seed       int64               `json:"seed"`
	Rooms      []RoomSnapshot      `json:"rooms"`
	Connectors []ConnectorSnapshot `json:"connectors"`
	PathLength int                 `json:"pathLength"`
	Iterations int                 `json:"iterations"`
}

// BuildSnapshot flattens a run into its wire form. The origin room comes
// first, mirroring materialization order.
func BuildSnapshot(origin, exit grid.Piece, res *search.Result, seed int64) Snapshot {
	s := Snapshot{
		Seed:       seed,
		Rooms:      make([]RoomSnapshot, 0, len(res.Plan)+1),
		Connectors: make([]ConnectorSnapshot, 0, len(res.Plan)),
		PathLength: res.PathLength,
		Iterations: res.Iterations,
	}

	s.Rooms = append(s.Rooms, roomSnapshot(origin, grid.Cell{}, false))
	for _, pl := range res.Plan {
		s.Rooms = append(s.Rooms, roomSnapshot(pl.Piece, pl.Offset, pl.Piece == exit))
		s.Connectors = append(s.Connectors, ConnectorSnapshot{
			X:          pl.Via.At.X,
			Y:          pl.Via.At.Y,
			Horizontal: pl.Via.Horizontal(),
		})
	}

	return s
}

func roomSnapshot(p grid.Piece, offset grid.Cell, exit bool) RoomSnapshot {
	cells := p.Cells(offset)
	r := RoomSnapshot{Name: p.Name(), Cells: make([]CellSnapshot, len(cells)), Exit: exit}
	for i, c := range cells {
		r.Cells[i] = CellSnapshot{X: c.X, Y: c.Y}
	}

	return r
}

// Encode marshals the snapshot for broadcast.
func (s Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}
