package search

import (
	"fmt"

	"github.com/dungenlab/dungen/grid"
)

// Offset computes the placement offset that aligns one of p's doors to sit
// directly across from door: the piece's first door facing door.Matching()
// lands at door's cell plus one unit step in door's direction.
//
// Precondition: p.HasDoor(door.Matching()); otherwise ErrNoDoorOnSide.
// Complexity: O(doors of p).
func Offset(door grid.Door, p grid.Piece) (grid.Cell, error) {
	want := door.Matching()
	for _, d := range p.Doors(grid.Cell{}) {
		if d.Dir == want {
			return door.At.Add(door.Dir.Unit()).Sub(d.At), nil
		}
	}

	return grid.Cell{}, fmt.Errorf("%w: %v", ErrNoDoorOnSide, want)
}
