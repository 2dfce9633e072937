package search_test

import (
	"errors"
	"testing"

	"github.com/dungenlab/dungen/grid"
	"github.com/dungenlab/dungen/search"
)

// TestOffset_Alignment checks, for all four directions, that the candidate's
// matched door lands exactly one unit step from the frontier door.
func TestOffset_Alignment(t *testing.T) {
	// Candidate with a door on every side, anchored at its single cell.
	cand := grid.Unit("cross", 1, grid.North, grid.South, grid.East, grid.West)

	for _, dir := range []grid.Direction{grid.North, grid.South, grid.East, grid.West} {
		door := grid.Door{Dir: dir, At: grid.Cell{X: 4, Y: -1}}
		off, err := search.Offset(door, cand)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", dir, err)
		}

		// Find the candidate's matching door at the computed offset.
		var matched *grid.Door
		for _, d := range cand.Doors(off) {
			if d.Dir == dir.Matching() {
				dd := d
				matched = &dd
				break
			}
		}
		if matched == nil {
			t.Fatalf("%v: no matching door at offset %v", dir, off)
		}
		if want := door.At.Add(dir.Unit()); matched.At != want {
			t.Errorf("%v: matched door at %v; want %v", dir, matched.At, want)
		}
		if !door.Matches(*matched) {
			t.Errorf("%v: door %v does not match %v", dir, door, *matched)
		}
	}
}

// TestOffset_MultiCellPiece aligns a 2-wide hall by its west door.
func TestOffset_MultiCellPiece(t *testing.T) {
	hall, err := grid.NewTemplate("hall2", 1,
		[]grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}},
		[]grid.Door{{Dir: grid.West, At: grid.Cell{X: 0, Y: 0}}, {Dir: grid.East, At: grid.Cell{X: 1, Y: 0}}},
	)
	if err != nil {
		t.Fatal(err)
	}

	door := grid.Door{Dir: grid.East, At: grid.Cell{X: 2, Y: 5}}
	off, err := search.Offset(door, hall)
	if err != nil {
		t.Fatal(err)
	}
	// West door must land at (3,5): one step east of the frontier door.
	if want := (grid.Cell{X: 3, Y: 5}); off != want {
		t.Errorf("Offset = %v; want %v", off, want)
	}
}

// TestOffset_NoDoorOnSide covers the precondition violation sentinel.
func TestOffset_NoDoorOnSide(t *testing.T) {
	north := grid.Unit("cap", 1, grid.North)
	door := grid.Door{Dir: grid.East, At: grid.Cell{}}
	if _, err := search.Offset(door, north); !errors.Is(err, search.ErrNoDoorOnSide) {
		t.Fatalf("want ErrNoDoorOnSide, got %v", err)
	}
}
