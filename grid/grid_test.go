package grid_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dungenlab/dungen/grid"
)

// TestDirection_Matching verifies the two matching pairs in both orders.
func TestDirection_Matching(t *testing.T) {
	pairs := map[grid.Direction]grid.Direction{
		grid.North: grid.South,
		grid.South: grid.North,
		grid.East:  grid.West,
		grid.West:  grid.East,
	}
	for d, want := range pairs {
		if got := d.Matching(); got != want {
			t.Errorf("%v.Matching() = %v; want %v", d, got, want)
		}
	}
}

// TestDirection_Unit checks that each unit step is inverse of its match.
func TestDirection_Unit(t *testing.T) {
	for _, d := range []grid.Direction{grid.North, grid.South, grid.East, grid.West} {
		u, m := d.Unit(), d.Matching().Unit()
		if u.Add(m) != (grid.Cell{}) {
			t.Errorf("%v: Unit %v + matching unit %v != origin", d, u, m)
		}
	}
	if grid.East.Unit() != (grid.Cell{X: 1}) {
		t.Errorf("East.Unit() = %v; want 1,0", grid.East.Unit())
	}
	if grid.North.Unit() != (grid.Cell{Y: 1}) {
		t.Errorf("North.Unit() = %v; want 0,1", grid.North.Unit())
	}
}

// TestDirection_Horizontal covers axis classification.
func TestDirection_Horizontal(t *testing.T) {
	if !grid.East.Horizontal() || !grid.West.Horizontal() {
		t.Error("East/West must be horizontal")
	}
	if grid.North.Horizontal() || grid.South.Horizontal() {
		t.Error("North/South must not be horizontal")
	}
}

// TestDoor_Counterpart verifies the counterpart sits one step away, facing back.
func TestDoor_Counterpart(t *testing.T) {
	d := grid.Door{Dir: grid.East, At: grid.Cell{X: 2, Y: 3}}
	got := d.Counterpart()
	want := grid.Door{Dir: grid.West, At: grid.Cell{X: 3, Y: 3}}
	if got != want {
		t.Fatalf("Counterpart() = %v; want %v", got, want)
	}
	if !d.Matches(got) {
		t.Error("door must match its own counterpart")
	}
	if d.Matches(d) {
		t.Error("door must not match itself")
	}
}

// TestNewTemplate_Validation exercises all constructor sentinels.
func TestNewTemplate_Validation(t *testing.T) {
	cell := []grid.Cell{{}}
	if _, err := grid.NewTemplate("t", 0, cell, nil); !errors.Is(err, grid.ErrBadWeight) {
		t.Errorf("weight 0: want ErrBadWeight, got %v", err)
	}
	if _, err := grid.NewTemplate("t", 1, nil, nil); !errors.Is(err, grid.ErrNoCells) {
		t.Errorf("no cells: want ErrNoCells, got %v", err)
	}
	stray := []grid.Door{{Dir: grid.East, At: grid.Cell{X: 5}}}
	if _, err := grid.NewTemplate("t", 1, cell, stray); !errors.Is(err, grid.ErrDoorOffPiece) {
		t.Errorf("stray door: want ErrDoorOffPiece, got %v", err)
	}
	if _, err := grid.NewTemplate("t", 1, cell, nil); err != nil {
		t.Errorf("valid doorless template: unexpected error %v", err)
	}
}

// TestTemplate_Translation checks Doors and Cells at a non-zero offset.
func TestTemplate_Translation(t *testing.T) {
	tmpl, err := grid.NewTemplate("hall", 2,
		[]grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}},
		[]grid.Door{{Dir: grid.West, At: grid.Cell{}}, {Dir: grid.East, At: grid.Cell{X: 1}}},
	)
	if err != nil {
		t.Fatal(err)
	}
	off := grid.Cell{X: 3, Y: -2}

	wantCells := []grid.Cell{{X: 3, Y: -2}, {X: 4, Y: -2}}
	if got := tmpl.Cells(off); !reflect.DeepEqual(got, wantCells) {
		t.Errorf("Cells(%v) = %v; want %v", off, got, wantCells)
	}
	wantDoors := []grid.Door{
		{Dir: grid.West, At: grid.Cell{X: 3, Y: -2}},
		{Dir: grid.East, At: grid.Cell{X: 4, Y: -2}},
	}
	if got := tmpl.Doors(off); !reflect.DeepEqual(got, wantDoors) {
		t.Errorf("Doors(%v) = %v; want %v", off, got, wantDoors)
	}

	if !tmpl.HasDoor(grid.East) || !tmpl.HasDoor(grid.West) {
		t.Error("hall must expose east and west doors")
	}
	if tmpl.HasDoor(grid.North) {
		t.Error("hall must not expose a north door")
	}
}

// TestUnit covers the single-cell shorthand and its panic contract.
func TestUnit(t *testing.T) {
	u := grid.Unit("cap", 3, grid.South)
	if u.Weight() != 3 {
		t.Errorf("Weight() = %d; want 3", u.Weight())
	}
	if got := u.Cells(grid.Cell{}); !reflect.DeepEqual(got, []grid.Cell{{}}) {
		t.Errorf("Cells = %v; want single origin cell", got)
	}
	if !u.HasDoor(grid.South) || u.HasDoor(grid.North) {
		t.Error("cap must have exactly a south door")
	}

	defer func() {
		if recover() == nil {
			t.Error("Unit with weight 0 must panic")
		}
	}()
	grid.Unit("bad", 0, grid.North)
}
