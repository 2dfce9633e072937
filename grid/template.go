package grid

import "errors"

// Sentinel errors for template construction.
var (
	// ErrBadWeight indicates a piece weight below 1.
	ErrBadWeight = errors.New("grid: piece weight must be at least 1")
	// ErrNoCells indicates a template with an empty footprint.
	ErrNoCells = errors.New("grid: piece must occupy at least one cell")
	// ErrDoorOffPiece indicates a door anchored on a cell the piece does not occupy.
	ErrDoorOffPiece = errors.New("grid: door cell must belong to the piece footprint")
)

// Piece is the read-only geometry contract the search engine consumes.
// A Piece is a template anchored at offset (0,0); the engine queries its
// geometry translated to candidate offsets and never mutates it.
type Piece interface {
	// Name identifies the template (used by materializers and snapshots).
	Name() string
	// Weight is the sampling weight, always ≥ 1.
	Weight() int
	// HasDoor reports whether the piece exposes at least one door facing dir.
	HasDoor(dir Direction) bool
	// Doors returns the piece's doors translated by offset.
	Doors(offset Cell) []Door
	// Cells returns the piece's occupied cells translated by offset.
	Cells(offset Cell) []Cell
}

// Template is the standard Piece implementation: a fixed footprint with
// doors on its boundary. Immutable once constructed.
type Template struct {
	name   string
	weight int
	cells  []Cell
	doors  []Door
}

// NewTemplate validates and builds a Template. cells and doors are given
// relative to offset (0,0); every door must sit on one of the cells.
// Returns ErrBadWeight, ErrNoCells, or ErrDoorOffPiece on invalid input.
// Complexity: O(len(cells) × len(doors)).
func NewTemplate(name string, weight int, cells []Cell, doors []Door) (*Template, error) {
	if weight < 1 {
		return nil, ErrBadWeight
	}
	if len(cells) == 0 {
		return nil, ErrNoCells
	}
	footprint := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		footprint[c] = struct{}{}
	}
	for _, d := range doors {
		if _, ok := footprint[d.At]; !ok {
			return nil, ErrDoorOffPiece
		}
	}
	t := &Template{
		name:   name,
		weight: weight,
		cells:  append([]Cell(nil), cells...),
		doors:  append([]Door(nil), doors...),
	}

	return t, nil
}

// Unit builds a single-cell template with one door per given direction.
// Panics on weight < 1 to surface programmer error early; use NewTemplate
// when inputs are not compile-time constants.
func Unit(name string, weight int, dirs ...Direction) *Template {
	doors := make([]Door, 0, len(dirs))
	for _, dir := range dirs {
		doors = append(doors, Door{Dir: dir})
	}
	t, err := NewTemplate(name, weight, []Cell{{}}, doors)
	if err != nil {
		panic("grid: Unit: " + err.Error())
	}

	return t
}

// Name returns the template's identifier.
func (t *Template) Name() string { return t.name }

// Weight returns the sampling weight.
func (t *Template) Weight() int { return t.weight }

// HasDoor reports whether any door faces dir.
// Complexity: O(len(doors)).
func (t *Template) HasDoor(dir Direction) bool {
	for _, d := range t.doors {
		if d.Dir == dir {
			return true
		}
	}

	return false
}

// Doors returns a fresh slice of the template's doors translated by offset.
func (t *Template) Doors(offset Cell) []Door {
	out := make([]Door, len(t.doors))
	for i, d := range t.doors {
		out[i] = d.Translate(offset)
	}

	return out
}

// Cells returns a fresh slice of the template's cells translated by offset.
func (t *Template) Cells(offset Cell) []Cell {
	out := make([]Cell, len(t.cells))
	for i, c := range t.cells {
		out[i] = c.Add(offset)
	}

	return out
}
