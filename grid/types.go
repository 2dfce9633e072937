// Package grid defines the geometric vocabulary shared by all dungen
// subpackages: cells, directions, and doors.
package grid

import "fmt"

// Cell is an integer (x, y) grid coordinate. It is an immutable value type;
// equality and map-key behavior follow coordinate equality.
type Cell struct {
	X, Y int
}

// Add returns the component-wise sum c + o.
// Complexity: O(1).
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference c - o.
// Complexity: O(1).
func (c Cell) Sub(o Cell) Cell {
	return Cell{X: c.X - o.X, Y: c.Y - o.Y}
}

// String renders the cell as "x,y".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Direction is one of the four cardinal door directions.
// North/South and East/West are mutually matching pairs.
type Direction int

const (
	// North points toward +Y.
	North Direction = iota
	// South points toward -Y.
	South
	// East points toward +X.
	East
	// West points toward -X.
	West
)

// Matching returns the direction a door on the opposing piece must face
// to connect: North↔South, East↔West.
func (d Direction) Matching() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Unit returns the unit step vector of d.
func (d Direction) Unit() Cell {
	switch d {
	case North:
		return Cell{X: 0, Y: 1}
	case South:
		return Cell{X: 0, Y: -1}
	case East:
		return Cell{X: 1, Y: 0}
	default:
		return Cell{X: -1, Y: 0}
	}
}

// Horizontal reports whether d runs along the X axis (East or West).
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// String renders the direction name in lowercase.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	default:
		return "west"
	}
}

// Door is a directional connector on a piece's boundary. At is the world
// cell the door occupies once its owning piece is placed; Dir is the side
// it faces. Door is a value type: two doors are equal iff they share cell
// and direction.
type Door struct {
	Dir Direction
	At  Cell
}

// Matching returns the direction an opposing door must face to connect to d.
func (d Door) Matching() Direction {
	return d.Dir.Matching()
}

// Horizontal reports whether the connection through d runs east-west.
func (d Door) Horizontal() bool {
	return d.Dir.Horizontal()
}

// Counterpart returns the door that would connect to d: one unit step away
// in d's direction, facing back.
func (d Door) Counterpart() Door {
	return Door{Dir: d.Dir.Matching(), At: d.At.Add(d.Dir.Unit())}
}

// Matches reports whether o is exactly the door that connects to d.
func (d Door) Matches(o Door) bool {
	return o == d.Counterpart()
}

// Translate returns the door shifted by offset.
func (d Door) Translate(offset Cell) Door {
	return Door{Dir: d.Dir, At: d.At.Add(offset)}
}

// String renders the door as "side@x,y".
func (d Door) String() string {
	return fmt.Sprintf("%s@%s", d.Dir, d.At)
}
