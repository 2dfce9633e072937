package render

import (
	"strings"

	"github.com/gookit/color"

	"github.com/dungenlab/dungen/grid"
)

// Canvas runes per tile class.
const (
	RuneOrigin = '@'
	RuneExit   = '⌂'
	RuneRoom   = '□'
	RuneHallEW = '─'
	RuneHallNS = '│'
	RuneVoid   = ' '
)

// tileClass selects the display style of one canvas cell.
type tileClass int

const (
	classRoom tileClass = iota
	classOrigin
	classExit
	classConnector
)

// Styles, in the spirit of a terminal roguelike: landmark tiles pop,
// corridors stay quiet.
var (
	styleRoom      = color.Style{color.FgGray}
	styleOrigin    = color.Style{color.FgGreen, color.OpBold}
	styleExit      = color.Style{color.FgRed, color.OpBold}
	styleConnector = color.Style{color.FgBlue}
)

// tile is one canvas cell.
type tile struct {
	r     rune
	class tileClass
}

// Map is a dungeon.Materializer that draws onto a doubled-lattice canvas.
// Not safe for concurrent use; one Map serves one run at a time.
type Map struct {
	exit   grid.Piece
	tiles  map[grid.Cell]tile
	placed int
}

// New builds an empty Map. exit selects the piece drawn as the exit
// landmark; nil disables exit styling.
func New(exit grid.Piece) *Map {
	return &Map{exit: exit, tiles: make(map[grid.Cell]tile)}
}

// Reset discards the canvas.
func (m *Map) Reset() {
	m.tiles = make(map[grid.Cell]tile)
	m.placed = 0
}

// PlacePiece draws one piece. The first piece after Reset is the origin
// (the run controller always materializes it first).
func (m *Map) PlacePiece(p grid.Piece, offset grid.Cell) {
	t := tile{r: RuneRoom, class: classRoom}
	switch {
	case m.placed == 0:
		t = tile{r: RuneOrigin, class: classOrigin}
	case p == m.exit:
		t = tile{r: RuneExit, class: classExit}
	}
	m.placed++

	cells := p.Cells(offset)
	occupied := make(map[grid.Cell]struct{}, len(cells))
	for _, c := range cells {
		occupied[c] = struct{}{}
		m.tiles[grid.Cell{X: 2 * c.X, Y: 2 * c.Y}] = t
	}

	// Join adjacent cells of the same piece so it reads as one shape.
	for _, c := range cells {
		if _, ok := occupied[c.Add(grid.East.Unit())]; ok {
			m.tiles[grid.Cell{X: 2*c.X + 1, Y: 2 * c.Y}] = t
		}
		if _, ok := occupied[c.Add(grid.North.Unit())]; ok {
			m.tiles[grid.Cell{X: 2 * c.X, Y: 2*c.Y + 1}] = t
		}
	}
}

// PlaceConnector draws the connector through d, oriented by the door.
func (m *Map) PlaceConnector(d grid.Door) {
	r := RuneHallNS
	if d.Horizontal() {
		r = RuneHallEW
	}
	u := d.Dir.Unit()
	at := grid.Cell{X: 2*d.At.X + u.X, Y: 2*d.At.Y + u.Y}
	m.tiles[at] = tile{r: r, class: classConnector}
}

// String renders the plain canvas, north up, rows joined by newlines.
func (m *Map) String() string {
	return m.render(false)
}

// Colored renders the canvas with per-class color styles applied.
func (m *Map) Colored() string {
	return m.render(true)
}

func (m *Map) render(colored bool) string {
	if len(m.tiles) == 0 {
		return ""
	}

	var minX, maxX, minY, maxY int
	first := true
	for c := range m.tiles {
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}

	var b strings.Builder
	for y := maxY; y >= minY; y-- {
		if y != maxY {
			b.WriteByte('\n')
		}
		for x := minX; x <= maxX; x++ {
			t, ok := m.tiles[grid.Cell{X: x, Y: y}]
			if !ok {
				b.WriteRune(RuneVoid)
				continue
			}
			if colored {
				b.WriteString(t.style().Sprint(string(t.r)))
				continue
			}
			b.WriteRune(t.r)
		}
	}

	return b.String()
}

func (t tile) style() color.Style {
	switch t.class {
	case classOrigin:
		return styleOrigin
	case classExit:
		return styleExit
	case classConnector:
		return styleConnector
	default:
		return styleRoom
	}
}
