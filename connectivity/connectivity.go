package connectivity

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/dungenlab/dungen/grid"
)

// ErrNoPath is returned when no chain of links joins start and goal.
var ErrNoPath = errors.New("connectivity: no path between the given cells")

// Link is an undirected edge between two door cells. Self-links (A == B)
// are ignored during traversal.
type Link struct {
	A, B grid.Cell
}

// queueItem pairs a cell with its BFS depth from the start.
type queueItem struct {
	at    grid.Cell
	depth int
}

// Distance returns the smallest number of links joining start to goal,
// or ErrNoPath when the cells are disconnected. start == goal yields 0.
// The links slice is read-only; repeated calls are independent.
// Complexity: O(V + E) time, O(V + E) memory.
func Distance(links []Link, start, goal grid.Cell) (int, error) {
	if start == goal {
		return 0, nil
	}

	// Build a transient adjacency view; both endpoints see each other.
	adj := make(map[grid.Cell][]grid.Cell, 2*len(links))
	for _, l := range links {
		if l.A == l.B {
			continue
		}
		adj[l.A] = append(adj[l.A], l.B)
		adj[l.B] = append(adj[l.B], l.A)
	}

	visited := mapset.New[grid.Cell]()
	visited.Put(start)
	queue := []queueItem{{at: start, depth: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range adj[cur.at] {
			if visited.Has(nbr) {
				continue
			}
			if nbr == goal {
				return cur.depth + 1, nil
			}
			visited.Put(nbr)
			queue = append(queue, queueItem{at: nbr, depth: cur.depth + 1})
		}
	}

	return 0, ErrNoPath
}
