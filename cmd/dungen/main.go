// Command dungen generates one dungeon layout with the stock piece library
// and prints it as a colored map.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/dungenlab/dungen/dungeon"
	"github.com/dungenlab/dungen/render"
	"github.com/dungenlab/dungen/search"
)

var (
	styleNote  = color.Style{color.FgGray}
	styleError = color.Style{color.FgRed, color.OpBold}
)

func main() {
	seed := flag.Int64("seed", 0, "RNG seed; 0 picks one from the clock")
	rooms := flag.Int("rooms", 12, "target room count, origin included")
	budget := flag.Int("budget", 100000, "iteration budget per attempt")
	span := flag.Int("span", 8, "max bounding-box span per axis")
	minPath := flag.Int("minpath", 4, "min origin→exit connection distance")
	attempts := flag.Int("attempts", 10, "reseeded retries after an exhausted search")
	plain := flag.Bool("plain", false, "disable colored output")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	origin, exit, pool := dungeon.BasicSet()
	m := render.New(exit)
	g := dungeon.New(origin, exit, pool,
		search.WithMaxRooms(*rooms),
		search.WithIterationBudget(*budget),
		search.WithMaxSpan(*span),
		search.WithMinPathLength(*minPath),
	)

	var res *search.Result
	var err error
	used := *seed
	for i := 0; i < *attempts; i++ {
		used = *seed + int64(i)
		res, err = g.Generate(m, search.WithSeed(used))
		if err == nil || !errors.Is(err, search.ErrExhausted) {
			// Success, or a fatal failure that a reseed will not fix.
			break
		}
	}
	if err != nil {
		styleError.Printf("generation failed: %v\n", err)
		os.Exit(1)
	}

	out := m.Colored()
	if *plain {
		out = m.String()
	}
	fmt.Println(out)
	fmt.Printf("seed %d | rooms %d | path length %d | iterations %d\n",
		used, len(res.Plan)+1, res.PathLength, res.Iterations)

	if w, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && mapWidth(m.String()) > w {
		styleNote.Println("note: map is wider than the terminal; rows will wrap")
	}
}

// mapWidth returns the widest row of the plain canvas, in runes.
func mapWidth(plain string) int {
	width := 0
	for _, row := range strings.Split(plain, "\n") {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}

	return width
}
