// Command dungensrv serves generated layouts over a websocket: every
// subscriber on /stream receives the current layout snapshot on connect,
// and any client can send "regen" to generate a fresh layout for everyone.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"

	"github.com/dungenlab/dungen/dungeon"
	"github.com/dungenlab/dungen/grid"
	"github.com/dungenlab/dungen/search"
	"github.com/dungenlab/dungen/server"
)

// reseedAttempts bounds how many consecutive seeds one regeneration tries
// before reporting failure to the client.
const reseedAttempts = 10

// app owns the generator and the last successful snapshot payload.
// Generation runs are synchronous and serialized under mu.
type app struct {
	mu     sync.Mutex
	gen    *dungeon.Generator
	origin grid.Piece
	exit   grid.Piece
	seed   int64
	last   []byte
}

// regenerate advances the seed until a run succeeds, then caches and
// returns the encoded snapshot. Budget aborts are not retried.
func (a *app) regenerate() ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var lastErr error
	for i := 0; i < reseedAttempts; i++ {
		a.seed++
		res, err := a.gen.Generate(nil, search.WithSeed(a.seed))
		if err != nil {
			lastErr = err
			if errors.Is(err, search.ErrExhausted) {
				continue
			}

			return nil, err
		}

		payload, err := server.BuildSnapshot(a.origin, a.exit, res, a.seed).Encode()
		if err != nil {
			return nil, err
		}
		a.last = payload

		return payload, nil
	}

	return nil, fmt.Errorf("no layout after %d attempts: %w", reseedAttempts, lastErr)
}

func (a *app) snapshot() []byte {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.last
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	seed := flag.Int64("seed", 1, "base RNG seed")
	rooms := flag.Int("rooms", 12, "target room count, origin included")
	budget := flag.Int("budget", 100000, "iteration budget per attempt")
	span := flag.Int("span", 8, "max bounding-box span per axis")
	minPath := flag.Int("minpath", 4, "min origin→exit connection distance")
	flag.Parse()

	origin, exit, pool := dungeon.BasicSet()
	a := &app{
		origin: origin,
		exit:   exit,
		seed:   *seed - 1, // regenerate pre-increments
		gen: dungeon.New(origin, exit, pool,
			search.WithMaxRooms(*rooms),
			search.WithIterationBudget(*budget),
			search.WithMaxSpan(*span),
			search.WithMinPathLength(*minPath),
		),
	}

	if _, err := a.regenerate(); err != nil {
		log.Fatalf("initial generation failed: %v", err)
	}

	hub := server.NewHub()
	mux := http.NewServeMux()
	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.Add(conn)
		_ = conn.Write(r.Context(), websocket.MessageText, a.snapshot())

		go func(c *websocket.Conn) {
			defer hub.Remove(c)
			defer c.Close(websocket.StatusNormalClosure, "")
			for {
				_, data, err := c.Read(context.Background())
				if err != nil {
					return
				}
				if string(data) != "regen" {
					continue
				}
				payload, err := a.regenerate()
				if err != nil {
					log.Printf("regeneration failed: %v", err)
					continue
				}
				hub.Broadcast(payload)
			}
		}(conn)
	})

	log.Printf("dungensrv listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
