package server_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungenlab/dungen/grid"
	"github.com/dungenlab/dungen/search"
	"github.com/dungenlab/dungen/server"
)

// TestBuildSnapshot flattens a generated corridor and round-trips the JSON.
func TestBuildSnapshot(t *testing.T) {
	origin := grid.Unit("origin", 1, grid.East)
	exit := grid.Unit("exit", 1, grid.West)
	pool := []grid.Piece{grid.Unit("hall", 1, grid.West, grid.East)}

	res, err := search.Solve(origin, exit, pool,
		search.WithMaxRooms(3),
		search.WithMinPathLength(2),
		search.WithSeed(21),
	)
	require.NoError(t, err)

	snap := server.BuildSnapshot(origin, exit, res, 21)
	require.Len(t, snap.Rooms, 3)
	require.Len(t, snap.Connectors, 2)

	assert.Equal(t, "origin", snap.Rooms[0].Name)
	assert.False(t, snap.Rooms[0].Exit)
	assert.Equal(t, []server.CellSnapshot{{X: 0, Y: 0}}, snap.Rooms[0].Cells)

	assert.Equal(t, "hall", snap.Rooms[1].Name)
	assert.Equal(t, []server.CellSnapshot{{X: 1, Y: 0}}, snap.Rooms[1].Cells)

	assert.Equal(t, "exit", snap.Rooms[2].Name)
	assert.True(t, snap.Rooms[2].Exit)

	assert.Equal(t, server.ConnectorSnapshot{X: 0, Y: 0, Horizontal: true}, snap.Connectors[0])
	assert.Equal(t, server.ConnectorSnapshot{X: 1, Y: 0, Horizontal: true}, snap.Connectors[1])
	assert.Equal(t, 2, snap.PathLength)

	payload, err := snap.Encode()
	require.NoError(t, err)

	var decoded server.Snapshot
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, snap, decoded)
}

// TestHub_AddRemove tracks subscriber bookkeeping without live sockets.
func TestHub_AddRemove(t *testing.T) {
	h := server.NewHub()
	assert.Equal(t, 0, h.Count())

	h.Add(nil)
	assert.Equal(t, 1, h.Count())
	h.Remove(nil)
	assert.Equal(t, 0, h.Count())

	// Broadcasting with no subscribers is a no-op.
	h.Broadcast([]byte(`{}`))
}
