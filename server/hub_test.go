package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungenlab/dungen/server"
)

// TestHub_BroadcastLiveClients fans one payload out to two live websocket
// subscribers, then verifies a departed client is dropped on its next
// failed write while the surviving client keeps receiving.
func TestHub_BroadcastLiveClients(t *testing.T) {
	h := server.NewHub()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		h.Add(conn)
		// Drains control frames and closes the conn when the peer leaves.
		conn.CloseRead(context.Background())
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	dial := func() *websocket.Conn {
		conn, resp, err := websocket.Dial(ctx, url, nil)
		require.NoError(t, err)
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}

		return conn
	}
	first := dial()
	defer first.Close(websocket.StatusNormalClosure, "")
	second := dial()

	require.Eventually(t, func() bool { return h.Count() == 2 },
		2*time.Second, 10*time.Millisecond)

	payload := []byte(`{"rooms":[]}`)
	h.Broadcast(payload)
	for _, conn := range []*websocket.Conn{first, second} {
		_, data, err := conn.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, string(payload), string(data))
	}

	// Once the second client leaves, its server-side write fails and the
	// hub drops it; the close frame may still be in flight, so retry.
	require.NoError(t, second.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool {
		h.Broadcast(payload)
		return h.Count() == 1
	}, 3*time.Second, 50*time.Millisecond)

	_, data, err := first.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(payload), string(data))
}
