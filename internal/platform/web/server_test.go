package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) (*Broadcaster, *httptest.Server) {
	t.Helper()
	hub := NewBroadcaster()
	srv := NewServer(hub, log.New(io.Discard))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		hub.Close()
		ts.Close()
	})
	return hub, ts
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, expected %d", resp.StatusCode, http.StatusOK)
	}
}

func TestSnapshotEndpoint(t *testing.T) {
	hub, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status before publish = %d, expected %d", resp.StatusCode, http.StatusServiceUnavailable)
	}

	if err := hub.Publish(map[string]int{"tick": 7}); err != nil {
		t.Fatal(err)
	}

	resp, err = http.Get(ts.URL + "/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"tick":7}` {
		t.Errorf("body = %s, expected %s", body, `{"tick":7}`)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, expected application/json", ct)
	}
}

func TestWebsocketReceivesFrames(t *testing.T) {
	hub, ts := newTestServer(t)
	hub.Broadcast([]byte(`{"tick":1}`))

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	if string(msg) != `{"tick":1}` {
		t.Errorf("first frame = %s, expected the latest snapshot", msg)
	}

	hub.Broadcast([]byte(`{"tick":2}`))
	_, msg, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	if string(msg) != `{"tick":2}` {
		t.Errorf("second frame = %s, expected %s", msg, `{"tick":2}`)
	}
}
