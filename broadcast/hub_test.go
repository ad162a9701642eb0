package broadcast

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHub_BroadcastReachesClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		client := NewClient(hub, conn)
		if !hub.Subscribe(client) {
			t.Error("subscribe failed on a running hub")
			return
		}
		go client.WritePump()
		go client.ReadPump()
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client was not registered in time")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.Broadcast(EventMatchReported, map[string]int{"winner_id": 1, "loser_id": 2})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]int `json:"payload"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("invalid message %q: %v", data, err)
	}
	if msg.Type != EventMatchReported {
		t.Errorf("type = %q, want %q", msg.Type, EventMatchReported)
	}
	if msg.Payload["winner_id"] != 1 || msg.Payload["loser_id"] != 2 {
		t.Errorf("unexpected payload: %v", msg.Payload)
	}
}

func TestHub_BroadcastWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < sendBufferSize+10; i++ {
			hub.Broadcast(EventStandingsUpdated, nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast blocked with no running hub")
	}
}

func TestHub_SubscribeAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub()
	hub.Stop()

	done := make(chan bool)
	go func() {
		done <- hub.Subscribe(&Client{Hub: hub, Send: make(chan []byte, 1)})
	}()

	select {
	case ok := <-done:
		if ok {
			t.Error("Subscribe on a stopped hub reported success")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Subscribe blocked on a stopped hub")
	}
}

func TestHub_ReadPumpReturnsAfterStop(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	pumpDone := make(chan struct{})
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			close(pumpDone)
			return
		}
		go func() {
			NewClient(hub, conn).ReadPump()
			close(pumpDone)
		}()
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}

	hub.Stop()
	conn.Close()

	select {
	case <-pumpDone:
	case <-time.After(2 * time.Second):
		t.Fatal("ReadPump stayed blocked after the hub stopped")
	}
}
