package tracker

import (
	"encoding/json"
	"testing"
	"time"

	"voyago/models"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send:   make(chan []byte, 10),
		TripID: "t1",
	}

	hub.register <- client

	statuses := StatusMap{"u1": models.StatusInvited}
	data, _ := json.Marshal(statuses)
	hub.broadcast <- broadcastMsg{TripID: "t1", Data: data}

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubSessionLifecycle(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	first := &Client{Send: make(chan []byte, 10), TripID: "t2"}
	second := &Client{Send: make(chan []byte, 10), TripID: "t2"}

	hub.register <- first
	hub.register <- second

	waitFor(t, func() bool { return hub.Session("t2") != nil })

	hub.unregister <- first
	time.Sleep(20 * time.Millisecond)
	if hub.Session("t2") == nil {
		t.Fatal("session closed while a watcher remained")
	}

	hub.unregister <- second
	waitFor(t, func() bool { return hub.Session("t2") == nil })
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(1 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}
