package tracker

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one organizer's live connection to a trip's status feed.
type Client struct {
	Conn   *websocket.Conn
	Send   chan []byte
	TripID string
	UserID string
}

type broadcastMsg struct {
	TripID string
	Data   []byte
}

// Hub fans merged status maps out to every client watching a trip. A trip's
// Session starts with its first watcher and closes with its last.
type Hub struct {
	rooms      map[string]map[*Client]bool
	sessions   map[string]*Session
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	quit       chan struct{}
	stopOnce   sync.Once
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		sessions:   make(map[string]*Session),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg, 16),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.quit:
			h.mu.Lock()
			for tripID, sess := range h.sessions {
				sess.Close()
				delete(h.sessions, tripID)
			}
			for _, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
			}
			h.rooms = make(map[string]map[*Client]bool)
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.TripID] == nil {
				h.rooms[c.TripID] = make(map[*Client]bool)
				h.startSession(c.TripID)
			}
			h.rooms[c.TripID][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.TripID]; conns != nil {
				if conns[c] {
					delete(conns, c)
					close(c.Send)
				}
				if len(conns) == 0 {
					delete(h.rooms, c.TripID)
					if sess := h.sessions[c.TripID]; sess != nil {
						sess.Close()
						delete(h.sessions, c.TripID)
					}
				}
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.TripID] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.TripID], c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// startSession is called with h.mu held.
func (h *Hub) startSession(tripID string) {
	sess := NewSession(tripID)
	sess.OnChange = func(statuses StatusMap) {
		data, err := json.Marshal(statuses)
		if err != nil {
			log.Printf("[tracker] marshal status map for trip %s: %v", tripID, err)
			return
		}
		select {
		case h.broadcast <- broadcastMsg{TripID: tripID, Data: data}:
		case <-h.quit:
		}
	}
	sess.Start(context.Background())
	h.sessions[tripID] = sess
}

// Session returns the live session for a trip, if one is running.
func (h *Hub) Session(tripID string) *Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessions[tripID]
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}
