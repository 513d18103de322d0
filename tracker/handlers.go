package tracker

import (
	"context"
	"log"
	"net/http"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/mq"
	"voyago/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// GET /api/trips/:tripid/statuses
//
// Snapshot endpoint: computes the merged map directly from storage. The
// merge is idempotent and per-source order-insensitive, so one application
// of each source gives the same answer a live session would hold.
func GetParticipantStatuses(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	statuses := StatusMap{}

	details, err := utils.FindAndDecode[models.TripDetails](ctx, db.TripDetailsCollection, bson.M{"trip_id": tripID})
	if err != nil {
		log.Printf("[tracker] details lookup failed for trip %s: %v", tripID, err)
	} else {
		snap := map[string]string{}
		for _, td := range details {
			snap[td.UserID] = string(td.Status)
		}
		mergeDetails(statuses, snap)
	}

	invites, err := utils.FindAndDecode[models.Invitation](ctx, db.InvitationsCollection, bson.M{"trip_id": tripID})
	if err != nil {
		log.Printf("[tracker] invitation lookup failed for trip %s: %v", tripID, err)
	} else {
		mergeInvitations(statuses, invites)
	}

	utils.RespondWithJSON(w, http.StatusOK, statuses)
}

// GET /ws/trips/:tripid/statuses (websocket)
func LiveStatusHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tripID := ps.ByName("tripid")
		userID := utils.GetUserIDFromRequest(r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		client := &Client{
			Conn:   conn,
			Send:   make(chan []byte, 256),
			TripID: tripID,
			UserID: userID,
		}

		hub.register <- client

		// Re-emit both feeds so the fresh session (and this client) gets an
		// initial frame.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			mq.EmitDetailsSnapshot(ctx, tripID)
			mq.EmitInvitationSet(ctx, tripID)
		}()

		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump discards inbound frames; the feed is one-way. Its job is to
// notice the disconnect and unregister.
func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
