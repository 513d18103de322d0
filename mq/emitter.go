package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"voyago/db"
	"voyago/models"
	"voyago/rdx"

	"go.mongodb.org/mongo-driver/bson"
)

// The trackers expect full snapshots, the way a document-store listener
// would deliver them: every write to tripDetails or invitations republishes
// the complete current state for that trip.

func DetailsChannel(tripID string) string {
	return fmt.Sprintf("trip:%s:details", tripID)
}

func InvitesChannel(tripID string) string {
	return fmt.Sprintf("trip:%s:invites", tripID)
}

// DetailsSnapshot maps userID to the raw status string stored for that user.
type DetailsSnapshot map[string]string

// EmitDetailsSnapshot loads every tripDetails record for the trip and
// publishes the userID→status map. Failures are logged; callers do not see
// them, a missed emission only means a stale tracker map.
func EmitDetailsSnapshot(ctx context.Context, tripID string) {
	cursor, err := db.TripDetailsCollection.Find(ctx, bson.M{"trip_id": tripID})
	if err != nil {
		log.Printf("[mq] details snapshot query failed for trip %s: %v", tripID, err)
		return
	}
	defer cursor.Close(ctx)

	snapshot := DetailsSnapshot{}
	for cursor.Next(ctx) {
		var td models.TripDetails
		if err := cursor.Decode(&td); err != nil {
			log.Printf("[mq] skipping undecodable tripDetails doc: %v", err)
			continue
		}
		snapshot[td.UserID] = string(td.Status)
	}

	publish(ctx, DetailsChannel(tripID), snapshot)
}

// EmitInvitationSet loads the full invitation set for the trip and publishes
// it.
func EmitInvitationSet(ctx context.Context, tripID string) {
	invites, err := findInvitations(ctx, tripID)
	if err != nil {
		log.Printf("[mq] invitation set query failed for trip %s: %v", tripID, err)
		return
	}

	publish(ctx, InvitesChannel(tripID), invites)
}

func findInvitations(ctx context.Context, tripID string) ([]models.Invitation, error) {
	cursor, err := db.InvitationsCollection.Find(ctx, bson.M{"trip_id": tripID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invites []models.Invitation
	if err := cursor.All(ctx, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

func publish(ctx context.Context, channel string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[mq] failed to marshal payload for %s: %v", channel, err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[mq] failed to publish to %s: %v", channel, err)
	}
}
