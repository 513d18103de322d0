package invites

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/mq"
	"voyago/trips"
	"voyago/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// POST /api/trips/:tripid/invites
func SendInvitation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	inviterID := utils.GetUserIDFromRequest(r)
	if inviterID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Email == "" {
		http.Error(w, "Invitee email is required", http.StatusBadRequest)
		return
	}

	tripID := ps.ByName("tripid")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	if err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID}).Decode(&trip); err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}
	if trip.CreatorID != inviterID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	// "Invitee not found" is deliberately distinct from transport failure:
	// the sender gets a 404 they can act on.
	inviteeID, err := lookupUserIDByEmail(ctx, payload.Email)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Invitee not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error looking up invitee", http.StatusInternalServerError)
		return
	}

	invitation := models.Invitation{
		InviteID:  uuid.New().String(),
		TripID:    tripID,
		InviterID: inviterID,
		InviteeID: inviteeID,
		Status:    models.InvitePending,
		TripName:  trip.Place.Name,
		CreatedAt: time.Now(),
	}

	if _, err := db.InvitationsCollection.InsertOne(ctx, invitation); err != nil {
		http.Error(w, "Error saving invitation", http.StatusInternalServerError)
		return
	}

	mq.EmitInvitationSet(ctx, tripID)

	utils.RespondWithJSON(w, http.StatusCreated, invitation)
}

// GET /api/invites — pending invitations for the current user.
func GetPendingInvitations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"invitee_id": userID, "status": models.InvitePending}
	invitations, err := utils.FindAndDecode[models.Invitation](ctx, db.InvitationsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching invitations")
		return
	}

	if invitations == nil {
		invitations = []models.Invitation{}
	}
	utils.RespondWithJSON(w, http.StatusOK, invitations)
}

// GET /api/trips/:tripid/invites — the trip's full invitation set.
func GetTripInvitations(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"trip_id": ps.ByName("tripid")}
	invitations, err := utils.FindAndDecode[models.Invitation](ctx, db.InvitationsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching invitations")
		return
	}

	if invitations == nil {
		invitations = []models.Invitation{}
	}
	utils.RespondWithJSON(w, http.StatusOK, invitations)
}

// POST /api/invites/:inviteid/respond
func RespondToInvitation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Accept bool `json:"accept"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var invitation models.Invitation
	filter := bson.M{"inviteid": ps.ByName("inviteid")}
	if err := db.InvitationsCollection.FindOne(ctx, filter).Decode(&invitation); err != nil {
		http.Error(w, "Invitation not found", http.StatusNotFound)
		return
	}

	if invitation.InviteeID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	// Invitations mutate exactly once.
	if invitation.Status != models.InvitePending {
		http.Error(w, "Invitation already answered", http.StatusConflict)
		return
	}

	status := models.InviteRejected
	if payload.Accept {
		status = models.InviteAccepted
	}

	update := bson.M{"$set": bson.M{"status": status}}
	if _, err := db.InvitationsCollection.UpdateOne(ctx, filter, update); err != nil {
		http.Error(w, "Error updating invitation", http.StatusInternalServerError)
		return
	}

	if payload.Accept {
		if err := trips.AddParticipant(ctx, invitation.TripID, userID); err != nil {
			log.Printf("Failed to add participant %s to trip %s: %v", userID, invitation.TripID, err)
		}
	}

	mq.EmitInvitationSet(ctx, invitation.TripID)

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Invitation " + string(status)})
}

func lookupUserIDByEmail(ctx context.Context, email string) (string, error) {
	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return "", err
	}
	return user.UserID, nil
}
