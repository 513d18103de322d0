package trips

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// POST /api/trips
func CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if trip.Place.Name == "" {
		http.Error(w, "Destination is required", http.StatusBadRequest)
		return
	}
	if trip.EndDate.Before(trip.StartDate) {
		http.Error(w, "End date must not precede start date", http.StatusBadRequest)
		return
	}

	trip.TripID = "t" + utils.GenerateRandomString(12)
	trip.CreatorID = userID
	trip.Participants = []string{userID}
	trip.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.TripsCollection.InsertOne(ctx, trip); err != nil {
		http.Error(w, "Error creating trip", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, trip)
}

// GET /api/trips/:tripid
func GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	filter := bson.M{"tripid": ps.ByName("tripid"), "deleted": bson.M{"$ne": true}}
	if err := db.TripsCollection.FindOne(ctx, filter).Decode(&trip); err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, trip)
}

// GET /api/trips
func GetUserTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"participants": userID, "deleted": bson.M{"$ne": true}}
	trips, err := utils.FindAndDecode[models.Trip](ctx, db.TripsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}

	if trips == nil {
		trips = []models.Trip{}
	}
	utils.RespondWithJSON(w, http.StatusOK, trips)
}

// PUT /api/trips/:tripid/notes
func UpdateSharedNotes(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Only participants can edit the shared notes.
	filter := bson.M{"tripid": ps.ByName("tripid"), "participants": userID}
	update := bson.M{"$set": bson.M{"shared_notes": payload.Notes}}

	result, err := db.TripsCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		http.Error(w, "Error updating notes", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Notes updated successfully"})
}

// AddParticipant appends a user to the trip's participant list; used by the
// invitation accept flow.
func AddParticipant(ctx context.Context, tripID, userID string) error {
	_, err := db.TripsCollection.UpdateOne(ctx,
		bson.M{"tripid": tripID},
		bson.M{"$addToSet": bson.M{"participants": userID}},
	)
	return err
}

// DELETE /api/trips/:tripid
func DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
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

	if trip.CreatorID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	update := bson.M{"$set": bson.M{"deleted": true}}
	if _, err := db.TripsCollection.UpdateOne(ctx, bson.M{"tripid": tripID}, update); err != nil {
		http.Error(w, "Error deleting trip", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Trip deleted successfully"})
}
