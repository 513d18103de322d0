// itinerary.go
package itinerary

import (
	"context"
	"net/http"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Save persists a freshly generated itinerary, replacing any previous one
// for the same (trip, user) pair.
func Save(ctx context.Context, tripID, userID string, days []models.ItineraryDay) (models.Itinerary, error) {
	it := models.Itinerary{
		ItineraryID: utils.GenerateRandomString(13),
		TripID:      tripID,
		UserID:      userID,
		Days:        days,
		CreatedAt:   time.Now(),
	}

	filter := bson.M{"trip_id": tripID, "user_id": userID}
	if _, err := db.ItineraryCollection.DeleteMany(ctx, filter); err != nil {
		return models.Itinerary{}, err
	}
	if _, err := db.ItineraryCollection.InsertOne(ctx, it); err != nil {
		return models.Itinerary{}, err
	}
	return it, nil
}

// GET /api/trips/:tripid/itinerary
func GetTripItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"trip_id": ps.ByName("tripid"),
		"user_id": userID,
		"deleted": bson.M{"$ne": true},
	}

	var it models.Itinerary
	if err := db.ItineraryCollection.FindOne(ctx, filter).Decode(&it); err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}

	if it.Days == nil {
		it.Days = []models.ItineraryDay{}
	}
	utils.RespondWithJSON(w, http.StatusOK, it)
}

// GET /api/itineraries
func GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "deleted": bson.M{"$ne": true}}
	itineraries, err := utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	if itineraries == nil {
		itineraries = []models.Itinerary{}
	}
	utils.RespondWithJSON(w, http.StatusOK, itineraries)
}

// DELETE /api/itineraries/:itineraryid
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	itineraryID := ps.ByName("itineraryid")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID}).Decode(&it)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}

	if it.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	update := bson.M{"$set": bson.M{"deleted": true}}
	_, err = db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": itineraryID}, update)
	if err != nil {
		http.Error(w, "Error deleting itinerary", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Itinerary deleted successfully"})
}
