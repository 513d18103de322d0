package prefs

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"voyago/db"
	"voyago/itinerary"
	"voyago/models"
	"voyago/mq"
	"voyago/utils"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// Handlers owns the itinerary generator and the per-(trip,user) in-flight
// guard. One submission per participant may be generating at a time.
type Handlers struct {
	generator *itinerary.Generator

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewHandlers(generator *itinerary.Generator) *Handlers {
	return &Handlers{
		generator: generator,
		inFlight:  make(map[string]bool),
	}
}

func (h *Handlers) acquire(key string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inFlight[key] {
		return false
	}
	h.inFlight[key] = true
	return true
}

func (h *Handlers) release(key string) {
	h.mu.Lock()
	delete(h.inFlight, key)
	h.mu.Unlock()
}

// POST /api/trips/:tripid/preferences
//
// Saves the participant's preferences, marks them in_progress, runs the
// generator and stores the resulting itinerary. On success the status
// advances to completed. On generation failure the status stays
// in_progress; the participant may resubmit.
func (h *Handlers) SubmitPreferences(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	tripID := ps.ByName("tripid")

	var prefsIn models.PreferenceSet
	if err := json.NewDecoder(r.Body).Decode(&prefsIn); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(prefsIn); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid preferences: "+err.Error())
		return
	}
	if !utils.ClockOrder(prefsIn.DailyStartTime, prefsIn.DailyEndTime) {
		utils.RespondWithError(w, http.StatusBadRequest, "Daily end time must be after start time")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 90*time.Second)
	defer cancel()

	var trip models.Trip
	filter := bson.M{"tripid": tripID, "participants": userID, "deleted": bson.M{"$ne": true}}
	if err := db.TripsCollection.FindOne(ctx, filter).Decode(&trip); err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	key := tripID + "|" + userID
	if !h.acquire(key) {
		utils.RespondWithError(w, http.StatusConflict, "Itinerary generation already in progress")
		return
	}
	defer h.release(key)

	var existing models.TripDetails
	detailFilter := bson.M{"trip_id": tripID, "user_id": userID}
	err := db.TripDetailsCollection.FindOne(ctx, detailFilter).Decode(&existing)
	if err == nil && existing.Status == models.StatusCompleted {
		utils.RespondWithError(w, http.StatusConflict, "Preferences already submitted")
		return
	}

	now := time.Now()
	details := models.TripDetails{
		DetailID:    "td" + utils.GenerateRandomString(12),
		UserID:      userID,
		TripID:      tripID,
		Preferences: prefsIn,
		Status:      models.StatusInProgress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if existing.DetailID != "" {
		details.DetailID = existing.DetailID
		details.CreatedAt = existing.CreatedAt
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := db.TripDetailsCollection.ReplaceOne(ctx, detailFilter, details, opts); err != nil {
		http.Error(w, "Error saving preferences", http.StatusInternalServerError)
		return
	}
	mq.EmitDetailsSnapshot(ctx, tripID)

	days, err := h.generator.Generate(ctx, prefsIn, trip.StartDate)
	if err != nil {
		log.Printf("Itinerary generation failed for trip %s user %s: %v", tripID, userID, err)
		utils.RespondWithError(w, http.StatusBadGateway, "Itinerary generation failed")
		return
	}

	saved, err := itinerary.Save(ctx, tripID, userID, days)
	if err != nil {
		http.Error(w, "Error saving itinerary", http.StatusInternalServerError)
		return
	}

	update := bson.M{"$set": bson.M{"status": models.StatusCompleted, "updated_at": time.Now()}}
	if _, err := db.TripDetailsCollection.UpdateOne(ctx, detailFilter, update); err != nil {
		log.Printf("Failed to mark details completed for trip %s user %s: %v", tripID, userID, err)
	}
	mq.EmitDetailsSnapshot(ctx, tripID)

	utils.RespondWithJSON(w, http.StatusCreated, saved)
}

// GET /api/trips/:tripid/preferences — the caller's own submission.
func (h *Handlers) GetOwnDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var details models.TripDetails
	filter := bson.M{"trip_id": ps.ByName("tripid"), "user_id": userID}
	if err := db.TripDetailsCollection.FindOne(ctx, filter).Decode(&details); err != nil {
		http.Error(w, "No preferences submitted", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, details)
}

// PUT /api/trips/:tripid/status
//
// Explicit status write. Raw strings are parsed at the boundary; an
// unknown status never reaches the collection.
func (h *Handlers) UpdateParticipantStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	tripID := ps.ByName("tripid")

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	status, ok := models.ParseParticipantStatus(payload.Status)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown status: "+payload.Status)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"trip_id": tripID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now()},
		"$setOnInsert": bson.M{
			"detailid":   "td" + utils.GenerateRandomString(12),
			"trip_id":    tripID,
			"user_id":    userID,
			"created_at": time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := db.TripDetailsCollection.UpdateOne(ctx, filter, update, opts); err != nil {
		http.Error(w, "Error updating status", http.StatusInternalServerError)
		return
	}
	mq.EmitDetailsSnapshot(ctx, tripID)

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"status": status})
}
