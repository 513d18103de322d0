package profile

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"voyago/db"
	"voyago/models"
	"voyago/rdx"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const profileCacheTTL = 10 * time.Minute

// GET /api/profile — the authenticated user's own profile.
func GetOwnProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if cached, err := rdx.RdxGet("profile:" + userID); err == nil && cached != "" {
		var resp models.UserProfileResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			utils.RespondWithJSON(w, http.StatusOK, resp)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	resp := toProfileResponse(user)
	cacheProfile(userID, resp)
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/users/:username — public profile lookup.
func GetUserProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	filter := bson.M{"username": ps.ByName("username")}
	if err := db.UserCollection.FindOne(ctx, filter).Decode(&user); err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toProfileResponse(user))
}

// PUT /api/profile
func EditProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	fields := bson.M{}
	if payload.Name != "" {
		fields["name"] = payload.Name
	}
	if payload.Avatar != "" {
		fields["avatar"] = payload.Avatar
	}
	if len(fields) == 0 {
		http.Error(w, "Nothing to update", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	filter := bson.M{"userid": userID}
	update := bson.M{"$set": fields}
	if _, err := db.UserCollection.UpdateOne(ctx, filter, update); err != nil {
		http.Error(w, "Error updating profile", http.StatusInternalServerError)
		return
	}
	if err := db.UserCollection.FindOne(ctx, filter).Decode(&user); err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	resp := toProfileResponse(user)
	cacheProfile(userID, resp)
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toProfileResponse(user models.User) models.UserProfileResponse {
	return models.UserProfileResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		LastLogin: user.LastLogin,
	}
}

func cacheProfile(userID string, resp models.UserProfileResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := rdx.SetWithExpiry("profile:"+userID, string(data), profileCacheTTL); err != nil {
		log.Printf("Failed to cache profile for %s: %v", userID, err)
	}
}
