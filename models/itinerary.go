package models

import "time"

// Itinerary is the generated travel plan persisted per (trip, user).
type Itinerary struct {
	ItineraryID string         `json:"itineraryid" bson:"itineraryid,omitempty"`
	TripID      string         `json:"trip_id" bson:"trip_id"`
	UserID      string         `json:"user_id" bson:"user_id"`
	Days        []ItineraryDay `json:"days" bson:"days"`
	Deleted     bool           `json:"-" bson:"deleted,omitempty"` // Internal use only
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
}

// ItineraryDay is one day of the plan. Activities keep the order they were
// encountered in the generated text.
type ItineraryDay struct {
	Date       time.Time           `json:"date" bson:"date"`
	Activities []ItineraryActivity `json:"activities" bson:"activities"`
}

type ItineraryActivity struct {
	// Time is a free-text label such as "09:00 AM", not a parsed clock time.
	Time        string `json:"time" bson:"time"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	ImageURL    string `json:"image_url,omitempty" bson:"image_url,omitempty"`
}
