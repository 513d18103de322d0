package models

import "time"

// PlaceDetails is the destination snapshot stored on a trip.
type PlaceDetails struct {
	Name             string  `json:"name" bson:"name"`
	FormattedAddress string  `json:"formatted_address" bson:"formatted_address"`
	Lat              float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng              float64 `json:"lng,omitempty" bson:"lng,omitempty"`
}

type Trip struct {
	TripID       string       `json:"tripid" bson:"tripid"`
	CreatorID    string       `json:"creator_id" bson:"creator_id"`
	Place        PlaceDetails `json:"place" bson:"place"`
	StartDate    time.Time    `json:"start_date" bson:"start_date"`
	EndDate      time.Time    `json:"end_date" bson:"end_date"`
	Participants []string     `json:"participants" bson:"participants"`
	SharedNotes  string       `json:"shared_notes" bson:"shared_notes"`
	CoverPhoto   string       `json:"cover_photo,omitempty" bson:"cover_photo,omitempty"`
	Deleted      bool         `json:"-" bson:"deleted,omitempty"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
}
