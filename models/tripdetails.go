package models

import "time"

// ParticipantStatus is the merged per-user progress value shown to trip
// organizers. Values arriving from external data are validated with
// ParseParticipantStatus; unknown strings never enter the map.
type ParticipantStatus string

const (
	StatusInviteSent ParticipantStatus = "invite_sent"
	StatusInvited    ParticipantStatus = "invited"
	StatusAccepted   ParticipantStatus = "accepted"
	StatusRejected   ParticipantStatus = "rejected"
	StatusNotStarted ParticipantStatus = "not_started"
	StatusInProgress ParticipantStatus = "in_progress"
	StatusCompleted  ParticipantStatus = "completed"
)

var participantStatuses = map[string]ParticipantStatus{
	"invite_sent": StatusInviteSent,
	"invited":     StatusInvited,
	"accepted":    StatusAccepted,
	"rejected":    StatusRejected,
	"not_started": StatusNotStarted,
	"in_progress": StatusInProgress,
	"completed":   StatusCompleted,
}

// ParseParticipantStatus validates a raw status string at the boundary.
func ParseParticipantStatus(raw string) (ParticipantStatus, bool) {
	s, ok := participantStatuses[raw]
	return s, ok
}

// PreferenceSet holds the trip preferences a participant submits. Immutable
// once submitted; consumed once by the itinerary generator.
type PreferenceSet struct {
	Budget                   int      `json:"budget" bson:"budget" validate:"required,gt=0"`
	PaceOfTravel             string   `json:"pace_of_travel" bson:"pace_of_travel" validate:"required,oneof=Slow Medium Fast"`
	CuisinePreferences       []string `json:"cuisine_preferences" bson:"cuisine_preferences" validate:"dive,oneof=Chinese Japanese European Mediterranean Indian American Italian Mexican Thai Local"`
	CrowdPreference          string   `json:"crowd_preference" bson:"crowd_preference" validate:"required,oneof=Empty Medium Busy"`
	TransportationPreference string   `json:"transportation_preference" bson:"transportation_preference" validate:"required,oneof='Uber' 'Rental Car' 'Public Transport' 'Walk' 'Bike'"`
	DailyStartTime           string   `json:"daily_start_time" bson:"daily_start_time" validate:"required"`
	DailyEndTime             string   `json:"daily_end_time" bson:"daily_end_time" validate:"required"`
	ActivityPreferences      []string `json:"activity_preferences" bson:"activity_preferences" validate:"dive,oneof='Land-based Adventure' 'Water-based Adventure' 'Air-based Adventure' 'Museums' 'Local Markets' 'Local Restaurants' 'Malls' 'Bars' 'Parties' 'City Explorer'"`
	CustomAdditions          string   `json:"custom_additions" bson:"custom_additions"`
}

// TripDetails is the per-(trip,user) preference record plus the explicit
// progress status authoritative for not_started/in_progress/completed.
type TripDetails struct {
	DetailID    string            `json:"detailid" bson:"detailid"`
	UserID      string            `json:"user_id" bson:"user_id"`
	TripID      string            `json:"trip_id" bson:"trip_id"`
	Preferences PreferenceSet     `json:"preferences" bson:"preferences"`
	Status      ParticipantStatus `json:"status" bson:"status"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" bson:"updated_at"`
}
