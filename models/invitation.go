package models

import "time"

// InvitationStatus lifecycle: created pending, mutated once on accept or
// reject, never deleted.
type InvitationStatus string

const (
	InvitePending  InvitationStatus = "pending"
	InviteAccepted InvitationStatus = "accepted"
	InviteRejected InvitationStatus = "rejected"
)

func ParseInvitationStatus(raw string) (InvitationStatus, bool) {
	switch InvitationStatus(raw) {
	case InvitePending, InviteAccepted, InviteRejected:
		return InvitationStatus(raw), true
	}
	return "", false
}

type Invitation struct {
	InviteID  string           `json:"inviteid" bson:"inviteid"`
	TripID    string           `json:"trip_id" bson:"trip_id"`
	InviterID string           `json:"inviter_id" bson:"inviter_id"`
	InviteeID string           `json:"invitee_id" bson:"invitee_id"`
	Status    InvitationStatus `json:"status" bson:"status"`
	TripName  string           `json:"trip_name" bson:"trip_name"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
}
