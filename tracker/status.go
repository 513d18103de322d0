// Package tracker maintains, per trip, the merged participant status map
// shown to trip organizers. Two independent feeds contribute: trip-detail
// status snapshots (authoritative for preference progress) and invitation
// sets (mapped to derived statuses).
package tracker

import (
	"voyago/models"
)

// StatusMap maps userID to the merged participant status.
type StatusMap map[string]models.ParticipantStatus

func (m StatusMap) clone() StatusMap {
	out := make(StatusMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// mergeDetails overwrites entries from a trip-detail snapshot. Trip-detail
// records are authoritative for not_started/in_progress/completed; unknown
// status strings never enter the map. Reapplying the same snapshot is a
// no-op.
func mergeDetails(m StatusMap, snapshot map[string]string) {
	for userID, raw := range snapshot {
		status, ok := models.ParseParticipantStatus(raw)
		if !ok {
			continue
		}
		m[userID] = status
	}
}

// mergeInvitations folds an invitation set into the map:
//
//	pending  → invited
//	accepted → not_started, unless the user is already in_progress or
//	           completed (monotonicity guard: an invitation record must not
//	           regress preference progress)
//	rejected → rejected
//
// Any other invitation status leaves the entry unchanged.
func mergeInvitations(m StatusMap, invites []models.Invitation) {
	for _, inv := range invites {
		switch inv.Status {
		case models.InvitePending:
			m[inv.InviteeID] = models.StatusInvited
		case models.InviteAccepted:
			if cur := m[inv.InviteeID]; cur == models.StatusInProgress || cur == models.StatusCompleted {
				continue
			}
			m[inv.InviteeID] = models.StatusNotStarted
		case models.InviteRejected:
			m[inv.InviteeID] = models.StatusRejected
		}
	}
}
