package tracker

import (
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
)

func TestMergeDetailsOverwrites(t *testing.T) {
	m := StatusMap{"u1": models.StatusInvited}

	mergeDetails(m, map[string]string{"u1": "in_progress", "u2": "not_started"})

	assert.Equal(t, models.StatusInProgress, m["u1"])
	assert.Equal(t, models.StatusNotStarted, m["u2"])
}

func TestMergeDetailsIdempotent(t *testing.T) {
	snapshot := map[string]string{"u1": "completed", "u2": "in_progress"}

	once := StatusMap{}
	mergeDetails(once, snapshot)

	twice := StatusMap{}
	mergeDetails(twice, snapshot)
	mergeDetails(twice, snapshot)

	assert.Equal(t, once, twice)
}

func TestMergeDetailsRejectsUnknownStatus(t *testing.T) {
	m := StatusMap{}
	mergeDetails(m, map[string]string{"u1": "sleeping", "u2": "completed"})

	assert.NotContains(t, m, "u1")
	assert.Equal(t, models.StatusCompleted, m["u2"])
}

func TestMergeInvitationsPendingBecomesInvited(t *testing.T) {
	m := StatusMap{}
	mergeInvitations(m, []models.Invitation{
		{InviteeID: "u1", Status: models.InvitePending},
	})

	assert.Equal(t, models.StatusInvited, m["u1"])
}

func TestMergeInvitationsAcceptedDoesNotRegressProgress(t *testing.T) {
	m := StatusMap{
		"u1": models.StatusInProgress,
		"u2": models.StatusCompleted,
		"u3": models.StatusInvited,
	}

	invites := []models.Invitation{
		{InviteeID: "u1", Status: models.InviteAccepted},
		{InviteeID: "u2", Status: models.InviteAccepted},
		{InviteeID: "u3", Status: models.InviteAccepted},
	}
	mergeInvitations(m, invites)

	assert.Equal(t, models.StatusInProgress, m["u1"])
	assert.Equal(t, models.StatusCompleted, m["u2"])
	assert.Equal(t, models.StatusNotStarted, m["u3"])
}

func TestMergeInvitationsRejectedAlwaysWins(t *testing.T) {
	for _, prior := range []models.ParticipantStatus{
		models.StatusInvited,
		models.StatusNotStarted,
		models.StatusInProgress,
		models.StatusCompleted,
	} {
		m := StatusMap{"u1": prior}
		mergeInvitations(m, []models.Invitation{
			{InviteeID: "u1", Status: models.InviteRejected},
		})
		assert.Equal(t, models.StatusRejected, m["u1"], "prior %s", prior)
	}
}

func TestMergeOrderInsensitiveForIndependentUsers(t *testing.T) {
	details := map[string]string{"u1": "in_progress"}
	invites := []models.Invitation{{InviteeID: "u2", Status: models.InvitePending}}

	a := StatusMap{}
	mergeDetails(a, details)
	mergeInvitations(a, invites)

	b := StatusMap{}
	mergeInvitations(b, invites)
	mergeDetails(b, details)

	assert.Equal(t, a, b)
}

func TestCloneIsIndependent(t *testing.T) {
	m := StatusMap{"u1": models.StatusInvited}
	c := m.clone()
	c["u1"] = models.StatusCompleted

	assert.Equal(t, models.StatusInvited, m["u1"])
}
