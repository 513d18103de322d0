package tracker

import (
	"testing"
	"time"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startLoop runs the update loop without any feed subscription; tests push
// updates directly through ApplyDetails/ApplyInvitations.
func startLoop(t *testing.T) (*Session, chan StatusMap) {
	t.Helper()
	s := NewSession("t123")
	changes := make(chan StatusMap, 16)
	s.OnChange = func(m StatusMap) { changes <- m }
	go s.run()
	t.Cleanup(s.Close)
	return s, changes
}

func waitChange(t *testing.T, changes chan StatusMap) StatusMap {
	t.Helper()
	select {
	case m := <-changes:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("no OnChange within deadline")
		return nil
	}
}

func TestSessionAppliesBothFeeds(t *testing.T) {
	s, changes := startLoop(t)

	s.ApplyDetails(map[string]string{"u1": "in_progress"})
	waitChange(t, changes)

	s.ApplyInvitations([]models.Invitation{
		{InviteeID: "u1", Status: models.InviteAccepted},
		{InviteeID: "u2", Status: models.InvitePending},
	})
	m := waitChange(t, changes)

	assert.Equal(t, models.StatusInProgress, m["u1"])
	assert.Equal(t, models.StatusInvited, m["u2"])
}

func TestSessionSnapshotReturnsCopy(t *testing.T) {
	s, changes := startLoop(t)

	s.ApplyDetails(map[string]string{"u1": "completed"})
	waitChange(t, changes)

	snap := s.Snapshot()
	require.Equal(t, models.StatusCompleted, snap["u1"])

	snap["u1"] = models.StatusInvited
	again := s.Snapshot()
	assert.Equal(t, models.StatusCompleted, again["u1"])
}

func TestSessionCloseIsIdempotent(t *testing.T) {
	s, _ := startLoop(t)
	s.Close()
	s.Close()

	// after Close the loop drains out and Snapshot returns an empty
	// map instead of blocking
	s.ApplyDetails(map[string]string{"u1": "completed"})
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, s.Snapshot())
}
