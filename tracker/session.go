package tracker

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"voyago/models"
	"voyago/mq"
	"voyago/rdx"

	"github.com/redis/go-redis/v9"
)

type sourceKind int

const (
	sourceDetails sourceKind = iota
	sourceInvites
)

type update struct {
	kind    sourceKind
	details map[string]string
	invites []models.Invitation
}

// Session owns one trip's status map. Both feeds may emit concurrently;
// every update is pushed through a single channel consumed by one goroutine,
// so the map itself is never touched from two goroutines at once.
type Session struct {
	TripID string

	updates   chan update
	snapshots chan chan StatusMap
	done      chan struct{}
	closeOnce sync.Once
	cancel    context.CancelFunc

	// OnChange, if set before Start, is called from the update goroutine
	// with a copy of the map after every applied update.
	OnChange func(StatusMap)

	statuses StatusMap
}

func NewSession(tripID string) *Session {
	return &Session{
		TripID:    tripID,
		updates:   make(chan update, 16),
		snapshots: make(chan chan StatusMap),
		done:      make(chan struct{}),
		statuses:  StatusMap{},
	}
}

// Start subscribes to the trip's detail and invitation channels and begins
// the update loop. Subscription failures are logged; the map simply goes
// stale for the failed feed.
func (s *Session) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	sub := rdx.Conn.Subscribe(ctx, mq.DetailsChannel(s.TripID), mq.InvitesChannel(s.TripID))

	go s.receive(ctx, sub)
	go s.run()
}

func (s *Session) receive(ctx context.Context, sub *redis.PubSub) {
	defer sub.Close()
	ch := sub.Channel()
	detailsChannel := mq.DetailsChannel(s.TripID)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				log.Printf("[tracker] feed closed for trip %s; map left stale", s.TripID)
				return
			}
			if msg.Channel == detailsChannel {
				var snap map[string]string
				if err := json.Unmarshal([]byte(msg.Payload), &snap); err != nil {
					log.Printf("[tracker] bad details payload for trip %s: %v", s.TripID, err)
					continue
				}
				s.ApplyDetails(snap)
			} else {
				var invites []models.Invitation
				if err := json.Unmarshal([]byte(msg.Payload), &invites); err != nil {
					log.Printf("[tracker] bad invitation payload for trip %s: %v", s.TripID, err)
					continue
				}
				s.ApplyInvitations(invites)
			}
		}
	}
}

func (s *Session) run() {
	for {
		select {
		case <-s.done:
			return
		case u := <-s.updates:
			switch u.kind {
			case sourceDetails:
				mergeDetails(s.statuses, u.details)
			case sourceInvites:
				mergeInvitations(s.statuses, u.invites)
			}
			if s.OnChange != nil {
				s.OnChange(s.statuses.clone())
			}
		case reply := <-s.snapshots:
			reply <- s.statuses.clone()
		}
	}
}

// ApplyDetails enqueues a trip-detail snapshot.
func (s *Session) ApplyDetails(snapshot map[string]string) {
	select {
	case s.updates <- update{kind: sourceDetails, details: snapshot}:
	case <-s.done:
	}
}

// ApplyInvitations enqueues an invitation set.
func (s *Session) ApplyInvitations(invites []models.Invitation) {
	select {
	case s.updates <- update{kind: sourceInvites, invites: invites}:
	case <-s.done:
	}
}

// Snapshot returns a copy of the current map.
func (s *Session) Snapshot() StatusMap {
	reply := make(chan StatusMap, 1)
	select {
	case s.snapshots <- reply:
		return <-reply
	case <-s.done:
		return StatusMap{}
	}
}

// Close releases both subscriptions and stops the update loop. No OnChange
// call fires after Close returns the loop to idle.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		close(s.done)
	})
}
