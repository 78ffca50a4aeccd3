package gateway

import (
	"sync"

	"github.com/google/uuid"
)

// Rooms is the fan-out index: channel id -> connections subscribed to it.
// It knows nothing about users; identity is always resolved through the
// Presence registry.
type Rooms struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]map[uuid.UUID]*Client
}

func NewRooms() *Rooms {
	return &Rooms{
		rooms: map[uuid.UUID]map[uuid.UUID]*Client{},
	}
}

func (r *Rooms) Join(channelID uuid.UUID, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rooms[channelID] == nil {
		r.rooms[channelID] = map[uuid.UUID]*Client{}
	}
	r.rooms[channelID][c.ID] = c
}

func (r *Rooms) Leave(channelID, connID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.rooms[channelID]; ok {
		delete(set, connID)
		if len(set) == 0 {
			delete(r.rooms, channelID)
		}
	}
}

func (r *Rooms) MembersOf(channelID uuid.UUID) []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.rooms[channelID]
	out := make([]uuid.UUID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// Broadcast queues the event on every connection in the channel except
// exclude (uuid.Nil excludes nobody). The snapshot is taken under the read
// lock; sends are non-blocking, so a connection torn down mid-broadcast
// just drops the frame.
func (r *Rooms) Broadcast(channelID uuid.UUID, ev Event, exclude uuid.UUID) {
	r.mu.RLock()
	targets := make([]*Client, 0, len(r.rooms[channelID]))
	for id, c := range r.rooms[channelID] {
		if id == exclude {
			continue
		}
		targets = append(targets, c)
	}
	r.mu.RUnlock()

	for _, c := range targets {
		c.trySend(ev)
	}
}
