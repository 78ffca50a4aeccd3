package gateway

import (
	"sync"

	"campuschat/internal/chat"

	"github.com/google/uuid"
)

// PresenceEntry is the denormalized view of one live connection. A user
// with two devices has two entries.
type PresenceEntry struct {
	ConnID   uuid.UUID
	Identity chat.Identity
	Channels map[uuid.UUID]struct{}
}

// Presence tracks which connections are live and which channels each one
// watches, plus the reverse user -> connections index for O(1) IsOnline.
// The raw maps never leave this type.
type Presence struct {
	mu sync.RWMutex
	// connection id -> entry
	conns map[uuid.UUID]*PresenceEntry
	// user id -> set of that user's connection ids
	users map[uuid.UUID]map[uuid.UUID]struct{}
}

func NewPresence() *Presence {
	return &Presence{
		conns: map[uuid.UUID]*PresenceEntry{},
		users: map[uuid.UUID]map[uuid.UUID]struct{}{},
	}
}

func (p *Presence) Register(connID uuid.UUID, identity chat.Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.conns[connID] = &PresenceEntry{
		ConnID:   connID,
		Identity: identity,
		Channels: map[uuid.UUID]struct{}{},
	}

	if p.users[identity.UserID] == nil {
		p.users[identity.UserID] = map[uuid.UUID]struct{}{}
	}
	p.users[identity.UserID][connID] = struct{}{}
}

// Unregister removes the connection and returns the channels it was
// watching. Removing a user's last connection drops the user key entirely,
// never leaving an empty set behind.
func (p *Presence) Unregister(connID uuid.UUID) []uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.conns[connID]
	if !ok {
		return nil
	}
	delete(p.conns, connID)

	if set, ok := p.users[entry.Identity.UserID]; ok {
		delete(set, connID)
		if len(set) == 0 {
			delete(p.users, entry.Identity.UserID)
		}
	}

	channels := make([]uuid.UUID, 0, len(entry.Channels))
	for ch := range entry.Channels {
		channels = append(channels, ch)
	}
	return channels
}

func (p *Presence) Watch(connID, channelID uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if entry, ok := p.conns[connID]; ok {
		entry.Channels[channelID] = struct{}{}
	}
}

// Unwatch reports whether the connection was actually watching the channel,
// so an unsubscribe of a never-watched channel stays a silent no-op.
func (p *Presence) Unwatch(connID, channelID uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	entry, ok := p.conns[connID]
	if !ok {
		return false
	}
	if _, watching := entry.Channels[channelID]; !watching {
		return false
	}
	delete(entry.Channels, channelID)
	return true
}

func (p *Presence) Identity(connID uuid.UUID) (chat.Identity, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entry, ok := p.conns[connID]
	if !ok {
		return chat.Identity{}, false
	}
	return entry.Identity, true
}

func (p *Presence) IsOnline(userID uuid.UUID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.users[userID]
	return ok
}

// OnlineOf filters the candidate user ids down to those currently online.
func (p *Presence) OnlineOf(candidates []uuid.UUID) map[uuid.UUID]bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	online := make(map[uuid.UUID]bool, len(candidates))
	for _, id := range candidates {
		if _, ok := p.users[id]; ok {
			online[id] = true
		}
	}
	return online
}
