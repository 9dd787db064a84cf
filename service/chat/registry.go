package chat

import (
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Identity is the display identity a connection presents to its peers.
// UID doubles as the private channel key for call signaling; it is bound
// at setup time. Name is what room member lists show.
type Identity struct {
	UID    string `json:"uid,omitempty"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// State is the explicit per-connection lifecycle axis. Identity binding
// and room membership are independent; InRoom implies Identified.
type State int

const (
	StateAnonymous State = iota
	StateIdentified
	StateInRoom
)

type entry struct {
	client  *Client
	name    string
	avatar  string
	channel string // private channel key, bound once at setup
	room    string // empty until join
}

func (e *entry) state() State {
	switch {
	case e.room != "":
		return StateInRoom
	case e.name != "" || e.channel != "":
		return StateIdentified
	default:
		return StateAnonymous
	}
}

// Registry is the single source of truth for who is connected, as whom,
// in which room. Room membership is always derived from connection state
// by scanning, never cached, so it cannot desynchronize. All operations
// are total: unknown connection ids are no-ops, not errors, because
// disconnect races are expected.
type Registry struct {
	mu     sync.RWMutex
	byConn map[string]*entry
}

func NewRegistry() *Registry {
	return &Registry{byConn: make(map[string]*entry)}
}

// Register allocates an empty entry for a freshly connected socket.
func (r *Registry) Register(connID string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byConn[connID] = &entry{client: c}
}

// SetIdentity binds a display identity and subscribes the connection to
// its private channel. Calling again rebinds.
func (r *Registry) SetIdentity(connID string, id Identity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byConn[connID]
	if !ok {
		return
	}
	if id.Name != "" {
		e.name = id.Name
	}
	if id.Avatar != "" {
		e.avatar = id.Avatar
	}
	e.channel = id.UID
}

// Join sets the connection's current room and upserts its identity.
// Any previous room membership is cleared first, so switching rooms by
// emitting only join_room leaves no ghost membership behind. The member
// list of the new room is computed under the same lock, so it reflects
// the state right after this mutation. prevRoom reports the room left
// behind ("" if none, or if re-joining the same room).
func (r *Registry) Join(connID, room string, id Identity) (members []string, prevRoom string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byConn[connID]
	if !ok {
		return nil, ""
	}
	if e.room != room {
		prevRoom = e.room
	}
	e.room = room
	if id.Name != "" {
		e.name = id.Name
	}
	if id.Avatar != "" {
		e.avatar = id.Avatar
	}
	return r.membersLocked(room), prevRoom
}

// Leave clears the current room if it matches. A leave for a room the
// connection is not in is a silent no-op (stale or duplicate events).
func (r *Registry) Leave(connID, room string) (members []string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, found := r.byConn[connID]
	if !found || e.room != room {
		return nil, false
	}
	e.room = ""
	return r.membersLocked(room), true
}

// Unregister deletes the entry entirely and reports the last known
// (room, identity) so the caller can emit the departure broadcast.
// members is the room's membership after the removal.
func (r *Registry) Unregister(connID string) (room string, id Identity, members []string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, found := r.byConn[connID]
	if !found {
		return "", Identity{}, nil, false
	}
	delete(r.byConn, connID)
	id = Identity{UID: e.channel, Name: e.name, Avatar: e.avatar}
	if e.room == "" {
		return "", id, nil, true
	}
	return e.room, id, r.membersLocked(e.room), true
}

// MembersOf derives the de-duplicated set of display identities bound to
// room. One identity holding several connections appears once.
func (r *Registry) MembersOf(room string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.membersLocked(room)
}

func (r *Registry) membersLocked(room string) []string {
	var names []string
	for _, e := range r.byConn {
		if e.room == room && e.name != "" {
			names = append(names, e.name)
		}
	}
	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}

// RoomClients returns the connections currently in room, optionally
// excluding one sender.
func (r *Registry) RoomClients(room, exceptConnID string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Client
	for connID, e := range r.byConn {
		if e.room == room && connID != exceptConnID {
			out = append(out, e.client)
		}
	}
	return out
}

// ChannelClients returns every connection subscribed to the private
// channel, regardless of which room (if any) it is currently in.
func (r *Registry) ChannelClients(channel string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Client
	for _, e := range r.byConn {
		if e.channel != "" && e.channel == channel {
			out = append(out, e.client)
		}
	}
	return out
}

// IdentityOf reports the identity currently bound to a connection.
func (r *Registry) IdentityOf(connID string) (Identity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byConn[connID]
	if !ok {
		return Identity{}, false
	}
	return Identity{UID: e.channel, Name: e.name, Avatar: e.avatar}, true
}

// StateOf reports the connection's lifecycle state; unknown ids are
// Anonymous.
func (r *Registry) StateOf(connID string) State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byConn[connID]
	if !ok {
		return StateAnonymous
	}
	return e.state()
}

// Len reports the number of live connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byConn)
}
