// Package sessionhub is the authority on live dashboard sessions. It issues
// opaque tokens, answers validity queries, and pushes ordered change
// notifications to per-token watchers so every open dashboard page learns
// about a sign-out or expiry the moment it happens.
package sessionhub

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Session is the projection handed to guarded views: an opaque token plus
// the display identity. It is never persisted by callers.
type Session struct {
	Token     string
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// Kind classifies a change notification.
type Kind int

const (
	// SignedIn reports a (possibly refreshed) valid session.
	SignedIn Kind = iota
	// SignedOut reports revocation or expiry of the watched session.
	SignedOut
)

// Event is one change notification for a watched token.
type Event struct {
	Kind    Kind
	Session Session
}

// Hub tracks live sessions and their watchers. All state transitions happen
// under one lock, so a revocation observed by any watcher is also visible to
// every Lookup that runs afterwards: the notification can never race ahead
// of the validity query.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]Session
	watchers map[string]map[chan Event]struct{}
	ttl      time.Duration
	done     chan struct{}
}

const watcherBuffer = 8

// New creates a Hub whose sessions expire after ttl, and starts the
// background expiry sweep. Call Close on shutdown.
func New(ttl time.Duration) *Hub {
	h := &Hub{
		sessions: make(map[string]Session),
		watchers: make(map[string]map[chan Event]struct{}),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go h.sweep()
	return h
}

// Close stops the expiry sweep and revokes every live session.
func (h *Hub) Close() {
	close(h.done)
	h.mu.Lock()
	defer h.mu.Unlock()
	for token := range h.sessions {
		h.revokeLocked(token)
	}
}

// Issue creates a session for the given identity and returns it.
func (h *Hub) Issue(userID, email string) Session {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	s := Session{
		Token:     hex.EncodeToString(buf),
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().Add(h.ttl),
	}
	h.mu.Lock()
	h.sessions[s.Token] = s
	h.mu.Unlock()
	return s
}

// Lookup answers the session query: the current session for token, or false
// when the token is unknown, revoked, or expired.
func (h *Hub) Lookup(token string) (Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[token]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(s.ExpiresAt) {
		h.revokeLocked(token)
		return Session{}, false
	}
	return s, true
}

// Touch slides the expiry of a live session and notifies its watchers with a
// SignedIn event carrying the refreshed session.
func (h *Hub) Touch(token string) (Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[token]
	if !ok || time.Now().After(s.ExpiresAt) {
		return Session{}, false
	}
	s.ExpiresAt = time.Now().Add(h.ttl)
	h.sessions[token] = s
	h.notifyLocked(token, Event{Kind: SignedIn, Session: s})
	return s, true
}

// Revoke invalidates a session. Watchers receive a SignedOut event and their
// channels are closed; later Lookup calls for the token report no session.
func (h *Hub) Revoke(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.revokeLocked(token)
}

// Watch subscribes to change notifications for token. Events arrive in the
// order they occurred, and the channel is closed once the session is gone.
// If the token is already invalid the channel delivers SignedOut immediately,
// so a watcher registered while a slower session query is still in flight
// can never be left believing the session is alive. The returned cancel
// function releases the subscription and is safe to call from any exit path,
// any number of times.
func (h *Hub) Watch(token string) (<-chan Event, func()) {
	ch := make(chan Event, watcherBuffer)

	h.mu.Lock()
	s, ok := h.sessions[token]
	if !ok || time.Now().After(s.ExpiresAt) {
		h.mu.Unlock()
		ch <- Event{Kind: SignedOut}
		close(ch)
		return ch, func() {}
	}
	set, ok := h.watchers[token]
	if !ok {
		set = make(map[chan Event]struct{})
		h.watchers[token] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if set, ok := h.watchers[token]; ok {
				if _, live := set[ch]; live {
					delete(set, ch)
					close(ch)
					if len(set) == 0 {
						delete(h.watchers, token)
					}
				}
			}
		})
	}
	return ch, cancel
}

// revokeLocked removes the session and tells every watcher. Callers hold mu,
// so the map delete and the notification are one atomic transition.
func (h *Hub) revokeLocked(token string) {
	if _, ok := h.sessions[token]; !ok {
		return
	}
	delete(h.sessions, token)
	for ch := range h.watchers[token] {
		select {
		case ch <- Event{Kind: SignedOut}:
		default:
		}
		close(ch)
	}
	delete(h.watchers, token)
}

// notifyLocked fans an event out without closing channels. A watcher too slow
// to drain its buffer misses refresh events but never the terminal SignedOut,
// which always accompanies a channel close.
func (h *Hub) notifyLocked(token string, ev Event) {
	for ch := range h.watchers[token] {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (h *Hub) sweep() {
	interval := h.ttl / 4
	if interval > time.Minute || interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-h.done:
			return
		case now := <-ticker.C:
			h.mu.Lock()
			for token, s := range h.sessions {
				if now.After(s.ExpiresAt) {
					h.revokeLocked(token)
				}
			}
			h.mu.Unlock()
		}
	}
}
