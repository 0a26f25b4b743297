package sessionhub

import (
	"testing"
	"time"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	h := New(time.Hour)
	t.Cleanup(h.Close)
	return h
}

func TestIssueAndLookup(t *testing.T) {
	h := newTestHub(t)

	s := h.Issue("u1", "ana@example.com")
	if s.Token == "" {
		t.Fatal("issued session has no token")
	}

	got, ok := h.Lookup(s.Token)
	if !ok {
		t.Fatal("lookup of a freshly issued token failed")
	}
	if got.UserID != "u1" || got.Email != "ana@example.com" {
		t.Errorf("session = %+v", got)
	}

	if _, ok := h.Lookup("not-a-token"); ok {
		t.Error("lookup of an unknown token succeeded")
	}
}

func TestRevokeEndsSessionAndNotifiesWatcher(t *testing.T) {
	h := newTestHub(t)
	s := h.Issue("u1", "ana@example.com")

	events, cancel := h.Watch(s.Token)
	defer cancel()

	h.Revoke(s.Token)

	select {
	case ev, open := <-events:
		if !open {
			t.Fatal("channel closed before delivering SignedOut")
		}
		if ev.Kind != SignedOut {
			t.Fatalf("event kind = %v, want SignedOut", ev.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("no event after revoke")
	}

	// The channel is closed after the terminal event.
	select {
	case _, open := <-events:
		if open {
			t.Fatal("unexpected event after SignedOut")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after SignedOut")
	}

	// Any lookup that runs after the notification sees the revocation too.
	if _, ok := h.Lookup(s.Token); ok {
		t.Error("lookup succeeded after revoke")
	}
}

func TestWatchInvalidTokenDeliversSignedOutImmediately(t *testing.T) {
	h := newTestHub(t)

	events, cancel := h.Watch("never-issued")
	defer cancel()

	select {
	case ev, open := <-events:
		if !open {
			t.Fatal("channel closed before delivering SignedOut")
		}
		if ev.Kind != SignedOut {
			t.Fatalf("event kind = %v, want SignedOut", ev.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("watching an invalid token must deliver SignedOut at once")
	}
}

func TestCancelStopsDeliveryAndIsIdempotent(t *testing.T) {
	h := newTestHub(t)
	s := h.Issue("u1", "ana@example.com")

	events, cancel := h.Watch(s.Token)
	cancel()
	cancel() // second call is a no-op

	if _, open := <-events; open {
		t.Fatal("channel still open after cancel")
	}

	// Revoking after cancel must not panic on the closed channel.
	h.Revoke(s.Token)
}

func TestTouchSlidesExpiryAndNotifies(t *testing.T) {
	h := newTestHub(t)
	s := h.Issue("u1", "ana@example.com")

	events, cancel := h.Watch(s.Token)
	defer cancel()

	before := s.ExpiresAt
	time.Sleep(5 * time.Millisecond)
	refreshed, ok := h.Touch(s.Token)
	if !ok {
		t.Fatal("touch of a live session failed")
	}
	if !refreshed.ExpiresAt.After(before) {
		t.Errorf("expiry not extended: %v -> %v", before, refreshed.ExpiresAt)
	}

	select {
	case ev := <-events:
		if ev.Kind != SignedIn {
			t.Fatalf("event kind = %v, want SignedIn", ev.Kind)
		}
		if !ev.Session.ExpiresAt.Equal(refreshed.ExpiresAt) {
			t.Errorf("event carries stale session: %+v", ev.Session)
		}
	case <-time.After(time.Second):
		t.Fatal("no SignedIn event after touch")
	}

	if _, ok := h.Touch("never-issued"); ok {
		t.Error("touch of an unknown token succeeded")
	}
}

func TestLookupRevokesExpiredSession(t *testing.T) {
	h := New(time.Millisecond)
	t.Cleanup(h.Close)

	s := h.Issue("u1", "ana@example.com")
	time.Sleep(5 * time.Millisecond)

	if _, ok := h.Lookup(s.Token); ok {
		t.Fatal("lookup of an expired session succeeded")
	}

	// A watcher registered after expiry learns about it immediately.
	events, cancel := h.Watch(s.Token)
	defer cancel()
	select {
	case ev := <-events:
		if ev.Kind != SignedOut {
			t.Fatalf("event kind = %v, want SignedOut", ev.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("no SignedOut for expired session")
	}
}

func TestCloseRevokesAllSessions(t *testing.T) {
	h := New(time.Hour)
	a := h.Issue("u1", "a@example.com")
	b := h.Issue("u2", "b@example.com")

	events, cancel := h.Watch(a.Token)
	defer cancel()

	h.Close()

	select {
	case ev := <-events:
		if ev.Kind != SignedOut {
			t.Fatalf("event kind = %v, want SignedOut", ev.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("no SignedOut on close")
	}
	if _, ok := h.Lookup(a.Token); ok {
		t.Error("session a survived close")
	}
	if _, ok := h.Lookup(b.Token); ok {
		t.Error("session b survived close")
	}
}
