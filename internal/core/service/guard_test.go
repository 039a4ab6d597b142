package service

import (
	"sync"
	"testing"

	"github.com/forumapp/forumcli/internal/core/domain"
)

type fakeSessionReader struct {
	mu      sync.Mutex
	session *domain.Session
}

func (r *fakeSessionReader) Current() *domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return nil
	}
	c := *r.session
	return &c
}

func (r *fakeSessionReader) set(s *domain.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = s
}

func TestGuard_IsAuthenticated(t *testing.T) {
	reader := &fakeSessionReader{}
	guard := NewGuard(reader)

	if guard.IsAuthenticated() {
		t.Fatalf("no session, guard must deny")
	}

	reader.set(&domain.Session{UserID: 1, Role: domain.RoleUser})
	if !guard.IsAuthenticated() {
		t.Fatalf("session present, guard must allow")
	}
}

func TestGuard_IsModerator(t *testing.T) {
	reader := &fakeSessionReader{}
	guard := NewGuard(reader)

	if guard.IsModerator() {
		t.Fatalf("no session can never be a moderator")
	}

	reader.set(&domain.Session{UserID: 1, Role: domain.RoleUser})
	if guard.IsModerator() {
		t.Fatalf("plain user must not pass the moderator gate")
	}

	reader.set(&domain.Session{UserID: 2, Role: domain.RoleModerator})
	if !guard.IsModerator() {
		t.Fatalf("moderator must pass the gate")
	}
}

// A guard decision is never cached: the call after a logout denies.
func TestGuard_ReflectsLogoutImmediately(t *testing.T) {
	reader := &fakeSessionReader{}
	guard := NewGuard(reader)

	reader.set(&domain.Session{UserID: 1, Role: domain.RoleModerator})
	if !guard.IsAuthenticated() || !guard.IsModerator() {
		t.Fatalf("guard must allow while logged in")
	}

	reader.set(nil)
	if guard.IsAuthenticated() || guard.IsModerator() {
		t.Fatalf("guard must deny on the first call after logout")
	}
}
