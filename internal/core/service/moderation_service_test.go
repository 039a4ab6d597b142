package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
)

func TestModerationService_RequiresModerator(t *testing.T) {
	users := newStubUserGateway()
	reader := &fakeSessionReader{}
	svc := NewModerationService(users, NewGuard(reader), zerolog.Nop())
	ctx := context.Background()

	reader.set(&domain.Session{UserID: 1, Role: domain.RoleUser})

	if _, err := svc.ListUsers(ctx); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("ListUsers without moderator role must fail, got %v", err)
	}
	if _, err := svc.BanUser(ctx, 2); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("BanUser without moderator role must fail, got %v", err)
	}
	if _, err := svc.UnbanUser(ctx, 2); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("UnbanUser without moderator role must fail, got %v", err)
	}
	if err := svc.DeleteUser(ctx, 2); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("DeleteUser without moderator role must fail, got %v", err)
	}
}

func TestModerationService_ModeratorAllowed(t *testing.T) {
	users := newStubUserGateway()
	reader := &fakeSessionReader{}
	reader.set(&domain.Session{UserID: 1, Role: domain.RoleModerator})
	svc := NewModerationService(users, NewGuard(reader), zerolog.Nop())

	if _, err := svc.ListUsers(context.Background()); err != nil {
		t.Fatalf("ListUsers as moderator: %v", err)
	}
	if err := svc.DeleteUser(context.Background(), 2); err != nil {
		t.Fatalf("DeleteUser as moderator: %v", err)
	}
}

type fakeSessionManager struct {
	fakeSessionReader
	lastUpdate domain.ProfileUpdate
}

func (m *fakeSessionManager) Restore(_ context.Context) *domain.Session { return m.Current() }

func (m *fakeSessionManager) Login(_ context.Context, _, _ string) (*domain.Session, error) {
	return m.Current(), nil
}

func (m *fakeSessionManager) Register(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
	return nil, nil
}

func (m *fakeSessionManager) Logout(_ context.Context) { m.set(nil) }

func (m *fakeSessionManager) UpdateProfile(_ context.Context, update domain.ProfileUpdate) (*domain.Session, error) {
	cur := m.Current()
	if cur == nil {
		return nil, domain.ErrNoSession
	}
	m.lastUpdate = update
	merged := cur.Merge(update)
	m.set(&merged)
	return &merged, nil
}

func (m *fakeSessionManager) Close() {}

func TestProfileService_UpdateOwn(t *testing.T) {
	users := newStubUserGateway()
	users.put(domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Role: domain.RoleUser, PhoneNumber: "5550001"})

	sessions := &fakeSessionManager{}
	sessions.set(&domain.Session{UserID: 1, Username: "alice", Email: "alice@example.com", Role: domain.RoleUser, PhoneNumber: "5550001"})

	svc := NewProfileService(users, sessions, zerolog.Nop())
	sess, err := svc.UpdateOwn(context.Background(), ports.UpdateUserInput{Username: "alice2"})
	if err != nil {
		t.Fatalf("UpdateOwn: %v", err)
	}
	if sess.Username != "alice2" {
		t.Fatalf("session username = %q, want alice2", sess.Username)
	}
	if sess.Email != "alice@example.com" || sess.PhoneNumber != "5550001" {
		t.Fatalf("untouched fields must survive the update: %+v", sess)
	}
}

func TestProfileService_UpdateOwn_NoSession(t *testing.T) {
	svc := NewProfileService(newStubUserGateway(), &fakeSessionManager{}, zerolog.Nop())
	if _, err := svc.UpdateOwn(context.Background(), ports.UpdateUserInput{Username: "x"}); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}
