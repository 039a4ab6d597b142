package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
)

// ModerationService wraps the user-management surface of the moderator
// panel. The guard check here saves a round trip the server would reject
// anyway; the server remains the actual authority.
type ModerationService struct {
	users ports.UserGateway
	guard *Guard
	log   zerolog.Logger
}

func NewModerationService(users ports.UserGateway, guard *Guard, log zerolog.Logger) *ModerationService {
	return &ModerationService{users: users, guard: guard, log: log}
}

func (s *ModerationService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if !s.guard.IsModerator() {
		return nil, domain.ErrUnauthenticated
	}
	return s.users.List(ctx)
}

func (s *ModerationService) BanUser(ctx context.Context, id int64) (*domain.User, error) {
	if !s.guard.IsModerator() {
		return nil, domain.ErrUnauthenticated
	}
	u, err := s.users.Ban(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", id).Msg("user banned")
	return u, nil
}

func (s *ModerationService) UnbanUser(ctx context.Context, id int64) (*domain.User, error) {
	if !s.guard.IsModerator() {
		return nil, domain.ErrUnauthenticated
	}
	u, err := s.users.Unban(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", id).Msg("user unbanned")
	return u, nil
}

func (s *ModerationService) DeleteUser(ctx context.Context, id int64) error {
	if !s.guard.IsModerator() {
		return domain.ErrUnauthenticated
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

// ProfileService lets any authenticated user read and edit their own
// profile; the confirmed fields are fed back into the session manager.
type ProfileService struct {
	users    ports.UserGateway
	sessions ports.SessionManager
	log      zerolog.Logger
}

func NewProfileService(users ports.UserGateway, sessions ports.SessionManager, log zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, sessions: sessions, log: log}
}

func (s *ProfileService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateOwn sends the profile update for the current user and merges the
// server-confirmed fields into the session.
func (s *ProfileService) UpdateOwn(ctx context.Context, input ports.UpdateUserInput) (*domain.Session, error) {
	sess := s.sessions.Current()
	if sess == nil {
		return nil, domain.ErrNoSession
	}

	updated, err := s.users.Update(ctx, sess.UserID, input)
	if err != nil {
		return nil, err
	}

	patch := domain.ProfileUpdate{
		Username: &updated.Username,
		Email:    &updated.Email,
		Score:    &updated.Score,
		Banned:   &updated.Banned,
	}
	if updated.Role != "" {
		patch.Role = &updated.Role
	}
	if updated.PhoneNumber != "" {
		patch.PhoneNumber = &updated.PhoneNumber
	}
	return s.sessions.UpdateProfile(ctx, patch)
}
