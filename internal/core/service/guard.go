package service

import (
	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
)

// Guard gates access to protected and moderator-only views. It owns no state
// of its own: every check is a fresh, synchronous read of the session
// manager, so a logout is visible to the very next call.
type Guard struct {
	sessions ports.SessionReader
}

func NewGuard(sessions ports.SessionReader) *Guard {
	return &Guard{sessions: sessions}
}

// IsAuthenticated reports whether a session currently exists.
func (g *Guard) IsAuthenticated() bool {
	return g.sessions.Current() != nil
}

// IsModerator reports whether a session exists and holds the moderator role.
func (g *Guard) IsModerator() bool {
	s := g.sessions.Current()
	return s != nil && s.Role == domain.RoleModerator
}
