package ports

import (
	"context"

	"github.com/forumapp/forumcli/internal/core/domain"
)

// SessionStore persists the one encoded session blob under a single key.
// Load returns an empty string, not an error, when no blob is stored.
type SessionStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, blob string) error
	Clear(ctx context.Context) error
}

// SessionCodec converts a session to and from its persisted blob form. The
// encoding is reversible and carries no signature; it is not a security
// boundary.
type SessionCodec interface {
	Encode(s *domain.Session) (string, error)
	Decode(blob string) (*domain.Session, error)
}

// Notifier surfaces session-level events to whatever front end is attached.
type Notifier interface {
	// Notice shows a user-visible message (e.g. the ban notice).
	Notice(msg string)
	// NavigateToLogin drops the front end back to its unauthenticated view.
	NavigateToLogin()
}

// SessionReader is the narrow read surface consumed by the route guard and
// any component that only needs to know who is logged in right now.
type SessionReader interface {
	Current() *domain.Session
}

// SessionManager owns the authenticated identity across restarts.
type SessionManager interface {
	SessionReader
	Restore(ctx context.Context) *domain.Session
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.Session, error)
	Close()
}
