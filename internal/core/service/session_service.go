package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
	"github.com/forumapp/forumcli/internal/metrics"
)

// DefaultBanPollInterval is how often the background poller re-checks the
// ban flag when no interval is configured.
const DefaultBanPollInterval = 15 * time.Second

const banNotice = "Your account has been banned. You will be logged out."

// SessionService owns the single authenticated identity of this client. It
// restores the session from the store on startup, replaces it on login, and
// runs exactly one ban-poll loop for as long as a session exists.
type SessionService struct {
	store    ports.SessionStore
	codec    ports.SessionCodec
	auth     ports.AuthGateway
	users    ports.UserGateway
	notifier ports.Notifier
	interval time.Duration
	log      zerolog.Logger

	mu      sync.Mutex
	current *domain.Session
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewSessionService(
	store ports.SessionStore,
	codec ports.SessionCodec,
	auth ports.AuthGateway,
	users ports.UserGateway,
	notifier ports.Notifier,
	interval time.Duration,
	log zerolog.Logger,
) *SessionService {
	if interval <= 0 {
		interval = DefaultBanPollInterval
	}
	return &SessionService{
		store:    store,
		codec:    codec,
		auth:     auth,
		users:    users,
		notifier: notifier,
		interval: interval,
		log:      log,
	}
}

// Current returns a copy of the active session, or nil when logged out.
func (s *SessionService) Current() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// Restore decodes the persisted blob into a session. A missing blob yields
// nil; an unreadable blob is purged from the store and also yields nil.
// Restore never fails with an error.
func (s *SessionService) Restore(ctx context.Context) *domain.Session {
	blob, err := s.store.Load(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("session store unreadable")
		metrics.SessionRestoresTotal.WithLabelValues("none").Inc()
		return nil
	}
	if blob == "" {
		metrics.SessionRestoresTotal.WithLabelValues("none").Inc()
		return nil
	}

	sess, err := s.codec.Decode(blob)
	if err != nil {
		s.log.Warn().Err(err).Msg("stored session blob is malformed, purging")
		_ = s.store.Clear(ctx)
		metrics.SessionRestoresTotal.WithLabelValues("purged").Inc()
		return nil
	}

	s.mu.Lock()
	s.stopPollingLocked()
	s.current = sess
	s.startPollingLocked()
	s.mu.Unlock()

	s.log.Info().Int64("user_id", sess.UserID).Str("username", sess.Username).Msg("session restored")
	metrics.SessionRestoresTotal.WithLabelValues("ok").Inc()

	c := *sess
	return &c
}

// Login exchanges credentials for a session. A user record carrying the ban
// flag never becomes a session. On success the encoded blob is persisted and
// any prior session (and its poll loop) is replaced.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.auth.Login(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return nil, err
	}
	if user.Banned {
		s.log.Warn().Int64("user_id", user.ID).Msg("login refused for banned account")
		metrics.LoginsTotal.WithLabelValues("banned").Inc()
		return nil, domain.ErrAccountBanned
	}

	sess := domain.SessionFromUser(user)
	blob, err := s.codec.Encode(sess)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.Save(ctx, blob); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.stopPollingLocked()
	s.current = sess
	s.startPollingLocked()
	s.mu.Unlock()

	s.log.Info().Int64("user_id", sess.UserID).Str("username", sess.Username).Msg("logged in")
	metrics.LoginsTotal.WithLabelValues("ok").Inc()

	c := *sess
	return &c, nil
}

// Register creates an account. It does not establish a session; callers log
// in afterwards.
func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := s.auth.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("account registered")
	return user, nil
}

// Logout clears the persisted and in-memory session unconditionally and
// sends the front end back to its login view. Logout is best-effort and
// never fails; store errors are ignored.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.stopPollingLocked()
	had := s.current != nil
	s.current = nil
	s.mu.Unlock()

	_ = s.store.Clear(ctx)
	if had {
		s.log.Info().Msg("logged out")
	}
	if s.notifier != nil {
		s.notifier.NavigateToLogin()
	}
}

// UpdateProfile merges server-confirmed fields into the current session and
// re-persists the blob. Fields absent from the update keep their previous
// values. Calling without a session returns ErrNoSession.
func (s *SessionService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.Session, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil, domain.ErrNoSession
	}
	merged := s.current.Merge(update)
	s.mu.Unlock()

	blob, err := s.codec.Encode(&merged)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.Save(ctx, blob); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	// The session may have been cleared while we were persisting; do not
	// resurrect it.
	if s.current == nil {
		s.mu.Unlock()
		return nil, domain.ErrNoSession
	}
	s.current = &merged
	s.mu.Unlock()

	s.log.Info().Int64("user_id", merged.UserID).Msg("profile updated")
	c := merged
	return &c, nil
}

// Close tears the manager down, cancelling the poll loop and waiting for it
// to exit. The persisted blob is left in place so the session survives into
// the next process.
func (s *SessionService) Close() {
	s.mu.Lock()
	done := s.done
	s.stopPollingLocked()
	s.current = nil
	s.mu.Unlock()

	if done != nil {
		<-done
	}
}

// startPollingLocked launches the ban-poll goroutine for the current
// session. Callers hold s.mu and must have stopped any previous loop first;
// at most one loop runs per session.
func (s *SessionService) startPollingLocked() {
	if s.current == nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.pollLoop(ctx, s.current.UserID, s.done)
}

// stopPollingLocked cancels the running poll loop, if any. It does not wait:
// the loop may be the caller (ban-triggered logout runs on the loop's own
// goroutine).
func (s *SessionService) stopPollingLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		s.done = nil
	}
}

// pollLoop re-fetches the user's ban status every interval until cancelled.
// Backend errors are treated as transient and swallowed: only an explicit
// ban flag in a successful response tears the session down. A persistently
// unreachable ban-check endpoint therefore never detects a ban.
func (s *SessionService) pollLoop(ctx context.Context, userID int64, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		fresh, err := s.users.GetByID(ctx, userID)
		if err != nil {
			metrics.BanPollsTotal.WithLabelValues("error").Inc()
			s.log.Debug().Err(err).Int64("user_id", userID).Msg("ban poll failed")
			continue
		}
		// The session may have been replaced while the fetch was in flight;
		// never act on a stale identity.
		if ctx.Err() != nil {
			return
		}
		if fresh.Banned {
			metrics.BanPollsTotal.WithLabelValues("banned").Inc()
			s.log.Warn().Int64("user_id", userID).Msg("ban detected, terminating session")
			if s.notifier != nil {
				s.notifier.Notice(banNotice)
			}
			s.Logout(context.Background())
			return
		}
		metrics.BanPollsTotal.WithLabelValues("clear").Inc()
	}
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrAccountBanned):
		return "banned"
	default:
		return "error"
	}
}
