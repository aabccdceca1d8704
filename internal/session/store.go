package session

import (
	"context"
	"sync"

	"github.com/sabhahq/sabha/internal/api"
	"github.com/sabhahq/sabha/internal/errors"
	"github.com/sabhahq/sabha/internal/log"
	"github.com/sabhahq/sabha/internal/role"
)

// Verifier confirms a session token with the server and returns the
// canonical user. Satisfied by *api.Client.
type Verifier interface {
	VerifySession(ctx context.Context) (*api.User, error)
}

// Store is the single authority on "who is logged in".
//
// All mutations go through Restore, Login, Logout, Verify, or Clear and
// are serialized by the mutex; everything else reads a Snapshot. The
// invariant is that a user is only ever present together with a token,
// and both are cleared together — in memory and on disk.
type Store struct {
	mu sync.Mutex

	path     string
	verifier Verifier
	logger   *log.Logger

	token   string
	user    *api.User
	loading bool
}

// Snapshot is a read-only view of the session at one instant
type Snapshot struct {
	Token   string
	User    *api.User
	Loading bool
}

// Authenticated reports whether a user identity is present
func (s Snapshot) Authenticated() bool {
	return s.User != nil
}

// Role returns the normalized role of the current user, or the empty
// role when unauthenticated
func (s Snapshot) Role() role.Role {
	if s.User == nil {
		return ""
	}
	return role.Normalize(s.User.Role)
}

// New creates a session store persisting to the given file path
func New(path string, verifier Verifier, logger *log.Logger) *Store {
	return &Store{
		path:     path,
		verifier: verifier,
		logger:   logger,
	}
}

// SetVerifier wires the verifier after construction. The store and the
// API client reference each other (the client reads the token, the
// store verifies through the client), so one side has to be set late.
func (s *Store) SetVerifier(v Verifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifier = v
}

// Token returns the current bearer token; implements api.TokenSource
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Snapshot returns a copy of the current session state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Token:   s.token,
		Loading: s.loading,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Restore loads the persisted session, applying an optimistic restore
// when a user blob exists so the console can render immediately. The
// snapshot is marked loading until Verify resolves; with no persisted
// token it resolves immediately as unauthenticated.
//
// Verification itself is the caller's job (a goroutine or tea.Cmd for
// the console, a synchronous call for one-shot commands) so the store
// never owns a background task.
func (s *Store) Restore() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	persisted, err := readSessionFile(s.path)
	if err != nil || persisted.Token == "" {
		if err != nil {
			s.logger.Debug("no persisted session restored", "reason", err.Error())
		}
		s.token = ""
		s.user = nil
		s.loading = false
		return s.snapshotLocked()
	}

	s.token = persisted.Token
	s.user = nil
	if persisted.User != nil {
		u := *persisted.User
		u.Role = role.Normalize(u.Role).String()
		s.user = &u
	}
	s.loading = true

	return s.snapshotLocked()
}

// Login replaces the session with freshly obtained credentials. The
// caller already authenticated against the backend; no round-trip
// happens here.
func (s *Store) Login(token string, user api.User) error {
	if token == "" {
		return errors.New(errors.ErrCodeSessionInvalid, "login requires a token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user.Role = role.Normalize(user.Role).String()

	// Persist first: if the write fails the store must not claim a
	// session that disk does not have.
	if err := writeSessionFile(s.path, persistedSession{Token: token, User: &user}); err != nil {
		return err
	}

	s.token = token
	s.user = &user
	s.loading = false

	s.logger.Info("logged in", "user", user.Name, "role", user.Role)
	return nil
}

// Logout clears all session state. Safe to call when already logged out.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

// Clear drops all session state; used by the gateway's unauthorized
// hook when the server rejects the token.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

func (s *Store) clearLocked() error {
	s.token = ""
	s.user = nil
	s.loading = false
	return removeSessionFile(s.path)
}

// Verify confirms the restored token with the server. On success the
// server's user replaces any optimistic guess and is re-persisted. Any
// failure — an invalid token or a network error alike — clears the
// session; this is the one place client-side token invalidation lives.
func (s *Store) Verify(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	if token == "" {
		s.loading = false
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	user, err := s.verifier.VerifySession(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	// The round-trip ran unlocked, so the session may have been cleared
	// or replaced while it was in flight (the gateway's 401 hook, a
	// logout, a fresh login). The result belongs to the token that was
	// sent; if that token is gone, applying the result would resurrect
	// a user without its token. Drop it.
	if s.token != token {
		s.loading = false
		return nil
	}

	if err != nil {
		s.logger.Warn("session verification failed, clearing session", "reason", err.Error())
		if clearErr := s.clearLocked(); clearErr != nil {
			s.logger.WithError(clearErr).Warn("failed to remove session file")
		}
		return errors.Wrap(errors.ErrCodeSessionExpired, "session verification failed", err)
	}

	u := *user
	u.Role = role.Normalize(u.Role).String()
	s.user = &u
	s.loading = false

	if err := writeSessionFile(s.path, persistedSession{Token: s.token, User: &u}); err != nil {
		s.logger.WithError(err).Warn("failed to re-persist verified session")
	}

	s.logger.Debug("session verified", "user", u.Name, "role", u.Role)
	return nil
}
