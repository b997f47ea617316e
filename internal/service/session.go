package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	apperrors "github.com/bluelatex/blue-web/internal/errors"
	"github.com/bluelatex/blue-web/internal/ports"
)

const defaultSessionTTL = 24 * time.Hour

// profileCache is the part of UserService the session flow needs.
type profileCache interface {
	ClearCache(ctx context.Context, username string) error
}

// SessionServiceConfig holds the session lifetime settings.
type SessionServiceConfig struct {
	TTL time.Duration
	Now func() time.Time
}

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Store   ports.SessionStore   // Required
	Backend ports.SessionBackend // Required
	Users   profileCache         // Optional: profile cache cleared on logout
	Config  SessionServiceConfig
	Logger  *slog.Logger
}

// SessionService owns the browser session record: creation, login, logout
// and the 401-triggered user clear.
type SessionService struct {
	store    ports.SessionStore
	backend  ports.SessionBackend
	users    profileCache
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
	messages Messages
}

// NewSessionService constructs a SessionService.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	if opts.Store == nil {
		panic("SessionServiceOptions.Store is required")
	}
	if opts.Backend == nil {
		panic("SessionServiceOptions.Backend is required")
	}
	ttl := opts.Config.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	now := opts.Config.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		store:   opts.Store,
		backend: opts.Backend,
		users:   opts.Users,
		ttl:     ttl,
		now:     now,
		logger:  logger,
	}
}

// TTL returns the session lifetime.
func (s *SessionService) TTL() time.Duration { return s.ttl }

// Resume loads the session with the given id, or starts an anonymous one
// when the id is empty, unknown or expired. created reports the latter.
func (s *SessionService) Resume(ctx context.Context, id string) (sess *domainauth.Session, created bool, err error) {
	if id != "" {
		got, getErr := s.store.Get(ctx, id)
		switch {
		case getErr == nil && !got.Expired(s.now()):
			return &got, false, nil
		case getErr == nil:
			if delErr := s.store.Delete(ctx, id); delErr != nil {
				s.logger.WarnContext(ctx, "failed to delete expired session", "error", delErr)
			}
		case !errors.Is(getErr, ports.ErrSessionNotFound):
			return nil, false, fmt.Errorf("get session: %w", getErr)
		}
	}

	fresh := domainauth.Session{ID: generateSessionID(), ExpiresAt: s.now().Add(s.ttl)}
	if err := s.store.Save(ctx, fresh); err != nil {
		return nil, false, fmt.Errorf("save session: %w", err)
	}
	return &fresh, true, nil
}

// Save extends the session lifetime and persists it.
func (s *SessionService) Save(ctx context.Context, sess *domainauth.Session) error {
	sess.ExpiresAt = s.now().Add(s.ttl)
	if err := s.store.Save(ctx, *sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Login authenticates against the backend and attaches the user to sess.
// Failures are recorded as a message on sess, which is saved either way.
func (s *SessionService) Login(ctx context.Context, sess *domainauth.Session, username, password string) error {
	username = strings.TrimSpace(username)
	err := s.login(ctx, sess, username, password)
	if err != nil {
		s.messages.Fail(sess, OpLogin, err)
		s.logger.InfoContext(ctx, "login failed", "user", username, "status", apperrors.StatusOf(err))
	} else {
		s.logger.InfoContext(ctx, "user logged in", "user", username)
	}
	if saveErr := s.Save(ctx, sess); saveErr != nil {
		return errors.Join(err, saveErr)
	}
	return err
}

func (s *SessionService) login(ctx context.Context, sess *domainauth.Session, username, password string) error {
	if username == "" {
		return apperrors.ValidationField("username", "username is required")
	}
	if password == "" {
		return apperrors.ValidationField("password", "password is required")
	}
	creds, err := s.backend.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("backend login: %w", err)
	}
	s.messages.Clear(sess)
	sess.UserName = creds.UserName
	sess.BackendCookies = creds.Cookies
	return nil
}

// Logout closes the backend session, clears the user and drops the cached
// profile. On backend failure the user stays logged in and a message is
// recorded.
func (s *SessionService) Logout(ctx context.Context, sess *domainauth.Session) error {
	s.messages.Clear(sess)

	user := sess.UserName
	if err := s.backend.Logout(ctx, ports.CredentialsFor(*sess)); err != nil {
		s.messages.Fail(sess, OpLogout, err)
		if saveErr := s.Save(ctx, sess); saveErr != nil {
			return errors.Join(err, saveErr)
		}
		return fmt.Errorf("backend logout: %w", err)
	}

	sess.ClearUser()
	if s.users != nil && user != "" {
		if err := s.users.ClearCache(ctx, user); err != nil {
			s.logger.WarnContext(ctx, "failed to clear profile cache", "user", user, "error", err)
		}
	}
	s.logger.InfoContext(ctx, "user logged out", "user", user)
	return s.Save(ctx, sess)
}

// ClearUser forgets the user after the backend rejected its credentials.
func (s *SessionService) ClearUser(ctx context.Context, sess *domainauth.Session) error {
	sess.ClearUser()
	return s.Save(ctx, sess)
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	return uuid.New().String()
}
