package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	apperrors "github.com/bluelatex/blue-web/internal/errors"
	"github.com/bluelatex/blue-web/internal/ports"
)

const (
	defaultProfileTTL   = 10 * time.Minute
	defaultFetchTimeout = 15 * time.Second
	profileCachePrefix  = "user:profile:"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Backend  ports.UserBackend     // Required
	Cache    ports.CacheRepository // Optional: profiles are fetched every time without it
	CacheTTL time.Duration
	// FetchTimeout bounds a shared profile fetch, which outlives any single caller.
	FetchTimeout time.Duration
	Logger       *slog.Logger
}

// UserService wraps the user endpoints and caches profiles.
type UserService struct {
	backend  ports.UserBackend
	cache    ports.CacheRepository
	cacheTTL time.Duration
	timeout  time.Duration
	group    singleflight.Group
	logger   *slog.Logger
	messages Messages
}

// NewUserService constructs a UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Backend == nil {
		panic("UserServiceOptions.Backend is required")
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultProfileTTL
	}
	timeout := opts.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{backend: opts.Backend, cache: opts.Cache, cacheTTL: ttl, timeout: timeout, logger: logger}
}

func profileCacheKey(username string) string { return profileCachePrefix + username }

// Profile returns the logged-in user's profile, from cache when possible.
// Concurrent misses from the same session share one backend call. The shared
// call is detached from the callers, so a caller that goes away only fails itself.
func (s *UserService) Profile(ctx context.Context, sess *domainauth.Session) (ports.UserProfile, error) {
	username := sess.UserName
	if p, ok := s.cached(ctx, username); ok {
		return p, nil
	}

	creds := ports.CredentialsFor(*sess)
	flight := s.group.DoChan(username+"\x00"+sess.ID, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		p, err := s.backend.UserInfo(fctx, creds, username)
		if err != nil {
			return ports.UserProfile{}, err
		}
		s.store(fctx, username, p)
		return p, nil
	})

	var (
		p   ports.UserProfile
		err error
	)
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			err = res.Err
		} else {
			p = res.Val.(ports.UserProfile)
		}
	}
	if err != nil {
		s.messages.Fail(sess, OpProfile, err)
		return ports.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *UserService) cached(ctx context.Context, username string) (ports.UserProfile, bool) {
	if s.cache == nil {
		return ports.UserProfile{}, false
	}
	data, err := s.cache.Get(ctx, profileCacheKey(username))
	if err != nil {
		s.logger.WarnContext(ctx, "profile cache read failed", "user", username, "error", err)
		return ports.UserProfile{}, false
	}
	if data == nil {
		return ports.UserProfile{}, false
	}
	var p ports.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.WarnContext(ctx, "discarding corrupt cached profile", "user", username, "error", err)
		return ports.UserProfile{}, false
	}
	return p, true
}

func (s *UserService) store(ctx context.Context, username string, p ports.UserProfile) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, profileCacheKey(username), data, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "profile cache write failed", "user", username, "error", err)
	}
}

// ClearCache drops the cached profile of username.
func (s *UserService) ClearCache(ctx context.Context, username string) error {
	if s.cache == nil {
		return nil
	}
	if _, err := s.cache.Delete(ctx, profileCacheKey(username)); err != nil {
		return fmt.Errorf("clear profile cache: %w", err)
	}
	return nil
}

// Register creates an account. On success an informational message tells
// the visitor to check their mailbox.
func (s *UserService) Register(ctx context.Context, sess *domainauth.Session, reg ports.Registration) error {
	reg.UserName = strings.TrimSpace(reg.UserName)
	reg.Email = strings.TrimSpace(reg.Email)
	err := validateRegistration(reg)
	if err == nil {
		err = s.backend.Register(ctx, reg)
	}
	if err != nil {
		s.messages.Fail(sess, OpRegister, err)
		return fmt.Errorf("register %s: %w", reg.UserName, err)
	}
	s.messages.Clear(sess)
	s.messages.Info(sess, InfoRegistered)
	s.logger.InfoContext(ctx, "user registered", "user", reg.UserName)
	return nil
}

func validateRegistration(reg ports.Registration) error {
	switch {
	case reg.UserName == "":
		return apperrors.ValidationField("username", "username is required")
	case strings.TrimSpace(reg.FirstName) == "":
		return apperrors.ValidationField("first_name", "first name is required")
	case strings.TrimSpace(reg.LastName) == "":
		return apperrors.ValidationField("last_name", "last name is required")
	case reg.Email == "" || !strings.Contains(reg.Email, "@"):
		return apperrors.ValidationField("email", "a valid email address is required")
	}
	return nil
}

// RequestReset asks the backend to mail a reset token.
func (s *UserService) RequestReset(ctx context.Context, sess *domainauth.Session, username string) error {
	username = strings.TrimSpace(username)
	var err error
	if username == "" {
		err = apperrors.ValidationField("username", "username is required")
	} else {
		err = s.backend.RequestReset(ctx, username)
	}
	if err != nil {
		s.messages.Fail(sess, OpResetRequest, err)
		return fmt.Errorf("request reset: %w", err)
	}
	s.messages.Clear(sess)
	s.messages.Info(sess, InfoResetRequested)
	return nil
}

// ResetPassword sets a new password with a mailed token.
func (s *UserService) ResetPassword(ctx context.Context, sess *domainauth.Session, reset ports.PasswordReset) error {
	var err error
	switch {
	case reset.UserName == "" || reset.Token == "":
		err = apperrors.ValidationField("token", "reset token is required")
	case reset.NewPassword == "":
		err = apperrors.ValidationField("new_password1", "new password is required")
	case reset.NewPassword != reset.Confirm:
		err = apperrors.ValidationField("new_password2", "passwords do not match")
	default:
		err = s.backend.ResetPassword(ctx, reset)
	}
	if err != nil {
		s.messages.Fail(sess, OpResetPassword, err)
		return fmt.Errorf("reset password: %w", err)
	}
	s.messages.Clear(sess)
	s.messages.Info(sess, InfoPasswordChanged)
	s.logger.InfoContext(ctx, "password reset", "user", reset.UserName)
	return nil
}
