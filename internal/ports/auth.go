package ports

// Package ports defines interfaces (hexagonal ports) consumed by the service layer.
// Implementations live in internal/adapters and internal/data; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
)

// ErrSessionNotFound is returned by SessionStore.Get for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists and retrieves browser sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// Credentials authenticate backend calls made on behalf of a session.
type Credentials struct {
	UserName string
	Cookies  []domainauth.BackendCookie
}

// CredentialsFor extracts backend credentials from a session.
func CredentialsFor(sess domainauth.Session) Credentials {
	return Credentials{UserName: sess.UserName, Cookies: sess.BackendCookies}
}

// SessionBackend opens and closes sessions on the blue-latex backend.
type SessionBackend interface {
	Login(ctx context.Context, username, password string) (Credentials, error)
	Logout(ctx context.Context, creds Credentials) error
}
