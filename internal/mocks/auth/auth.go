package auth

// Package auth contains simple hand-written test doubles for session ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"fmt"
	"sync"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	"github.com/bluelatex/blue-web/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionBackend = (*StubSessionBackend)(nil)
	_ ports.SessionStore   = (*MemorySessionStore)(nil)
)

// StubSessionBackend simulates the backend session endpoint.
// Without LoginFunc it accepts any user whose password equals Password.
type StubSessionBackend struct {
	LoginFunc  func(ctx context.Context, username, password string) (ports.Credentials, error)
	LogoutFunc func(ctx context.Context, creds ports.Credentials) error

	Password string

	mu      sync.Mutex
	logins  int
	logouts int
}

// NewStubSessionBackend creates a backend accepting the given password.
func NewStubSessionBackend(password string) *StubSessionBackend {
	return &StubSessionBackend{Password: password}
}

func (s *StubSessionBackend) Login(ctx context.Context, username, password string) (ports.Credentials, error) {
	if s.LoginFunc != nil {
		return s.LoginFunc(ctx, username, password)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if password != s.Password {
		return ports.Credentials{}, ErrRejected
	}
	s.logins++
	return ports.Credentials{
		UserName: username,
		Cookies:  []domainauth.BackendCookie{{Name: "SESSIONID", Value: fmt.Sprintf("%s-%d", username, s.logins)}},
	}, nil
}

func (s *StubSessionBackend) Logout(ctx context.Context, creds ports.Credentials) error {
	if s.LogoutFunc != nil {
		return s.LogoutFunc(ctx, creds)
	}
	s.mu.Lock()
	s.logouts++
	s.mu.Unlock()
	return nil
}

// Logouts reports how many default logouts were recorded.
func (s *StubSessionBackend) Logouts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logouts
}

// ErrRejected is returned by the default Login for a wrong password.
var ErrRejected = errors.New("credentials rejected")

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok || id == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
