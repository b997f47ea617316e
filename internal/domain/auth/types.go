package auth

// Package auth contains domain-level types for browser sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// MessageLevel classifies a flash message shown on the next rendered view.
type MessageLevel string

const (
	MessageError MessageLevel = "error"
	MessageInfo  MessageLevel = "info"
)

// Message is a localized flash message keyed by a catalog key.
// Detail carries the backend error text for the error case, if any.
type Message struct {
	Level  MessageLevel `json:"level"`
	Key    string       `json:"key"`
	Detail string       `json:"detail,omitempty"`
}

// BackendCookie is a cookie issued by the blue-latex backend on login.
// The browser never sees it; it is replayed on backend calls made for the session.
type BackendCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Session is the server-side record kept for every browser, logged in or not.
// ID is an opaque session identifier carried in the session cookie.
// An empty UserName means "not logged in".
type Session struct {
	ID             string          `json:"id"`
	UserName       string          `json:"user_name,omitempty"`
	ReturnTo       string          `json:"return_to,omitempty"`
	BackendCookies []BackendCookie `json:"backend_cookies,omitempty"`
	Messages       []Message       `json:"messages,omitempty"`
	ExpiresAt      time.Time       `json:"expires_at"`
}

// Authenticated reports whether a user is logged in on this session.
func (s Session) Authenticated() bool { return s.UserName != "" }

// ClearUser drops the authenticated identity and its backend credentials.
// The pending return destination and messages are kept.
func (s *Session) ClearUser() {
	s.UserName = ""
	s.BackendCookies = nil
}

// Expired reports whether the session has passed its expiry at the given instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
