// Package testutil provides testing utilities and helpers for blue-web.
package testutil

import (
	"fmt"
	"time"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	"github.com/bluelatex/blue-web/internal/domain/paper"
)

// PaperBuilder provides a fluent interface for building papers in tests.
type PaperBuilder struct {
	p paper.Paper
}

// NewPaper creates a PaperBuilder for an authored paper dated TestTime.
func NewPaper(id string) *PaperBuilder {
	return &PaperBuilder{p: paper.Paper{
		ID:    id,
		Title: fmt.Sprintf("Paper %s", id),
		Role:  paper.RoleAuthor,
		Date:  TestTime(),
	}}
}

// WithTitle sets the title.
func (b *PaperBuilder) WithTitle(title string) *PaperBuilder {
	b.p.Title = title
	return b
}

// WithRole sets the role.
func (b *PaperBuilder) WithRole(role paper.Role) *PaperBuilder {
	b.p.Role = role
	return b
}

// WithDate sets the date.
func (b *PaperBuilder) WithDate(date time.Time) *PaperBuilder {
	b.p.Date = date
	return b
}

// Undated clears the date, as older backends send.
func (b *PaperBuilder) Undated() *PaperBuilder {
	b.p.Date = time.Time{}
	return b
}

// Build returns the paper.
func (b *PaperBuilder) Build() paper.Paper {
	return b.p
}

// AnonymousSession returns a session with no user.
func AnonymousSession(id string) domainauth.Session {
	return domainauth.Session{ID: id, ExpiresAt: TestTime().Add(24 * time.Hour)}
}

// UserSession returns a session logged in as user with one backend cookie.
func UserSession(id, user string) domainauth.Session {
	s := AnonymousSession(id)
	s.UserName = user
	s.BackendCookies = []domainauth.BackendCookie{{Name: "SESSIONID", Value: "cookie-" + user}}
	return s
}
