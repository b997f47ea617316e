package ports

import (
	"context"
	"io"

	"github.com/bluelatex/blue-web/internal/domain/paper"
)

// PaperRef identifies a paper created on the backend.
type PaperRef struct {
	ID string `json:"id"`
}

// CompiledPage describes one page of a compiled paper.
type CompiledPage struct {
	Number int     `json:"number"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PaperBackend is the blue-latex paper API.
// Failures carry the backend status as an *errors.AppError.
type PaperBackend interface {
	Create(ctx context.Context, creds Credentials, p paper.NewPaper) (PaperRef, error)
	UserPapers(ctx context.Context, creds Credentials, user string) ([]paper.Paper, error)
	// Delete reports the backend's {"response": bool} acknowledgement.
	Delete(ctx context.Context, creds Credentials, id string) (bool, error)
	PaperInfo(ctx context.Context, creds Credentials, id string) (paper.Info, error)
	UpdatePaperInfo(ctx context.Context, creds Credentials, info paper.Info) error
	CompiledPages(ctx context.Context, creds Credentials, id string) ([]CompiledPage, error)
	// CompiledPDF streams the compiled document. Callers close the reader.
	CompiledPDF(ctx context.Context, creds Credentials, id string) (io.ReadCloser, error)
}

// UserProfile is the public profile of a blue-latex user.
type UserProfile struct {
	Name        string `json:"name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Affiliation string `json:"affiliation,omitempty"`
}

// Registration carries the register form.
type Registration struct {
	UserName    string
	FirstName   string
	LastName    string
	Email       string
	Affiliation string
}

// PasswordReset carries the reset-password form.
type PasswordReset struct {
	UserName    string
	Token       string
	NewPassword string
	Confirm     string
}

// UserBackend is the blue-latex user API.
type UserBackend interface {
	Register(ctx context.Context, reg Registration) error
	RequestReset(ctx context.Context, username string) error
	ResetPassword(ctx context.Context, reset PasswordReset) error
	UserInfo(ctx context.Context, creds Credentials, username string) (UserProfile, error)
}
