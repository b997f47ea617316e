package bluelatex

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bluelatex/blue-web/internal/ports"
)

// Register creates an account. The backend mails the initial password.
func (c *Client) Register(ctx context.Context, reg ports.Registration) error {
	form := url.Values{
		"username":      {reg.UserName},
		"first_name":    {reg.FirstName},
		"last_name":     {reg.LastName},
		"email_address": {reg.Email},
	}
	if reg.Affiliation != "" {
		form.Set("affiliation", reg.Affiliation)
	}
	return c.do(ctx, request{op: "users.register", method: http.MethodPost, path: "/users", form: form}, nil)
}

// RequestReset asks the backend to mail a password reset token.
func (c *Client) RequestReset(ctx context.Context, username string) error {
	return c.do(ctx, request{
		op:     "users.reset_request",
		method: http.MethodGet,
		path:   "/users/" + url.PathEscape(username) + "/reset",
	}, nil)
}

// ResetPassword sets a new password using a mailed token.
func (c *Client) ResetPassword(ctx context.Context, reset ports.PasswordReset) error {
	return c.do(ctx, request{
		op:     "users.reset_password",
		method: http.MethodPost,
		path:   "/users/" + url.PathEscape(reset.UserName) + "/reset",
		form: url.Values{
			"reset_token":   {reset.Token},
			"new_password1": {reset.NewPassword},
			"new_password2": {reset.Confirm},
		},
	}, nil)
}

// UserInfo returns the public profile of a user.
func (c *Client) UserInfo(ctx context.Context, creds ports.Credentials, username string) (ports.UserProfile, error) {
	var p ports.UserProfile
	err := c.do(ctx, request{
		op:     "users.info",
		method: http.MethodGet,
		path:   "/users/" + url.PathEscape(username) + "/info",
		creds:  creds,
	}, &p)
	if err != nil {
		return ports.UserProfile{}, err
	}
	if p.Name == "" {
		p.Name = username
	}
	return p, nil
}
