package bluelatex

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"golang.org/x/net/publicsuffix"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	apperrors "github.com/bluelatex/blue-web/internal/errors"
	"github.com/bluelatex/blue-web/internal/ports"
)

// Login opens a backend session and returns the cookies the backend set.
// Each login uses a fresh jar so cookies never leak between users.
func (c *Client) Login(ctx context.Context, username, password string) (ports.Credentials, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return ports.Credentials{}, fmt.Errorf("create cookie jar: %w", err)
	}
	hc := &http.Client{Transport: c.http.Transport, Timeout: c.http.Timeout, Jar: jar}

	resp, err := c.send(ctx, hc, request{
		op:     "session.login",
		method: http.MethodPost,
		path:   "/session",
		form:   url.Values{"username": {username}, "password": {password}},
	})
	if err != nil {
		return ports.Credentials{}, err
	}
	resp.Body.Close()

	sessionURL, err := url.Parse(c.endpoint("/session", nil))
	if err != nil {
		return ports.Credentials{}, fmt.Errorf("parse session url: %w", err)
	}
	var cookies []domainauth.BackendCookie
	for _, ck := range jar.Cookies(sessionURL) {
		cookies = append(cookies, domainauth.BackendCookie{Name: ck.Name, Value: ck.Value})
	}
	if len(cookies) == 0 {
		return ports.Credentials{}, apperrors.Server("backend issued no session cookie")
	}
	return ports.Credentials{UserName: username, Cookies: cookies}, nil
}

// Logout closes the backend session.
func (c *Client) Logout(ctx context.Context, creds ports.Credentials) error {
	return c.do(ctx, request{
		op:     "session.logout",
		method: http.MethodDelete,
		path:   "/session",
		creds:  creds,
	}, nil)
}
