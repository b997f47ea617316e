package httpx

import (
	"context"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	"github.com/bluelatex/blue-web/internal/service"
)

type (
	sessionKey    struct{}
	profileKey    struct{}
	navigationKey struct{}
)

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext returns the session from context and a boolean indicating presence.
func GetSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// SetProfileInContext stores the browser profile id.
func SetProfileInContext(ctx context.Context, profileID string) context.Context {
	return context.WithValue(ctx, profileKey{}, profileID)
}

// GetProfileFromContext returns the browser profile id, or "".
func GetProfileFromContext(ctx context.Context) string {
	id, _ := ctx.Value(profileKey{}).(string)
	return id
}

func setNavigationInContext(ctx context.Context, nav service.Navigation) context.Context {
	return context.WithValue(ctx, navigationKey{}, nav)
}

// GetNavigationFromContext returns the gate outcome for the current view.
func GetNavigationFromContext(ctx context.Context) (service.Navigation, bool) {
	nav, ok := ctx.Value(navigationKey{}).(service.Navigation)
	return nav, ok
}
