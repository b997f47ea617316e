package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluelatex/blue-web/internal/domain/gate"
	"github.com/bluelatex/blue-web/internal/domain/route"
	authmocks "github.com/bluelatex/blue-web/internal/mocks/auth"
	"github.com/bluelatex/blue-web/internal/testutil"
)

func newTestNavigator(t *testing.T) (*Navigator, *authmocks.MemorySessionStore) {
	t.Helper()
	store := authmocks.NewMemorySessionStore()
	return NewNavigator(NavigatorOptions{Sessions: store}), store
}

func TestNavigator_AnonymousProtectedRouteRemembersPath(t *testing.T) {
	nav, store := newTestNavigator(t)
	ctx := context.Background()
	sess := testutil.AnonymousSession("s1")

	got, err := nav.Evaluate(ctx, &sess, "/paper/42")
	require.NoError(t, err)

	assert.False(t, got.Allowed())
	assert.Equal(t, route.LoginPath, got.RedirectTo)
	assert.Equal(t, route.NamePaper, got.Route.Name)
	assert.Equal(t, "/paper/42", sess.ReturnTo)

	stored, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "/paper/42", stored.ReturnTo)
}

func TestNavigator_AnonymousPublicRoute(t *testing.T) {
	nav, store := newTestNavigator(t)
	sess := testutil.AnonymousSession("s1")

	got, err := nav.Evaluate(context.Background(), &sess, "/register")
	require.NoError(t, err)

	assert.True(t, got.Allowed())
	assert.Equal(t, gate.Allow, got.Decision.Action)
	assert.Zero(t, store.Len(), "nothing to persist")
}

func TestNavigator_ParamsAreExtracted(t *testing.T) {
	nav, _ := newTestNavigator(t)
	sess := testutil.AnonymousSession("s1")

	got, err := nav.Evaluate(context.Background(), &sess, "/alice/reset/tok123")
	require.NoError(t, err)

	assert.True(t, got.Allowed())
	assert.Equal(t, route.NameResetPassword, got.Route.Name)
	assert.Equal(t, map[string]string{"username": "alice", "token": "tok123"}, got.Params)
}

func TestNavigator_TableRedirectsBypassGate(t *testing.T) {
	nav, store := newTestNavigator(t)
	sess := testutil.AnonymousSession("s1")

	home, err := nav.Evaluate(context.Background(), &sess, "/")
	require.NoError(t, err)
	assert.Equal(t, route.PapersPath, home.RedirectTo)

	unknown, err := nav.Evaluate(context.Background(), &sess, "/no/such/page")
	require.NoError(t, err)
	assert.Equal(t, route.NotFoundPath, unknown.RedirectTo)

	assert.Empty(t, sess.ReturnTo)
	assert.Zero(t, store.Len())
}

func TestNavigator_LoginRoundTrip(t *testing.T) {
	nav, store := newTestNavigator(t)
	ctx := context.Background()
	sess := testutil.AnonymousSession("s1")

	_, err := nav.Evaluate(ctx, &sess, "/papers")
	require.NoError(t, err)
	require.Equal(t, "/papers", sess.ReturnTo)

	sess.UserName = "alice"
	got, err := nav.OnSessionChange(ctx, &sess, route.LoginPath)
	require.NoError(t, err)

	assert.Equal(t, "/papers", got.RedirectTo)
	assert.Empty(t, sess.ReturnTo, "pending destination is consumed")

	stored, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, stored.ReturnTo)
}

func TestNavigator_LoggedInUserOnLoginGoesHome(t *testing.T) {
	nav, _ := newTestNavigator(t)
	sess := testutil.UserSession("s1", "alice")

	got, err := nav.Evaluate(context.Background(), &sess, route.LoginPath)
	require.NoError(t, err)
	assert.Equal(t, route.HomePath, got.RedirectTo)
}

func TestNavigator_OnSessionChangeAfterLogout(t *testing.T) {
	nav, _ := newTestNavigator(t)
	sess := testutil.AnonymousSession("s1")

	got, err := nav.OnSessionChange(context.Background(), &sess, route.LoginPath)
	require.NoError(t, err)
	assert.True(t, got.Decision.Allowed())
	assert.Equal(t, route.LoginPath, got.RedirectTo)
	assert.Empty(t, sess.ReturnTo)
}

func TestNavigator_OnSessionChangeAfterUnauthorized(t *testing.T) {
	nav, _ := newTestNavigator(t)
	sess := testutil.UserSession("s1", "alice")
	sess.ClearUser()

	got, err := nav.OnSessionChange(context.Background(), &sess, route.PapersPath)
	require.NoError(t, err)
	assert.Equal(t, route.LoginPath, got.RedirectTo)
	assert.Equal(t, route.PapersPath, sess.ReturnTo)
}
