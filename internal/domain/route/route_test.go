package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Resolve(t *testing.T) {
	table := Default()

	tests := []struct {
		name       string
		path       string
		wantRoute  string
		wantParams map[string]string
		wantRedir  string
	}{
		{name: "root redirects to papers", path: "/", wantRedir: "/papers"},
		{name: "empty path is root", path: "", wantRedir: "/papers"},
		{name: "unknown path falls back", path: "/nope/nope", wantRedir: "/404"},
		{name: "login", path: "/login", wantRoute: NameLogin},
		{name: "papers", path: "/papers", wantRoute: NamePapers},
		{name: "new paper wins over paper id", path: "/paper/new", wantRoute: NameNewPaper},
		{name: "paper", path: "/paper/p1", wantRoute: NamePaper, wantParams: map[string]string{"id": "p1"}},
		{name: "edit paper", path: "/paper/p1/edit", wantRoute: NameEditPaper, wantParams: map[string]string{"id": "p1"}},
		{
			name:       "reset password",
			path:       "/alice/reset/tok",
			wantRoute:  NameResetPassword,
			wantParams: map[string]string{"username": "alice", "token": "tok"},
		},
		{name: "trailing slash", path: "/papers/", wantRoute: NamePapers},
		{name: "404 view", path: "/404", wantRoute: NameNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := table.Resolve(tt.path)
			if tt.wantRedir != "" {
				assert.Equal(t, tt.wantRedir, res.RedirectTo)
				assert.Empty(t, res.Route.Name)
				return
			}
			assert.Empty(t, res.RedirectTo)
			assert.Equal(t, tt.wantRoute, res.Route.Name)
			assert.Equal(t, tt.wantParams, res.Params)
		})
	}
}

func TestDefault_AccessOptions(t *testing.T) {
	table := Default()

	for _, name := range []string{NameLogin, NameRegister, NameReset, NameResetPassword} {
		d, ok := table.Lookup(name)
		require.True(t, ok, name)
		assert.False(t, d.RequiresAuth, name)
		assert.False(t, d.AllowedWhenAuth, name)
	}
	for _, name := range []string{NameLogout, NameProfile, NamePapers, NameNewPaper, NameEditPaper, NamePaper} {
		d, ok := table.Lookup(name)
		require.True(t, ok, name)
		assert.True(t, d.RequiresAuth, name)
		assert.True(t, d.AllowedWhenAuth, name)
	}
	nf, ok := table.Lookup(NameNotFound)
	require.True(t, ok)
	assert.False(t, nf.RequiresAuth)
	assert.True(t, nf.AllowedWhenAuth)
}

func TestTable_RoutesIsCopy(t *testing.T) {
	table := Default()
	routes := table.Routes()
	routes[0].Name = "mutated"
	d, ok := table.Lookup(NameLogin)
	require.True(t, ok)
	assert.Equal(t, LoginPath, d.Pattern)
}
