// Package route declares the navigable views of the web client and their
// access-control options. The table is static and immutable at runtime.
package route

import "strings"

// Route names referenced outside the table.
const (
	NameLogin         = "login"
	NameLogout        = "logout"
	NameRegister      = "register"
	NameReset         = "reset"
	NameResetPassword = "resetPassword"
	NameProfile       = "profile"
	NamePapers        = "papers"
	NameNewPaper      = "new_paper"
	NameEditPaper     = "edit_paper"
	NamePaper         = "paper"
	NameNotFound      = "404"
)

// Well-known paths.
const (
	LoginPath    = "/login"
	HomePath     = "/"
	PapersPath   = "/papers"
	NotFoundPath = "/404"
)

// Descriptor describes one navigable view.
//
// RequiresAuth views are only reachable with a logged-in user.
// AllowedWhenAuth=false views (login, register, ...) bounce logged-in users away.
type Descriptor struct {
	Name            string
	Pattern         string
	RequiresAuth    bool
	AllowedWhenAuth bool
	Title           string
}

// Match reports whether path matches the descriptor pattern and returns the
// captured {name} segments.
func (d Descriptor) Match(path string) (map[string]string, bool) {
	want := splitPath(d.Pattern)
	got := splitPath(path)
	if len(want) != len(got) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range want {
		if name, ok := wildcard(seg); ok {
			if got[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, 2)
			}
			params[name] = got[i]
			continue
		}
		if seg != got[i] {
			return nil, false
		}
	}
	return params, true
}

func wildcard(seg string) (string, bool) {
	if len(seg) > 2 && strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Resolution is the outcome of looking up a request path in a Table.
// Either Route is set, or RedirectTo names the path the browser must go to.
type Resolution struct {
	Route      Descriptor
	Params     map[string]string
	RedirectTo string
}

// Table is an ordered route table. Earlier entries win, so literal patterns
// must precede wildcard patterns that would also match them.
type Table struct {
	routes    []Descriptor
	redirects map[string]string
	fallback  string
}

// NewTable builds a table from descriptors, exact-path redirects and the
// path used for unmatched requests.
func NewTable(routes []Descriptor, redirects map[string]string, fallback string) *Table {
	r := make([]Descriptor, len(routes))
	copy(r, routes)
	red := make(map[string]string, len(redirects))
	for k, v := range redirects {
		red[k] = v
	}
	return &Table{routes: r, redirects: red, fallback: fallback}
}

// Default returns the blue-latex route table.
func Default() *Table {
	return NewTable([]Descriptor{
		{Name: NameLogin, Pattern: LoginPath, RequiresAuth: false, AllowedWhenAuth: false, Title: "Login"},
		{Name: NameLogout, Pattern: "/logout", RequiresAuth: true, AllowedWhenAuth: true, Title: "Logout"},
		{Name: NameRegister, Pattern: "/register", RequiresAuth: false, AllowedWhenAuth: false, Title: "Register"},
		{Name: NameReset, Pattern: "/reset", RequiresAuth: false, AllowedWhenAuth: false, Title: "Reset password"},
		{Name: NameProfile, Pattern: "/profile", RequiresAuth: true, AllowedWhenAuth: true, Title: "Profile"},
		{Name: NamePapers, Pattern: PapersPath, RequiresAuth: true, AllowedWhenAuth: true, Title: "Papers"},
		{Name: NameNewPaper, Pattern: "/paper/new", RequiresAuth: true, AllowedWhenAuth: true, Title: "New paper"},
		{Name: NameEditPaper, Pattern: "/paper/{id}/edit", RequiresAuth: true, AllowedWhenAuth: true, Title: "Edit paper"},
		{Name: NamePaper, Pattern: "/paper/{id}", RequiresAuth: true, AllowedWhenAuth: true, Title: "Paper"},
		{Name: NameNotFound, Pattern: NotFoundPath, RequiresAuth: false, AllowedWhenAuth: true, Title: "Page not found"},
		{
			Name:            NameResetPassword,
			Pattern:         "/{username}/reset/{token}",
			RequiresAuth:    false,
			AllowedWhenAuth: false,
			Title:           "Reset password",
		},
	}, map[string]string{HomePath: PapersPath}, NotFoundPath)
}

// Routes returns a copy of the descriptors in table order.
func (t *Table) Routes() []Descriptor {
	out := make([]Descriptor, len(t.routes))
	copy(out, t.routes)
	return out
}

// Lookup returns the descriptor registered under name.
func (t *Table) Lookup(name string) (Descriptor, bool) {
	for _, d := range t.routes {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Resolve maps a request path to a route, an explicit redirect, or the fallback.
func (t *Table) Resolve(path string) Resolution {
	if path == "" {
		path = HomePath
	}
	if to, ok := t.redirects[path]; ok {
		return Resolution{RedirectTo: to}
	}
	for _, d := range t.routes {
		if params, ok := d.Match(path); ok {
			return Resolution{Route: d, Params: params}
		}
	}
	return Resolution{RedirectTo: t.fallback}
}
