package httpx

import "github.com/bluelatex/blue-web/internal/domain/route"

// Cookie names.
const (
	SessionCookieName = "session_id"
	ProfileCookieName = "blueweb_profile"
)

// profileCookieMaxAge keeps the browser profile for a year.
const profileCookieMaxAge = 365 * 24 * 3600

// Template paths used for loading templates in tests and dev mode.
const (
	TemplatePathFromRoot = "frontend/templates"
	TemplatePathFromTest = "../../frontend/templates"
)

// contentTemplates maps route names to their content template.
//
//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	route.NameLogin:         "login-content",
	route.NameLogout:        "logout-content",
	route.NameRegister:      "register-content",
	route.NameReset:         "reset-content",
	route.NameResetPassword: "reset-password-content",
	route.NameProfile:       "profile-content",
	route.NamePapers:        "papers-content",
	route.NameNewPaper:      "new-paper-content",
	route.NameEditPaper:     "edit-paper-content",
	route.NamePaper:         "paper-content",
	route.NameNotFound:      "notfound-content",
}

// ContentTemplateFor returns the content template for a route name.
// Unknown names fall back to the not found page.
func ContentTemplateFor(page string) string {
	if name, ok := contentTemplates[page]; ok {
		return name
	}
	return "notfound-content"
}
