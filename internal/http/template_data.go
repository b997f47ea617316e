package httpx

import (
	"net/http"

	"golang.org/x/text/language"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	"github.com/bluelatex/blue-web/internal/i18n"
)

// PageData is the root value every template receives.
type PageData struct {
	// Page is the route name; it selects the content template.
	Page          string
	Title         string
	Path          string
	User          string
	Authenticated bool
	Messages      []domainauth.Message
	CSRFToken     string
	Lang          string
	Data          any

	tr  *i18n.Translator
	tag language.Tag
}

// T translates a message key into the visitor's language.
func (p PageData) T(key string) string {
	if p.tr == nil {
		return key
	}
	return p.tr.Translate(p.tag, key)
}

// newPageData fills the request-derived fields. Messages are attached by the caller.
func newPageData(r *http.Request, tr *i18n.Translator, page, title string, data any) PageData {
	tag := i18n.Supported[0]
	if tr != nil {
		tag = tr.Match(r.Header.Get("Accept-Language"))
	}
	pd := PageData{
		Page:      page,
		Title:     title,
		Path:      r.URL.Path,
		CSRFToken: GetCSRFToken(r),
		Lang:      tag.String(),
		Data:      data,
		tr:        tr,
		tag:       tag,
	}
	if sess, ok := GetSessionFromContext(r.Context()); ok {
		pd.User = sess.UserName
		pd.Authenticated = sess.Authenticated()
	}
	return pd
}
