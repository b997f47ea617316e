package httpx

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	"github.com/bluelatex/blue-web/internal/domain/route"
	"github.com/bluelatex/blue-web/internal/i18n"
	"github.com/bluelatex/blue-web/internal/service"
)

// UIHandlers serves the browser-facing views.
type UIHandlers struct {
	T          *TemplateRenderer
	Translator *i18n.Translator
	Navigator  *service.Navigator
	Sessions   *service.SessionService
	Papers     *service.PaperListService
	Paper      *service.PaperService
	Users      *service.UserService
	Logger     *slog.Logger

	messages  service.Messages
	viewsOnce sync.Once
	views     map[string]viewHandlers
}

// viewHandlers are the GET and POST handlers of one route. Either may be nil.
type viewHandlers struct {
	get  viewFunc
	post viewFunc
}

type viewFunc func(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, nav service.Navigation)

func (h *UIHandlers) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *UIHandlers) routeViews() map[string]viewHandlers {
	h.viewsOnce.Do(func() {
		h.views = map[string]viewHandlers{
			route.NameLogin:         {get: h.LoginPage, post: h.Login},
			route.NameLogout:        {get: h.LogoutPage, post: h.Logout},
			route.NameRegister:      {get: h.RegisterPage, post: h.Register},
			route.NameReset:         {get: h.ResetPage, post: h.RequestReset},
			route.NameResetPassword: {get: h.ResetPasswordPage, post: h.ResetPassword},
			route.NameProfile:       {get: h.Profile},
			route.NamePapers:        {get: h.PapersList},
			route.NameNewPaper:      {get: h.NewPaperPage, post: h.CreatePaper},
			route.NamePaper:         {get: h.PaperView},
			route.NameEditPaper:     {get: h.EditPaperPage, post: h.UpdatePaper},
			route.NameNotFound:      {get: h.NotFound},
		}
	})
	return h.views
}

// Views dispatches a request the session gate allowed to the handler of its
// route. It must run inside SessionGate.
func (h *UIHandlers) Views(w http.ResponseWriter, r *http.Request) {
	nav, ok := GetNavigationFromContext(r.Context())
	sess, hasSession := GetSessionFromContext(r.Context())
	if !ok || !hasSession {
		http.NotFound(w, r)
		return
	}

	v := h.routeViews()[nav.Route.Name]
	var fn viewFunc
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		fn = v.get
	case http.MethodPost:
		fn = v.post
	}
	if fn == nil {
		var allow []string
		if v.get != nil {
			allow = append(allow, http.MethodGet, http.MethodHead)
		}
		if v.post != nil {
			allow = append(allow, http.MethodPost)
		}
		w.Header().Set("Allow", strings.Join(allow, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	fn(w, r, sess, nav)
}

// render pops the session's pending messages into the page and renders it.
func (h *UIHandlers) render(w http.ResponseWriter, r *http.Request, status int, nav service.Navigation, data any) {
	sess, _ := GetSessionFromContext(r.Context())
	pd := newPageData(r, h.Translator, nav.Route.Name, nav.Route.Title, data)
	if sess != nil && len(sess.Messages) > 0 {
		pd.Messages = h.messages.Pop(sess)
		if err := h.Sessions.Save(r.Context(), sess); err != nil {
			h.logger().WarnContext(r.Context(), "failed to save session after showing messages", "error", err)
		}
	}

	var err error
	if WantsPartial(r) {
		err = h.T.RenderPartial(w, status, pd)
	} else {
		err = h.T.RenderFull(w, status, pd)
	}
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// saveAndRedirect persists the session and redirects. Flash messages recorded
// on the session show on the next page.
func (h *UIHandlers) saveAndRedirect(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, path string) {
	if err := h.Sessions.Save(r.Context(), sess); err != nil {
		h.logger().ErrorContext(r.Context(), "failed to save session", "error", err)
		http.Error(w, "session unavailable", http.StatusServiceUnavailable)
		return
	}
	redirect(w, r, path)
}

// sessionChanged re-runs the gate for path after the session's user changed
// and sends the browser where the navigator says.
func (h *UIHandlers) sessionChanged(w http.ResponseWriter, r *http.Request, sess *domainauth.Session, path string) {
	nav, err := h.Navigator.OnSessionChange(r.Context(), sess, path)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "navigation after session change failed", "error", err)
		http.Error(w, "session unavailable", http.StatusServiceUnavailable)
		return
	}
	redirect(w, r, nav.RedirectTo)
}

// NotFound renders the not found view.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request, _ *domainauth.Session, nav service.Navigation) {
	h.render(w, r, http.StatusNotFound, nav, nil)
}
