package httpx

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	blueweb "github.com/bluelatex/blue-web"
	"github.com/bluelatex/blue-web/internal/i18n"
	"github.com/bluelatex/blue-web/internal/service"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Navigator  *service.Navigator
	Sessions   *service.SessionService
	Papers     *service.PaperListService
	Paper      *service.PaperService
	Users      *service.UserService
	Translator *i18n.Translator

	// TemplateFS and StaticFS override the embedded assets (optional).
	TemplateFS fs.FS
	StaticFS   fs.FS

	CookieDomain  string
	SecureCookies bool
	IsDev         bool // serve templates and static files from disk
	Logger        *slog.Logger
}

// NewRouter builds the application handler:
// Recover(Logging(mux)), with view routes behind the session gate.
func NewRouter(s RouterServices) (http.Handler, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	templateFS, staticFS, err := assetFilesystems(s)
	if err != nil {
		return nil, err
	}
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: templateFS, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("create template renderer: %w", err)
	}

	ui := &UIHandlers{
		T:          tr,
		Translator: s.Translator,
		Navigator:  s.Navigator,
		Sessions:   s.Sessions,
		Papers:     s.Papers,
		Paper:      s.Paper,
		Users:      s.Users,
		Logger:     logger,
	}

	withSession := WithSession(SessionConfig{
		Sessions:      s.Sessions,
		CookieDomain:  s.CookieDomain,
		SecureCookies: s.SecureCookies,
		Logger:        logger,
	})
	csrf := CSRFProtection(CSRFConfig{CookieDomain: s.CookieDomain, SecureCookies: s.SecureCookies})
	gate := SessionGate(s.Navigator, logger)

	actions := func(h http.HandlerFunc) http.Handler { return withSession(csrf(h)) }
	views := withSession(csrf(gate(http.HandlerFunc(ui.Views))))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthHandler)
	mux.Handle("GET /session/status", withSession(http.HandlerFunc(sessionStatusHandler)))
	mux.Handle("GET /static/", staticHandler(staticFS))

	mux.Handle("POST /papers/sort", actions(ui.PapersSort))
	mux.Handle("POST /papers/style", actions(ui.PapersStyle))
	mux.Handle("POST /paper/{id}/delete", actions(ui.PaperDelete))
	mux.Handle("GET /paper/{id}/compiled.pdf", actions(ui.PaperPDF))

	// Every other path is a view: the route table resolves it, including
	// /{username}/reset/{token}, which overlaps /paper/{id}/edit as a mux pattern.
	mux.Handle("GET /", views)
	mux.Handle("POST /", views)

	return Recover(logger)(Logging(logger)(mux)), nil
}

func assetFilesystems(s RouterServices) (fs.FS, fs.FS, error) {
	templateFS, staticFS := s.TemplateFS, s.StaticFS
	if s.IsDev {
		if templateFS == nil {
			templateFS = os.DirFS(TemplatePathFromRoot)
		}
		if staticFS == nil {
			staticFS = os.DirFS("frontend/static")
		}
		return templateFS, staticFS, nil
	}

	var err error
	if templateFS == nil {
		if templateFS, err = fs.Sub(blueweb.TemplateFS, TemplatePathFromRoot); err != nil {
			return nil, nil, fmt.Errorf("embedded templates: %w", err)
		}
	}
	if staticFS == nil {
		if staticFS, err = fs.Sub(blueweb.StaticFS, "frontend/static"); err != nil {
			return nil, nil, fmt.Errorf("embedded static files: %w", err)
		}
	}
	return templateFS, staticFS, nil
}

func staticHandler(fsys fs.FS) http.Handler {
	files := http.StripPrefix("/static/", http.FileServer(http.FS(fsys)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}
