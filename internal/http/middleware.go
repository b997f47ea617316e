package httpx

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/bluelatex/blue-web/internal/service"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.InfoContext(r.Context(), "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Flush lets streamed responses such as the PDF proxy pass through.
func (w *respWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.ErrorContext(r.Context(), "panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionConfig configures WithSession.
type SessionConfig struct {
	Sessions     *service.SessionService
	CookieDomain string
	// SecureCookies forces the Secure attribute even behind plain HTTP.
	SecureCookies bool
	Logger        *slog.Logger
}

// WithSession loads the browser session named by the session cookie, or
// starts a new one, and makes sure the browser carries a profile id.
// Both land in the request context.
func WithSession(cfg SessionConfig) func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			sess, created, err := cfg.Sessions.Resume(ctx, cookieValue(r, SessionCookieName))
			if err != nil {
				logger.ErrorContext(ctx, "failed to resume session", "error", err)
				http.Error(w, "session unavailable", http.StatusServiceUnavailable)
				return
			}
			secure := cfg.SecureCookies || isSecureRequest(r)
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    sess.ID,
					Path:     "/",
					Domain:   cfg.CookieDomain,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			profile := cookieValue(r, ProfileCookieName)
			if _, err := uuid.Parse(profile); err != nil {
				profile = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     ProfileCookieName,
					Value:    profile,
					Path:     "/",
					Domain:   cfg.CookieDomain,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   profileCookieMaxAge,
				})
			}

			ctx = SetProfileInContext(SetSessionInContext(ctx, sess), profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionGate evaluates the navigator for the requested path. Refused
// navigations are redirected; allowed ones carry the resolved route in the
// request context. It must run inside WithSession.
func SessionGate(nav *service.Navigator, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			sess, ok := GetSessionFromContext(ctx)
			if !ok {
				http.Error(w, "session unavailable", http.StatusInternalServerError)
				return
			}
			navigation, err := nav.Evaluate(ctx, sess, r.URL.Path)
			if err != nil {
				logger.ErrorContext(ctx, "navigation failed", "path", r.URL.Path, "error", err)
				http.Error(w, "session unavailable", http.StatusServiceUnavailable)
				return
			}
			if !navigation.Allowed() {
				redirect(w, r, navigation.RedirectTo)
				return
			}
			next.ServeHTTP(w, r.WithContext(setNavigationInContext(ctx, navigation)))
		})
	}
}

// redirect sends the browser to path, through Hx-Redirect for htmx requests.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if IsHTMX(r) {
		SetHXRedirect(w, path)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
