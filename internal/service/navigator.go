package service

import (
	"context"
	"fmt"
	"log/slog"

	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	"github.com/bluelatex/blue-web/internal/domain/gate"
	"github.com/bluelatex/blue-web/internal/domain/route"
	"github.com/bluelatex/blue-web/internal/observability/metrics"
	"github.com/bluelatex/blue-web/internal/observability/statsd"
	"github.com/bluelatex/blue-web/internal/ports"
)

// NavigatorOptions groups dependencies for Navigator.
type NavigatorOptions struct {
	Routes   *route.Table      // Optional: defaults to route.Default()
	Sessions ports.SessionStore // Required
	Metrics  statsd.Sink
	Logger   *slog.Logger
}

// Navigator runs the session gate for every navigation, whether it comes
// from a browser request or from a session change.
type Navigator struct {
	routes   *route.Table
	sessions ports.SessionStore
	metrics  statsd.Sink
	logger   *slog.Logger
}

// NewNavigator constructs a Navigator.
func NewNavigator(opts NavigatorOptions) *Navigator {
	if opts.Sessions == nil {
		panic("NavigatorOptions.Sessions is required")
	}
	routes := opts.Routes
	if routes == nil {
		routes = route.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Navigator{routes: routes, sessions: opts.Sessions, metrics: opts.Metrics, logger: logger}
}

// Navigation is the outcome of evaluating a path.
// RedirectTo is empty when the view may render.
type Navigation struct {
	Route      route.Descriptor
	Params     map[string]string
	Decision   gate.Decision
	RedirectTo string
}

// Allowed reports whether the requested view may render.
func (n Navigation) Allowed() bool { return n.RedirectTo == "" }

// Routes returns the route table in use.
func (n *Navigator) Routes() *route.Table { return n.routes }

// Evaluate resolves path, runs the gate and persists the remembered
// destination. Table redirects are answered without consulting the gate;
// the gate runs once the browser follows them.
func (n *Navigator) Evaluate(ctx context.Context, sess *domainauth.Session, path string) (Navigation, error) {
	res := n.routes.Resolve(path)
	if res.RedirectTo != "" {
		return Navigation{RedirectTo: res.RedirectTo}, nil
	}

	d := gate.Decide(*sess, res.Route, path)
	metrics.EmitGateDecision(n.metrics, res.Route.Name, d.Action.String(), sess.Authenticated())

	if gate.Apply(sess, d) {
		if err := n.sessions.Save(ctx, *sess); err != nil {
			return Navigation{}, fmt.Errorf("save session: %w", err)
		}
	}

	nav := Navigation{Route: res.Route, Params: res.Params, Decision: d}
	if !d.Allowed() {
		nav.RedirectTo = d.Path
		n.logger.DebugContext(ctx, "navigation redirected",
			"route", res.Route.Name,
			"path", path,
			"redirect", d.Path,
			"authenticated", sess.Authenticated(),
		)
	}
	return nav, nil
}

// OnSessionChange re-evaluates the current path after login, logout or a
// rejected backend call cleared the user. RedirectTo is always set: when the
// gate allows currentPath, the browser is sent back to it.
func (n *Navigator) OnSessionChange(ctx context.Context, sess *domainauth.Session, currentPath string) (Navigation, error) {
	nav, err := n.Evaluate(ctx, sess, currentPath)
	if err != nil {
		return Navigation{}, err
	}
	if nav.Allowed() {
		nav.RedirectTo = currentPath
	}
	n.logger.InfoContext(ctx, "session changed",
		"authenticated", sess.Authenticated(),
		"path", currentPath,
		"redirect", nav.RedirectTo,
	)
	return nav, nil
}
