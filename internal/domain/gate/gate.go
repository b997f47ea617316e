// Package gate decides whether a navigation may proceed given the current
// session. It is pure: callers persist the remembered destination.
package gate

import (
	domainauth "github.com/bluelatex/blue-web/internal/domain/auth"
	"github.com/bluelatex/blue-web/internal/domain/route"
)

// Action is the outcome kind of a gate decision.
type Action int

const (
	Allow Action = iota
	Redirect
)

func (a Action) String() string {
	if a == Redirect {
		return "redirect"
	}
	return "allow"
}

// Decision is the result of Decide.
//
// Remember is non-empty only when the requested path must be recorded as the
// pending return destination. ConsumeReturn is set when the pending
// destination was used and should be dropped.
type Decision struct {
	Action        Action
	Path          string
	Remember      string
	ConsumeReturn bool
}

// Allowed reports whether navigation proceeds.
func (d Decision) Allowed() bool { return d.Action == Allow }

// Decide evaluates a navigation to target for the given session.
// previousPath is the path the browser asked for.
func Decide(sess domainauth.Session, target route.Descriptor, previousPath string) Decision {
	if !sess.Authenticated() {
		if target.RequiresAuth && target.Name != route.NameLogin {
			return Decision{Action: Redirect, Path: route.LoginPath, Remember: previousPath}
		}
		return Decision{Action: Allow}
	}

	if !target.AllowedWhenAuth {
		if sess.ReturnTo != "" && sess.ReturnTo != route.LoginPath {
			return Decision{Action: Redirect, Path: sess.ReturnTo, ConsumeReturn: true}
		}
		return Decision{Action: Redirect, Path: route.HomePath, ConsumeReturn: sess.ReturnTo != ""}
	}

	return Decision{Action: Allow}
}

// Apply folds the decision's side effect into the session. It reports
// whether the session changed and must be saved.
func Apply(sess *domainauth.Session, d Decision) bool {
	switch {
	case d.Remember != "":
		if sess.ReturnTo == d.Remember {
			return false
		}
		sess.ReturnTo = d.Remember
		return true
	case d.ConsumeReturn:
		sess.ReturnTo = ""
		return true
	default:
		return false
	}
}
