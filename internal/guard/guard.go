package guard

import (
	"fmt"

	"github.com/sabhahq/sabha/internal/role"
	"github.com/sabhahq/sabha/internal/session"
)

// Action is the terminal outcome of one guard evaluation.
type Action int

const (
	// Wait renders a neutral waiting state while the session is still
	// being restored; no redirect happens.
	Wait Action = iota
	// Render allows the destination to render.
	Render
	// RedirectLogin sends the user to the login view, replacing
	// history so a blocked page cannot be reached via back-navigation.
	RedirectLogin
	// RedirectHome sends the user to their role's home destination.
	// A soft redirect, not an error page.
	RedirectHome
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case Wait:
		return "wait"
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Decision is the result of evaluating one navigation attempt.
type Decision struct {
	Action Action
	// Target is the redirect destination; only set for redirects.
	Target role.Destination
	// Reason is a human-readable explanation, for logs.
	Reason string
}

// Evaluate gates a navigation attempt. It is a pure function of the
// session snapshot and the destination: same inputs, same decision.
// There is no retry; the next navigation evaluates afresh.
func Evaluate(snap session.Snapshot, dest role.Destination) Decision {
	// Session still restoring: hold rendering, do not redirect.
	if snap.Loading {
		return Decision{Action: Wait, Reason: "session restoring"}
	}

	// No user: to login, replacing history. Public destinations are the
	// exception and render for everyone.
	if !snap.Authenticated() {
		if role.IsPublic(dest) {
			return Decision{Action: Render, Reason: "public destination"}
		}
		return Decision{
			Action: RedirectLogin,
			Target: role.DestLogin,
			Reason: "unauthenticated",
		}
	}

	r := snap.Role()

	// Role outside the enumeration: fail closed.
	if !role.Known(r) {
		return Decision{
			Action: RedirectLogin,
			Target: role.DestLogin,
			Reason: fmt.Sprintf("unrecognized role %q", r),
		}
	}

	// Authorized or public: render.
	if role.CanAccess(r, dest) {
		return Decision{Action: Render, Reason: "authorized"}
	}

	// Authenticated but not allowed: soft redirect home.
	return Decision{
		Action: RedirectHome,
		Target: role.HomeRoute(r),
		Reason: fmt.Sprintf("role %s not allowed at %s", r, dest),
	}
}
