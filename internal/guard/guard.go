// Package guard decides whether a protected view may be shown. The decision
// is a pure function of the auth snapshot and is re-evaluated before every
// protected navigation.
package guard

// Decision is the outcome of evaluating a protected navigation.
type Decision int

const (
	// Pending means hydration or an auth operation is in flight; show a
	// neutral indicator. Redirecting here would bounce a valid session.
	Pending Decision = iota
	// Render means the protected view may be shown.
	Render
	// Redirect means the caller must be sent to the login entry point.
	Redirect
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	}
	return "unknown"
}

// Decide maps the auth snapshot to a Decision. Loading always wins:
// no render and no redirect until the state has settled.
func Decide(loading, authenticated bool) Decision {
	if loading {
		return Pending
	}
	if !authenticated {
		return Redirect
	}
	return Render
}
