// Package authz decides whether the current visitor may open a protected
// view and where to send them when they may not.
package authz

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/estatehub/internal/client/models"
)

// State is the outcome of an authorization check.
type State int

const (
	// StateUnknown means the session has not been read yet.
	StateUnknown State = iota
	StateAnonymous
	StateAuthorized
	StateForbidden
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthorized:
		return "authorized"
	case StateForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// View names a destination the CLI can show instead of the requested one.
type View string

const (
	ViewNone    View = ""
	ViewLoading View = "loading"
	ViewLogin   View = "login"
	ViewHome    View = "home"
)

// Route access lists.
var (
	DashboardRoles = []models.Role{models.RoleOwner, models.RoleAdmin}
	AdminRoles     = []models.Role{models.RoleAdmin}
)

// Decision is the resolved state plus the view to redirect to.
type Decision struct {
	State    State
	Redirect View
	Session  *models.Session
}

// Allowed reports whether the protected view may be shown.
func (d Decision) Allowed() bool { return d.State == StateAuthorized }

// SessionSource reads the current session. session.Store satisfies it.
type SessionSource interface {
	GetSession(ctx context.Context) (*models.Session, bool)
}

// Gate checks routes against the stored session.
type Gate struct {
	sessions SessionSource
}

func NewGate(sessions SessionSource) *Gate {
	return &Gate{sessions: sessions}
}

// Resolve reads the session once and evaluates it against allowed. An empty
// allowed list admits any signed-in visitor.
func (g *Gate) Resolve(ctx context.Context, allowed ...models.Role) Decision {
	sess, ok := g.sessions.GetSession(ctx)
	if !ok {
		sess = nil
	}
	return Evaluate(sess, true, allowed)
}

// Evaluate is the pure transition behind Resolve.
func Evaluate(sess *models.Session, resolved bool, allowed []models.Role) Decision {
	switch {
	case !resolved:
		return Decision{State: StateUnknown, Redirect: ViewLoading}
	case sess == nil:
		return Decision{State: StateAnonymous, Redirect: ViewLogin}
	case len(allowed) > 0 && !slices.Contains(allowed, sess.Role):
		return Decision{State: StateForbidden, Redirect: ViewHome, Session: sess}
	default:
		return Decision{State: StateAuthorized, Redirect: ViewNone, Session: sess}
	}
}
