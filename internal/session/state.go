// Package session is the client-side session state machine.
//
// State is a closed sum type (Anonymous or Authenticated) and Reduce is a pure
// transition function. Side effects live in Submit, which turns a gateway call into
// the event that Reduce consumes next. Nothing in this package renders or blocks.
package session

import (
	"github.com/doeshing/tams-go/internal/domain"
)

// State is either Anonymous or Authenticated.
type State interface {
	isState()
}

// Anonymous is the signed-out state. Mode and Draft only exist here.
type Anonymous struct {
	Mode    domain.Mode
	Draft   domain.AuthDraft
	Message domain.Notice
	// Pending is set while an auth submit is outstanding; further submits are ignored.
	Pending bool
}

// Authenticated holds the server-confirmed identity.
type Authenticated struct {
	Identity domain.Identity
}

func (Anonymous) isState()     {}
func (Authenticated) isState() {}

// Initial is the state at process start.
func Initial() State {
	return Anonymous{Mode: domain.ModeLogin, Draft: domain.EmptyDraft()}
}

// MsgMissingCredentials is shown when a submit is attempted with an empty field.
const MsgMissingCredentials = "username and password are required"

// Reduce applies e to s and returns the next state. It never mutates s.
func Reduce(s State, e Event) State {
	switch cur := s.(type) {
	case Anonymous:
		return reduceAnonymous(cur, e)
	case Authenticated:
		if _, ok := e.(Logout); ok {
			return Initial()
		}
		return cur
	default:
		return Initial()
	}
}

func reduceAnonymous(a Anonymous, e Event) State {
	switch ev := e.(type) {
	case EditUsername:
		a.Draft.Username = ev.Value
	case EditPassword:
		a.Draft.Password = ev.Value
	case SelectRole:
		if ev.Role.Valid() {
			a.Draft.Role = ev.Role
		}
	case ToggleMode:
		a.Mode = a.Mode.Toggle()
		a.Draft.Password = ""
		a.Message = domain.Notice{}
	case SubmitStarted:
		if a.Pending {
			return a
		}
		if !a.Draft.Complete() {
			a.Message = domain.Notice{Text: MsgMissingCredentials}
			return a
		}
		a.Pending = true
		a.Message = domain.Notice{}
	case LoginSucceeded:
		if !a.Pending {
			return a
		}
		return Authenticated{Identity: ev.Identity}
	case LoginFailed:
		if !a.Pending {
			return a
		}
		a.Pending = false
		a.Message = domain.FailureNotice(ev.Failure)
	case RegisterSucceeded:
		if !a.Pending {
			return a
		}
		a.Pending = false
		a.Mode = domain.ModeLogin
		a.Draft.Password = ""
		a.Message = domain.SuccessNotice(domain.MsgRegistered)
	case RegisterFailed:
		if !a.Pending {
			return a
		}
		a.Pending = false
		a.Message = domain.FailureNotice(ev.Failure)
	case Logout:
		return Initial()
	}
	return a
}

// BeginSubmit marks s as submitting. started is false when no request should be
// issued: a submit is already in flight, the draft is incomplete, or s is not
// Anonymous.
func BeginSubmit(s State) (next State, started bool) {
	before, ok := s.(Anonymous)
	if !ok || before.Pending {
		return s, false
	}
	next = Reduce(s, SubmitStarted{})
	after, ok := next.(Anonymous)
	return next, ok && after.Pending
}

// Identity returns the signed-in identity, if any.
func Identity(s State) (domain.Identity, bool) {
	if auth, ok := s.(Authenticated); ok {
		return auth.Identity, true
	}
	return domain.Identity{}, false
}

// HealthFromProbe maps a probe outcome onto the informational health badge.
func HealthFromProbe(out domain.Outcome[domain.HealthStatus]) domain.BackendHealth {
	if out.OK() {
		return domain.HealthHealthy
	}
	return domain.HealthUnhealthy
}
