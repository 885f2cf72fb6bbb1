package session

import "github.com/doeshing/tams-go/internal/domain"

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// EditUsername replaces the draft username.
type EditUsername struct{ Value string }

// EditPassword replaces the draft password.
type EditPassword struct{ Value string }

// SelectRole sets the role requested on registration.
type SelectRole struct{ Role domain.Role }

// ToggleMode switches between login and registration.
type ToggleMode struct{}

// SubmitStarted marks the auth form as in flight.
type SubmitStarted struct{}

// LoginSucceeded carries the identity confirmed by the server.
type LoginSucceeded struct{ Identity domain.Identity }

// LoginFailed carries a normalized login failure.
type LoginFailed struct{ Failure domain.Failure }

// RegisterSucceeded reports a completed registration. It never carries an identity.
type RegisterSucceeded struct{}

// RegisterFailed carries a normalized registration failure.
type RegisterFailed struct{ Failure domain.Failure }

// Logout drops the identity and resets the form.
type Logout struct{}

func (EditUsername) isEvent()      {}
func (EditPassword) isEvent()      {}
func (SelectRole) isEvent()        {}
func (ToggleMode) isEvent()        {}
func (SubmitStarted) isEvent()     {}
func (LoginSucceeded) isEvent()    {}
func (LoginFailed) isEvent()       {}
func (RegisterSucceeded) isEvent() {}
func (RegisterFailed) isEvent()    {}
func (Logout) isEvent()            {}
