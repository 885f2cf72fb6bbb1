package session

import (
	"context"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/ports"
)

// Submit performs the auth call selected by a.Mode and returns the resulting event.
// In login mode only the credentials are sent; the draft role never reaches the identity.
func Submit(ctx context.Context, gw ports.Gateway, a Anonymous) Event {
	if a.Mode == domain.ModeRegister {
		out := gw.Register(ctx, a.Draft.Registration())
		if f, failed := out.Failure(); failed {
			return RegisterFailed{Failure: f}
		}
		return RegisterSucceeded{}
	}

	out := gw.Login(ctx, a.Draft.Credentials())
	if f, failed := out.Failure(); failed {
		return LoginFailed{Failure: f}
	}
	return LoginSucceeded{Identity: out.Value()}
}

// Run drives one complete submit synchronously: BeginSubmit, Submit, Reduce.
// It is the sequential form used by one-shot commands; interactive callers run
// Submit asynchronously and feed the event back themselves.
func Run(ctx context.Context, gw ports.Gateway, s State) State {
	next, started := BeginSubmit(s)
	if !started {
		return next
	}
	return Reduce(next, Submit(ctx, gw, next.(Anonymous)))
}
