// Package widgets implements the dashboard feature forms: vitals, symptoms,
// specialist search and prescriptions.
//
// Each widget owns a local draft and allows one outstanding request at a time.
// Prepare validates the draft, reserves the widget and snapshots the request;
// Submission.Send performs the call and releases the reservation. The split lets an
// event loop reserve synchronously and send from a background command.
package widgets

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
)

var (
	// ErrInFlight is returned when a widget already has a request outstanding.
	ErrInFlight = errors.New("request already in flight")
	// ErrIncomplete is returned when a required draft field is blank.
	ErrIncomplete = errors.New("form incomplete")
)

const (
	stateIdle    = "idle"
	statePending = "pending"

	eventSubmit  = "submit"
	eventResolve = "resolve"
)

// guard is the per-widget in-flight flag.
type guard struct {
	sm *fsm.FSM
}

func newGuard() *guard {
	return &guard{sm: fsm.NewFSM(
		stateIdle,
		fsm.Events{
			{Name: eventSubmit, Src: []string{stateIdle}, Dst: statePending},
			{Name: eventResolve, Src: []string{statePending}, Dst: stateIdle},
		},
		fsm.Callbacks{},
	)}
}

func (g *guard) acquire() error {
	if err := g.sm.Event(context.Background(), eventSubmit); err != nil {
		return ErrInFlight
	}
	return nil
}

func (g *guard) release() {
	if g.sm.Can(eventResolve) {
		_ = g.sm.Event(context.Background(), eventResolve)
	}
}

func (g *guard) busy() bool {
	return g.sm.Is(statePending)
}
