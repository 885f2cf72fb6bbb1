// Package view selects which screen is active for a session state.
package view

import (
	"errors"
	"fmt"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/session"
)

// Kind is one of the mutually exclusive screens.
type Kind int

const (
	AuthView Kind = iota
	PatientView
	DoctorView
)

func (k Kind) String() string {
	switch k {
	case PatientView:
		return "patient portal"
	case DoctorView:
		return "physician portal"
	default:
		return "sign in"
	}
}

// Widget names a feature widget exposed by a dashboard.
type Widget string

const (
	WidgetVitals        Widget = "vitals"
	WidgetSymptoms      Widget = "symptoms"
	WidgetSpecialists   Widget = "specialists"
	WidgetPrescriptions Widget = "prescriptions"
)

var (
	// ErrUnclassifiedRole is returned for an authenticated state whose role is neither
	// patient nor doctor. It is never silently mapped to a default view.
	ErrUnclassifiedRole = errors.New("unclassified role")
	// ErrNotAuthenticated is returned when a widget is requested without an identity.
	ErrNotAuthenticated = errors.New("not signed in")
	// ErrWidgetUnavailable is returned when the active view does not expose a widget.
	ErrWidgetUnavailable = errors.New("widget not available for this role")
)

var widgetsByView = map[Kind][]Widget{
	AuthView:    nil,
	PatientView: {WidgetVitals, WidgetSymptoms, WidgetSpecialists},
	DoctorView:  {WidgetPrescriptions, WidgetSpecialists},
}

// Dispatch selects the active view. Dashboards are chosen solely on the identity's
// server-confirmed role; the auth draft is never consulted.
func Dispatch(s session.State) (Kind, error) {
	id, ok := session.Identity(s)
	if !ok {
		return AuthView, nil
	}
	switch id.Role {
	case domain.RolePatient:
		return PatientView, nil
	case domain.RoleDoctor:
		return DoctorView, nil
	default:
		return AuthView, fmt.Errorf("%w: %q", ErrUnclassifiedRole, id.Role)
	}
}

// Widgets lists the widgets a view exposes, in display order.
func Widgets(k Kind) []Widget {
	return append([]Widget(nil), widgetsByView[k]...)
}

// Require returns the identity allowed to use w in state s.
func Require(s session.State, w Widget) (domain.Identity, error) {
	kind, err := Dispatch(s)
	if err != nil {
		return domain.Identity{}, err
	}
	if kind == AuthView {
		return domain.Identity{}, ErrNotAuthenticated
	}
	for _, allowed := range widgetsByView[kind] {
		if allowed == w {
			id, _ := session.Identity(s)
			return id, nil
		}
	}
	return domain.Identity{}, fmt.Errorf("%w: %s on %s", ErrWidgetUnavailable, w, kind)
}
