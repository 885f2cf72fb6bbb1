package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/session"
)

func signedIn(role domain.Role) session.State {
	return session.Authenticated{Identity: domain.Identity{ID: 4, Username: "achieng", Role: role}}
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name    string
		state   session.State
		want    Kind
		wantErr error
	}{
		{name: "anonymous", state: session.Initial(), want: AuthView},
		{name: "patient", state: signedIn(domain.RolePatient), want: PatientView},
		{name: "doctor", state: signedIn(domain.RoleDoctor), want: DoctorView},
		{name: "unknown role", state: signedIn(domain.Role("nurse")), want: AuthView, wantErr: ErrUnclassifiedRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dispatch(tt.state)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDispatchIgnoresDraftRole(t *testing.T) {
	s := session.Reduce(session.Initial(), session.SelectRole{Role: domain.RoleDoctor})
	got, err := Dispatch(s)
	require.NoError(t, err)
	assert.Equal(t, AuthView, got)
}

func TestRequire(t *testing.T) {
	id, err := Require(signedIn(domain.RolePatient), WidgetVitals)
	require.NoError(t, err)
	assert.Equal(t, int64(4), id.ID)

	_, err = Require(signedIn(domain.RolePatient), WidgetPrescriptions)
	assert.True(t, errors.Is(err, ErrWidgetUnavailable))

	_, err = Require(signedIn(domain.RoleDoctor), WidgetVitals)
	assert.True(t, errors.Is(err, ErrWidgetUnavailable))

	_, err = Require(signedIn(domain.RoleDoctor), WidgetSpecialists)
	assert.NoError(t, err)

	_, err = Require(session.Initial(), WidgetSpecialists)
	assert.True(t, errors.Is(err, ErrNotAuthenticated))
}

func TestWidgetsReturnsCopy(t *testing.T) {
	w := Widgets(PatientView)
	w[0] = WidgetPrescriptions
	assert.Equal(t, WidgetVitals, Widgets(PatientView)[0])
	assert.Empty(t, Widgets(AuthView))
}
