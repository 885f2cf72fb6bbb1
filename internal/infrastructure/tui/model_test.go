package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/tams-go/internal/app"
	"github.com/doeshing/tams-go/internal/application/widgets"
	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/session"
	"github.com/doeshing/tams-go/internal/view"
)

type fakeGateway struct {
	mu      sync.Mutex
	role    domain.Role
	offline bool
	logins  int
	submits []any
}

func (g *fakeGateway) ProbeHealth(context.Context) domain.Outcome[domain.HealthStatus] {
	if g.offline {
		return domain.Fail[domain.HealthStatus](domain.Failure{Kind: domain.FailureOffline, Message: domain.MsgOffline})
	}
	return domain.Succeed(domain.HealthStatus{Status: "Healthy"})
}

func (g *fakeGateway) Login(_ context.Context, c domain.Credentials) domain.Outcome[domain.Identity] {
	g.mu.Lock()
	g.logins++
	g.mu.Unlock()
	if g.offline {
		return domain.Fail[domain.Identity](domain.Failure{Kind: domain.FailureOffline, Message: domain.MsgOffline})
	}
	return domain.Succeed(domain.Identity{ID: 9, Username: c.Username, Role: g.role})
}

func (g *fakeGateway) Register(context.Context, domain.Registration) domain.Outcome[struct{}] {
	return domain.Succeed(struct{}{})
}

func (g *fakeGateway) SubmitAction(_ context.Context, _ string, payload any) domain.Outcome[domain.ActionReceipt] {
	g.mu.Lock()
	g.submits = append(g.submits, payload)
	g.mu.Unlock()
	return domain.Succeed(domain.ActionReceipt{})
}

func (g *fakeGateway) SearchSpecialists(context.Context, domain.SpecialistQuery) domain.Outcome[[]domain.Specialist] {
	return domain.Succeed([]domain.Specialist{{Name: "Dr. Achieng", Specialty: "Cardiology", Location: "Nairobi"}})
}

func newTestModel(gw *fakeGateway) *model {
	return initialModel(context.Background(), Deps{
		Gateway: gw,
		BaseURL: "http://portal.test",
		NewWidgets: func() app.Widgets {
			return app.Widgets{
				Vitals:        widgets.NewVitals(gw),
				Symptoms:      widgets.NewSymptoms(gw),
				Specialists:   widgets.NewSpecialistSearch(gw),
				Prescriptions: widgets.NewPrescriptions(gw),
			}
		},
	})
}

func send(t *testing.T, m *model, msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(t *testing.T, m *model, text string) {
	t.Helper()
	send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

// resolve runs cmd and feeds its message back into the model.
func resolve(t *testing.T, m *model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	send(t, m, cmd())
}

func signIn(t *testing.T, m *model) {
	t.Helper()
	typeText(t, m, "amina")
	send(t, m, key(tea.KeyTab))
	typeText(t, m, "pw")
	resolve(t, m, send(t, m, key(tea.KeyEnter)))
}

func TestProbeSetsBadgeWithoutGating(t *testing.T) {
	gw := &fakeGateway{offline: true, role: domain.RolePatient}
	m := newTestModel(gw)
	assert.Equal(t, domain.HealthUnknown, m.health)

	resolve(t, m, m.probe())
	assert.Equal(t, domain.HealthUnhealthy, m.health)
	assert.Contains(t, m.View(), "offline")

	// The form still accepts input and submits.
	typeText(t, m, "amina")
	send(t, m, key(tea.KeyTab))
	typeText(t, m, "pw")
	assert.NotNil(t, send(t, m, key(tea.KeyEnter)))
}

func TestTypingUpdatesDraft(t *testing.T) {
	m := newTestModel(&fakeGateway{role: domain.RolePatient})
	typeText(t, m, "amina")
	send(t, m, key(tea.KeyTab))
	typeText(t, m, "secret")

	a := m.state.(session.Anonymous)
	assert.Equal(t, "amina", a.Draft.Username)
	assert.Equal(t, "secret", a.Draft.Password)
}

func TestSubmitDisabledWhilePending(t *testing.T) {
	gw := &fakeGateway{role: domain.RolePatient}
	m := newTestModel(gw)
	typeText(t, m, "amina")
	send(t, m, key(tea.KeyTab))
	typeText(t, m, "pw")

	first := send(t, m, key(tea.KeyEnter))
	require.NotNil(t, first)
	assert.True(t, m.state.(session.Anonymous).Pending)
	assert.Nil(t, send(t, m, key(tea.KeyEnter)), "second submit must not issue a request")

	send(t, m, first())
	assert.Equal(t, 1, gw.logins)
	_, ok := session.Identity(m.state)
	assert.True(t, ok)
}

func TestToggleClearsPasswordField(t *testing.T) {
	m := newTestModel(&fakeGateway{})
	typeText(t, m, "amina")
	send(t, m, key(tea.KeyTab))
	typeText(t, m, "pw")

	send(t, m, key(tea.KeyCtrlT))
	a := m.state.(session.Anonymous)
	assert.Equal(t, domain.ModeRegister, a.Mode)
	assert.Empty(t, m.authInputs[fieldPassword].Value())
	assert.Equal(t, "amina", m.authInputs[fieldUsername].Value())

	send(t, m, key(tea.KeyCtrlR))
	assert.Equal(t, domain.RoleDoctor, m.state.(session.Anonymous).Draft.Role)
	assert.Contains(t, m.View(), "Create account")
}

func TestPatientDashboardSubmitsVitals(t *testing.T) {
	gw := &fakeGateway{role: domain.RolePatient}
	m := newTestModel(gw)
	signIn(t, m)

	kind, err := view.Dispatch(m.state)
	require.NoError(t, err)
	assert.Equal(t, view.PatientView, kind)
	assert.Contains(t, m.View(), "Log vitals")

	typeText(t, m, "72")
	send(t, m, key(tea.KeyTab))
	typeText(t, m, "37")

	cmd := send(t, m, key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Nil(t, send(t, m, key(tea.KeyEnter)), "widget is busy")
	send(t, m, cmd())

	require.Len(t, gw.submits, 1)
	assert.Equal(t, domain.VitalsPayload{HeartRate: "72", Temperature: "37", UserID: 9}, gw.submits[0])
	assert.True(t, m.notice.Success)
	assert.Empty(t, m.forms[view.WidgetVitals].fields[0].Value(), "draft cleared on success")
}

func TestDoctorDashboardShowsDoctorWidgets(t *testing.T) {
	m := newTestModel(&fakeGateway{role: domain.RoleDoctor})
	signIn(t, m)

	out := m.View()
	assert.Contains(t, out, "Issue prescription")
	assert.Contains(t, out, "Find a specialist")
	assert.NotContains(t, out, "Log vitals")

	send(t, m, key(tea.KeyRight))
	resolve(t, m, send(t, m, key(tea.KeyEnter)))
	assert.Contains(t, m.View(), "Dr. Achieng")
}

func TestLogoutDropsLateWidgetResult(t *testing.T) {
	gw := &fakeGateway{role: domain.RolePatient}
	m := newTestModel(gw)
	signIn(t, m)

	typeText(t, m, "72")
	send(t, m, key(tea.KeyTab))
	typeText(t, m, "37")
	pending := send(t, m, key(tea.KeyEnter))
	require.NotNil(t, pending)

	send(t, m, key(tea.KeyCtrlL))
	a, ok := m.state.(session.Anonymous)
	require.True(t, ok)
	assert.Equal(t, domain.EmptyDraft(), a.Draft)

	send(t, m, pending())
	assert.True(t, m.notice.Empty())
	assert.Nil(t, m.forms)
}

func TestQuit(t *testing.T) {
	m := newTestModel(&fakeGateway{})
	cmd := send(t, m, key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
