package widgets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/infrastructure/api"
)

type recordingGateway struct {
	submits   []submitted
	searches  []domain.SpecialistQuery
	receipt   domain.Outcome[domain.ActionReceipt]
	found     domain.Outcome[[]domain.Specialist]
	searchHit int
}

type submitted struct {
	endpoint string
	payload  any
}

func newRecordingGateway() *recordingGateway {
	return &recordingGateway{
		receipt: domain.Succeed(domain.ActionReceipt{}),
		found:   domain.Succeed([]domain.Specialist{}),
	}
}

func (g *recordingGateway) ProbeHealth(context.Context) domain.Outcome[domain.HealthStatus] {
	return domain.Succeed(domain.HealthStatus{Status: "Healthy"})
}

func (g *recordingGateway) Login(context.Context, domain.Credentials) domain.Outcome[domain.Identity] {
	return domain.Fail[domain.Identity](domain.Failure{Kind: domain.FailureUnhandled, Message: "not used"})
}

func (g *recordingGateway) Register(context.Context, domain.Registration) domain.Outcome[struct{}] {
	return domain.Fail[struct{}](domain.Failure{Kind: domain.FailureUnhandled, Message: "not used"})
}

func (g *recordingGateway) SubmitAction(_ context.Context, endpoint string, payload any) domain.Outcome[domain.ActionReceipt] {
	g.submits = append(g.submits, submitted{endpoint: endpoint, payload: payload})
	return g.receipt
}

func (g *recordingGateway) SearchSpecialists(_ context.Context, q domain.SpecialistQuery) domain.Outcome[[]domain.Specialist] {
	g.searches = append(g.searches, q)
	g.searchHit++
	return g.found
}

var (
	patient = domain.Identity{ID: 1, Username: "amina", Role: domain.RolePatient}
	doctor  = domain.Identity{ID: 7, Username: "otieno", Role: domain.RoleDoctor}
)

func TestVitalsSubmitClearsDraftOnSuccess(t *testing.T) {
	gw := newRecordingGateway()
	v := NewVitals(gw)
	v.Draft = domain.VitalsDraft{HeartRate: "72", Temperature: "37"}

	notice, err := Submit(context.Background(), v, patient)
	require.NoError(t, err)

	assert.True(t, notice.Success)
	assert.Equal(t, domain.MsgVitalsSaved, notice.Text)
	assert.Equal(t, domain.VitalsDraft{}, v.Draft)
	require.Len(t, gw.submits, 1)
	assert.Equal(t, domain.EndpointVitals, gw.submits[0].endpoint)
	assert.Equal(t, domain.VitalsPayload{HeartRate: "72", Temperature: "37", UserID: 1}, gw.submits[0].payload)
	assert.False(t, v.Busy())
}

func TestVitalsKeepsDraftOnFailure(t *testing.T) {
	gw := newRecordingGateway()
	gw.receipt = domain.Fail[domain.ActionReceipt](domain.Failure{Kind: domain.FailureOffline, Message: domain.MsgOffline})
	v := NewVitals(gw)
	v.Draft = domain.VitalsDraft{HeartRate: "72", Temperature: "37"}

	notice, err := Submit(context.Background(), v, patient)
	require.NoError(t, err)

	assert.False(t, notice.Success)
	assert.Equal(t, domain.MsgOffline, notice.Text)
	assert.Equal(t, "72", v.Draft.HeartRate)
	assert.False(t, v.Busy())
}

func TestInFlightGuardRejectsSecondTrigger(t *testing.T) {
	gw := newRecordingGateway()
	v := NewVitals(gw)
	v.Draft = domain.VitalsDraft{HeartRate: "72", Temperature: "37"}

	first, err := v.Prepare(patient)
	require.NoError(t, err)
	assert.True(t, v.Busy())

	_, err = v.Prepare(patient)
	assert.ErrorIs(t, err, ErrInFlight)

	first.Send(context.Background())
	assert.Len(t, gw.submits, 1)
	assert.False(t, v.Busy())

	_, err = v.Prepare(patient)
	assert.ErrorIs(t, err, ErrIncomplete, "draft was cleared by the first submission")
}

func TestSymptomsRejectsBlankDescription(t *testing.T) {
	gw := newRecordingGateway()
	s := NewSymptoms(gw)
	s.Draft.Description = "   "

	_, err := Submit(context.Background(), s, patient)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Empty(t, gw.submits)
	assert.False(t, s.Busy())
}

func TestSymptomsUsesServerMessage(t *testing.T) {
	gw := newRecordingGateway()
	gw.receipt = domain.Succeed(domain.ActionReceipt{Message: "Symptoms recorded"})
	s := NewSymptoms(gw)
	s.Draft.Description = "headache since morning"

	notice, err := Submit(context.Background(), s, patient)
	require.NoError(t, err)

	assert.Equal(t, domain.SuccessNotice("Symptoms recorded"), notice)
	require.Len(t, gw.submits, 1)
	assert.Equal(t, domain.SymptomPayload{UserID: 1, Description: "headache since morning"}, gw.submits[0].payload)
}

func TestPrescriptionsPayload(t *testing.T) {
	gw := newRecordingGateway()
	p := NewPrescriptions(gw)
	p.Draft = domain.PrescriptionDraft{PatientName: "Amina", Medication: "Amoxicillin 500mg"}

	notice, err := Submit(context.Background(), p, doctor)
	require.NoError(t, err)

	assert.True(t, notice.Success)
	require.Len(t, gw.submits, 1)
	assert.Equal(t, domain.EndpointPrescriptions, gw.submits[0].endpoint)
	assert.Equal(t, domain.PrescriptionPayload{PatientName: "Amina", Medication: "Amoxicillin 500mg", UserID: 7}, gw.submits[0].payload)
	assert.Equal(t, domain.PrescriptionDraft{}, p.Draft)
}

func TestSpecialistSearchReplacesResults(t *testing.T) {
	gw := newRecordingGateway()
	s := NewSpecialistSearch(gw)
	s.Results = []domain.Specialist{{Name: "Dr. Old", Specialty: "ENT", Location: "Kisumu"}}

	gw.found = domain.Succeed([]domain.Specialist{
		{Name: "Dr. Achieng", Specialty: "Cardiology", Location: "Nairobi"},
		{Name: "Dr. Kamau", Specialty: "Cardiology", Location: "Nairobi"},
	})
	s.Query = domain.SpecialistQuery{Specialty: "Cardiology"}

	notice, err := Submit(context.Background(), s, doctor)
	require.NoError(t, err)
	assert.Equal(t, "2 specialists found", notice.Text)
	require.Len(t, s.Results, 2)
	assert.Equal(t, "Dr. Achieng", s.Results[0].Name)
	assert.Equal(t, []domain.SpecialistQuery{{Specialty: "Cardiology"}}, gw.searches)
}

func TestSpecialistSearchFailureKeepsResults(t *testing.T) {
	gw := newRecordingGateway()
	s := NewSpecialistSearch(gw)
	previous := []domain.Specialist{{Name: "Dr. Achieng", Specialty: "Cardiology", Location: "Nairobi"}}
	s.Results = previous

	gw.found = domain.Fail[[]domain.Specialist](domain.Failure{Kind: domain.FailureProtocol, Message: "server error: expected JSON, got 502"})

	notice, err := Submit(context.Background(), s, patient)
	require.NoError(t, err)
	assert.False(t, notice.Success)
	assert.Equal(t, previous, s.Results)
}

func TestFoundText(t *testing.T) {
	assert.Equal(t, "No specialists found", foundText(0))
	assert.Equal(t, "1 specialist found", foundText(1))
	assert.Equal(t, "3 specialists found", foundText(3))
}

func TestVitalsRoundTripPostsOnce(t *testing.T) {
	var posts atomic.Int32
	var got map[string]any

	r := chi.NewRouter()
	r.Post(domain.EndpointVitals, func(w http.ResponseWriter, req *http.Request) {
		posts.Add(1)
		_ = json.NewDecoder(req.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Vitals saved"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	v := NewVitals(api.NewClient(srv.URL, 0))
	v.Draft = domain.VitalsDraft{HeartRate: "72", Temperature: "37"}

	notice, err := Submit(context.Background(), v, patient)
	require.NoError(t, err)

	assert.Equal(t, int32(1), posts.Load())
	assert.Equal(t, domain.SuccessNotice("Vitals saved"), notice)
	assert.Equal(t, map[string]any{"heartRate": "72", "temp": "37", "user_id": float64(1)}, got)
}
