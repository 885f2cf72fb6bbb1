package widgets

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/ports"
)

// Vitals is the patient vitals logger.
type Vitals struct {
	Draft domain.VitalsDraft

	gw    ports.Gateway
	guard *guard
}

// NewVitals builds the widget.
func NewVitals(gw ports.Gateway) *Vitals {
	return &Vitals{gw: gw, guard: newGuard()}
}

// Busy reports whether a submission is outstanding.
func (v *Vitals) Busy() bool { return v.guard.busy() }

// Prepare snapshots the draft for id. The draft is cleared once the server confirms.
func (v *Vitals) Prepare(id domain.Identity) (Submission, error) {
	heartRate := strings.TrimSpace(v.Draft.HeartRate)
	temp := strings.TrimSpace(v.Draft.Temperature)
	if heartRate == "" || temp == "" {
		return Submission{}, fmt.Errorf("%w: heart rate and temperature are required", ErrIncomplete)
	}
	if err := v.guard.acquire(); err != nil {
		return Submission{}, err
	}

	payload := domain.VitalsPayload{HeartRate: heartRate, Temperature: temp, UserID: id.ID}
	return Submission{run: func(ctx context.Context) domain.Notice {
		defer v.guard.release()
		out := v.gw.SubmitAction(ctx, domain.EndpointVitals, payload)
		if out.OK() {
			v.Draft = domain.VitalsDraft{}
		}
		return receiptNotice(out, domain.MsgVitalsSaved)
	}}, nil
}
