package widgets

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/ports"
)

// Prescriptions is the doctor's prescription issuer.
type Prescriptions struct {
	Draft domain.PrescriptionDraft

	gw    ports.Gateway
	guard *guard
}

// NewPrescriptions builds the widget.
func NewPrescriptions(gw ports.Gateway) *Prescriptions {
	return &Prescriptions{gw: gw, guard: newGuard()}
}

// Busy reports whether a submission is outstanding.
func (p *Prescriptions) Busy() bool { return p.guard.busy() }

// Prepare snapshots the prescription issued by id.
func (p *Prescriptions) Prepare(id domain.Identity) (Submission, error) {
	patient := strings.TrimSpace(p.Draft.PatientName)
	meds := strings.TrimSpace(p.Draft.Medication)
	if patient == "" || meds == "" {
		return Submission{}, fmt.Errorf("%w: patient name and medication are required", ErrIncomplete)
	}
	if err := p.guard.acquire(); err != nil {
		return Submission{}, err
	}

	payload := domain.PrescriptionPayload{PatientName: patient, Medication: meds, UserID: id.ID}
	return Submission{run: func(ctx context.Context) domain.Notice {
		defer p.guard.release()
		out := p.gw.SubmitAction(ctx, domain.EndpointPrescriptions, payload)
		if out.OK() {
			p.Draft = domain.PrescriptionDraft{}
		}
		return receiptNotice(out, domain.MsgPrescriptionSet)
	}}, nil
}
