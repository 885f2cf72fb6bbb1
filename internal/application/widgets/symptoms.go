package widgets

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/ports"
)

// Symptoms is the patient symptom reporter.
type Symptoms struct {
	Draft domain.SymptomDraft

	gw    ports.Gateway
	guard *guard
}

// NewSymptoms builds the widget.
func NewSymptoms(gw ports.Gateway) *Symptoms {
	return &Symptoms{gw: gw, guard: newGuard()}
}

// Busy reports whether a submission is outstanding.
func (s *Symptoms) Busy() bool { return s.guard.busy() }

// Prepare snapshots the description for id.
func (s *Symptoms) Prepare(id domain.Identity) (Submission, error) {
	desc := strings.TrimSpace(s.Draft.Description)
	if desc == "" {
		return Submission{}, fmt.Errorf("%w: describe your symptoms", ErrIncomplete)
	}
	if err := s.guard.acquire(); err != nil {
		return Submission{}, err
	}

	payload := domain.SymptomPayload{UserID: id.ID, Description: desc}
	return Submission{run: func(ctx context.Context) domain.Notice {
		defer s.guard.release()
		out := s.gw.SubmitAction(ctx, domain.EndpointSymptoms, payload)
		if out.OK() {
			s.Draft = domain.SymptomDraft{}
		}
		return receiptNotice(out, domain.MsgSymptomsShared)
	}}, nil
}
