package widgets

import (
	"context"
	"fmt"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/ports"
)

// SpecialistSearch is the only read widget. A successful search replaces Results
// wholesale; a failed one leaves the previous results in place.
type SpecialistSearch struct {
	Query   domain.SpecialistQuery
	Results []domain.Specialist

	gw    ports.Gateway
	guard *guard
}

// NewSpecialistSearch builds the widget.
func NewSpecialistSearch(gw ports.Gateway) *SpecialistSearch {
	return &SpecialistSearch{gw: gw, guard: newGuard()}
}

// Busy reports whether a search is outstanding.
func (s *SpecialistSearch) Busy() bool { return s.guard.busy() }

// Prepare snapshots the filters. Blank filters list every specialist.
func (s *SpecialistSearch) Prepare(domain.Identity) (Submission, error) {
	if err := s.guard.acquire(); err != nil {
		return Submission{}, err
	}

	query := s.Query
	return Submission{run: func(ctx context.Context) domain.Notice {
		defer s.guard.release()
		out := s.gw.SearchSpecialists(ctx, query)
		if f, failed := out.Failure(); failed {
			return domain.FailureNotice(f)
		}
		s.Results = out.Value()
		return domain.SuccessNotice(foundText(len(s.Results)))
	}}, nil
}

func foundText(n int) string {
	switch n {
	case 0:
		return "No specialists found"
	case 1:
		return "1 specialist found"
	default:
		return fmt.Sprintf("%d specialists found", n)
	}
}
