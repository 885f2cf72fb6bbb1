package widgets

import (
	"context"

	"github.com/doeshing/tams-go/internal/domain"
)

// Submission is a reserved, ready-to-send widget request.
type Submission struct {
	run func(ctx context.Context) domain.Notice
}

// Send performs the request and returns the user-facing notice.
func (s Submission) Send(ctx context.Context) domain.Notice {
	if s.run == nil {
		return domain.Notice{}
	}
	return s.run(ctx)
}

// Widget is the common surface of every feature form.
type Widget interface {
	Prepare(domain.Identity) (Submission, error)
	Busy() bool
}

// Submit prepares and sends in one step.
func Submit(ctx context.Context, w Widget, id domain.Identity) (domain.Notice, error) {
	sub, err := w.Prepare(id)
	if err != nil {
		return domain.Notice{}, err
	}
	return sub.Send(ctx), nil
}

func receiptNotice(out domain.Outcome[domain.ActionReceipt], fallback string) domain.Notice {
	if f, failed := out.Failure(); failed {
		return domain.FailureNotice(f)
	}
	if msg := out.Value().Message; msg != "" {
		return domain.SuccessNotice(msg)
	}
	return domain.SuccessNotice(fallback)
}
