package domain

import "fmt"

// FailureKind classifies why a portal call did not succeed.
type FailureKind string

const (
	// FailureOffline covers transport errors and timeouts.
	FailureOffline FailureKind = "offline"
	// FailureProtocol covers non-JSON or unexpectedly shaped responses.
	FailureProtocol FailureKind = "protocol"
	// FailureRejected is a well-formed JSON error from the API.
	FailureRejected FailureKind = "rejected"
	// FailureUnhandled is anything not classified above.
	FailureUnhandled FailureKind = "unhandled"
)

// Failure is the failed branch of an Outcome.
type Failure struct {
	Kind       FailureKind
	Message    string
	StatusCode int
}

func (f Failure) Error() string {
	if f.StatusCode > 0 {
		return fmt.Sprintf("%s (%s, status %d)", f.Message, f.Kind, f.StatusCode)
	}
	return fmt.Sprintf("%s (%s)", f.Message, f.Kind)
}

// Outcome is the normalized result of one portal call.
type Outcome[T any] struct {
	value   T
	failure *Failure
}

// Succeed wraps a successful payload.
func Succeed[T any](value T) Outcome[T] {
	return Outcome[T]{value: value}
}

// Fail wraps a failure.
func Fail[T any](f Failure) Outcome[T] {
	return Outcome[T]{failure: &f}
}

// OK reports whether the outcome is a success.
func (o Outcome[T]) OK() bool {
	return o.failure == nil
}

// Value returns the success payload (zero value on failure).
func (o Outcome[T]) Value() T {
	return o.value
}

// Failure returns the failure and true when the outcome failed.
func (o Outcome[T]) Failure() (Failure, bool) {
	if o.failure == nil {
		return Failure{}, false
	}
	return *o.failure, true
}

// Err returns the failure as an error, or nil on success.
func (o Outcome[T]) Err() error {
	if o.failure == nil {
		return nil
	}
	return *o.failure
}

// Notice is the single transient message slot shown to the user.
type Notice struct {
	Success bool
	Text    string
}

// Empty reports whether there is nothing to show.
func (n Notice) Empty() bool {
	return n.Text == ""
}

// SuccessNotice builds a success message.
func SuccessNotice(text string) Notice {
	return Notice{Success: true, Text: text}
}

// FailureNotice builds a failure message from a Failure.
func FailureNotice(f Failure) Notice {
	return Notice{Success: false, Text: f.Message}
}
