// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the session state machine and the widgets to remain
// independent of the HTTP client, the config file, and the journal storage.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Gateway, ConfigProvider)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"
	"time"

	"github.com/doeshing/tams-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.tams/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Gateway talks to the portal API. Every method returns a normalized Outcome and
// never an error: transport, protocol and application failures are all folded
// into domain.Failure.
type Gateway interface {
	ProbeHealth(ctx context.Context) domain.Outcome[domain.HealthStatus]
	Login(ctx context.Context, creds domain.Credentials) domain.Outcome[domain.Identity]
	Register(ctx context.Context, reg domain.Registration) domain.Outcome[struct{}]
	SubmitAction(ctx context.Context, endpoint string, payload any) domain.Outcome[domain.ActionReceipt]
	SearchSpecialists(ctx context.Context, query domain.SpecialistQuery) domain.Outcome[[]domain.Specialist]
}

// CallRecorder receives one record per completed gateway call.
// Recording is best-effort and must not affect the call's outcome.
type CallRecorder interface {
	Record(domain.CallRecord) error
}

// HistoryRepository persists and queries the request journal.
type HistoryRepository interface {
	CallRecorder
	Records(limit int) ([]domain.CallRecord, error)
	Clear() error
	Prune(before time.Time) (int, error)
	ExportJSON(dest string) error
	Path() string
}

// CredentialPrompter asks the user for missing sign-in fields.
type CredentialPrompter interface {
	Ask(label string) (string, error)
	// Secret reads a value without echoing it.
	Secret(label string) (string, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
