package diagnostics

import (
	"context"
	"fmt"
	"os"

	appconfig "github.com/doeshing/tams-go/internal/application/config"
	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Gateway        ports.Gateway
	History        ports.HistoryRepository
}

// Run executes checks and returns a report. The error is only set when the
// configuration itself cannot be loaded.
func (s *Service) Run(ctx context.Context) (domain.DiagnosticReport, error) {
	var checks []domain.DiagnosticCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.DiagnosticReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))

	if err := appconfig.Validate(cfg); err != nil {
		checks = append(checks, fail("Config values", err.Error()))
	} else {
		checks = append(checks, ok("Config values", fmt.Sprintf("portal %s, timeout %s", cfg.APIBaseURL(), cfg.RequestTimeout())))
	}

	checks = append(checks, s.historyCheck(cfg))
	checks = append(checks, s.backendCheck(ctx, cfg))
	checks = append(checks, credentialsCheck())

	return domain.DiagnosticReport{Checks: checks}, nil
}

func (s *Service) historyCheck(cfg domain.Config) domain.DiagnosticCheck {
	if !cfg.History.Enabled {
		return warn("Request journal", "disabled")
	}
	if s.History == nil {
		return warn("Request journal", "store not initialized")
	}
	if _, err := s.History.Records(1); err != nil {
		return fail("Request journal", fmt.Sprintf("%s unreadable: %v", s.History.Path(), err))
	}
	if degraded, isDegradable := s.History.(interface{ Degraded() bool }); isDegradable && degraded.Degraded() {
		return warn("Request journal", fmt.Sprintf("sqlite unavailable, using %s", s.History.Path()))
	}
	return ok("Request journal", s.History.Path())
}

func (s *Service) backendCheck(ctx context.Context, cfg domain.Config) domain.DiagnosticCheck {
	if s.Gateway == nil {
		return warn("Portal backend", "gateway not initialized")
	}
	out := s.Gateway.ProbeHealth(ctx)
	if f, failed := out.Failure(); failed {
		return fail("Portal backend", fmt.Sprintf("%s is %s", cfg.APIBaseURL(), f.Message))
	}
	status := out.Value()
	details := fmt.Sprintf("%s reports %s", cfg.APIBaseURL(), status.Status)
	if status.Region != "" {
		details += " (" + status.Region + ")"
	}
	return ok("Portal backend", details)
}

func credentialsCheck() domain.DiagnosticCheck {
	if os.Getenv("TAMS_USERNAME") == "" {
		return warn("Credentials", "TAMS_USERNAME not set; one-shot commands need --username")
	}
	if os.Getenv("TAMS_PASSWORD") == "" {
		return ok("Credentials", "username from environment, password will be prompted")
	}
	return ok("Credentials", "username and password from environment")
}

func ok(name, details string) domain.DiagnosticCheck {
	return domain.DiagnosticCheck{Name: name, Status: domain.CheckOK, Details: details}
}

func warn(name, details string) domain.DiagnosticCheck {
	return domain.DiagnosticCheck{Name: name, Status: domain.CheckWarn, Details: details}
}

func fail(name, details string) domain.DiagnosticCheck {
	return domain.DiagnosticCheck{Name: name, Status: domain.CheckError, Details: details}
}
