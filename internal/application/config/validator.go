package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/doeshing/tams-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateAPI(cfg.API); err != nil {
		return err
	}
	if err := validateLogging(cfg.Logging); err != nil {
		return err
	}
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	return nil
}

func validateAPI(api domain.APISettings) error {
	raw := strings.TrimSpace(api.BaseURL)
	if raw == "" {
		return fmt.Errorf("api.base_url must be set")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("api.base_url invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("api.base_url must include a host")
	}

	if api.Timeout == "" {
		return nil
	}
	d, err := time.ParseDuration(api.Timeout)
	if err != nil {
		return fmt.Errorf("api.timeout invalid: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("api.timeout must be > 0")
	}
	return nil
}

func validateLogging(logging domain.LoggingSettings) error {
	if logging.Level == "" {
		return nil
	}
	if _, err := zapcore.ParseLevel(logging.Level); err != nil {
		return fmt.Errorf("logging.level invalid: %w", err)
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	if history.RetentionDays < 0 {
		return fmt.Errorf("history.retention_days must be >= 0")
	}
	if history.Enabled && strings.TrimSpace(history.Path) == "" {
		return fmt.Errorf("history.path must be set when history is enabled")
	}
	return nil
}
