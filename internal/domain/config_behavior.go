package domain

import (
	"fmt"
	"strings"
	"time"
)

// RequestTimeout parses the configured API timeout, falling back to the default.
func (c *Config) RequestTimeout() time.Duration {
	if c.API.Timeout == "" {
		return DefaultRequestTimeout
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return DefaultRequestTimeout
	}
	return d
}

// APIBaseURL returns the base URL without a trailing slash.
func (c *Config) APIBaseURL() string {
	base := strings.TrimSpace(c.API.BaseURL)
	if base == "" {
		base = DefaultAPIBaseURL
	}
	return strings.TrimRight(base, "/")
}

// LogLevel returns the configured level or the default.
func (c *Config) LogLevel() string {
	if c.Logging.Level == "" {
		return DefaultLogLevel
	}
	return strings.ToLower(c.Logging.Level)
}

// RetentionCutoff returns the oldest timestamp kept by the journal, or the zero
// time when retention is disabled.
func (c *Config) RetentionCutoff(now time.Time) time.Time {
	if c.History.RetentionDays <= 0 {
		return time.Time{}
	}
	return now.AddDate(0, 0, -c.History.RetentionDays)
}

// SetRetentionDays updates the journal retention policy.
func (c *Config) SetRetentionDays(days int) error {
	if days < 0 {
		return fmt.Errorf("retention days must be >= 0, got %d", days)
	}
	c.History.RetentionDays = days
	return nil
}
