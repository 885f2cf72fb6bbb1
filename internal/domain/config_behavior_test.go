package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/tams-go/internal/domain"
)

// TestConfig_RequestTimeout tests timeout parsing and fallback
func TestConfig_RequestTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
		want    time.Duration
	}{
		{name: "empty falls back to default", timeout: "", want: domain.DefaultRequestTimeout},
		{name: "valid duration", timeout: "2s", want: 2 * time.Second},
		{name: "garbage falls back to default", timeout: "soon", want: domain.DefaultRequestTimeout},
		{name: "negative falls back to default", timeout: "-1s", want: domain.DefaultRequestTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.Config{API: domain.APISettings{Timeout: tt.timeout}}
			assert.Equal(t, tt.want, cfg.RequestTimeout())
		})
	}
}

// TestConfig_APIBaseURL tests trailing slash handling
func TestConfig_APIBaseURL(t *testing.T) {
	cfg := domain.Config{API: domain.APISettings{BaseURL: "https://tams.example.com/ "}}
	assert.Equal(t, "https://tams.example.com", cfg.APIBaseURL())

	empty := domain.Config{}
	assert.Equal(t, domain.DefaultAPIBaseURL, empty.APIBaseURL())
}

// TestConfig_LogLevel tests default and normalisation
func TestConfig_LogLevel(t *testing.T) {
	assert.Equal(t, domain.DefaultLogLevel, (&domain.Config{}).LogLevel())
	cfg := domain.Config{Logging: domain.LoggingSettings{Level: "DEBUG"}}
	assert.Equal(t, "debug", cfg.LogLevel())
}

// TestConfig_Retention tests cutoff computation and updates
func TestConfig_Retention(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	cfg := domain.Config{}
	assert.True(t, cfg.RetentionCutoff(now).IsZero())

	require.NoError(t, cfg.SetRetentionDays(7))
	assert.Equal(t, now.AddDate(0, 0, -7), cfg.RetentionCutoff(now))

	assert.Error(t, cfg.SetRetentionDays(-1))
	assert.Equal(t, 7, cfg.History.RetentionDays)
}
