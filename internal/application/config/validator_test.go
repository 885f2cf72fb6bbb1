package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/tams-go/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		API:                 domain.APISettings{BaseURL: "http://localhost:5000", Timeout: "5s"},
		Logging:             domain.LoggingSettings{Level: "warn"},
		History:             domain.HistorySettings{Enabled: true, Path: "/tmp/history.db", RetentionDays: 30},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*domain.Config) {}},
		{name: "https", mutate: func(c *domain.Config) { c.API.BaseURL = "https://portal.example.org/" }},
		{name: "empty timeout", mutate: func(c *domain.Config) { c.API.Timeout = "" }},
		{name: "history disabled without path", mutate: func(c *domain.Config) { c.History = domain.HistorySettings{} }},
		{name: "missing url", mutate: func(c *domain.Config) { c.API.BaseURL = " " }, wantErr: "api.base_url must be set"},
		{name: "relative url", mutate: func(c *domain.Config) { c.API.BaseURL = "localhost:5000" }, wantErr: "http or https"},
		{name: "no host", mutate: func(c *domain.Config) { c.API.BaseURL = "http://" }, wantErr: "host"},
		{name: "bad timeout", mutate: func(c *domain.Config) { c.API.Timeout = "soon" }, wantErr: "api.timeout invalid"},
		{name: "zero timeout", mutate: func(c *domain.Config) { c.API.Timeout = "0s" }, wantErr: "api.timeout must be > 0"},
		{name: "bad level", mutate: func(c *domain.Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "negative retention", mutate: func(c *domain.Config) { c.History.RetentionDays = -1 }, wantErr: "retention_days"},
		{name: "enabled without path", mutate: func(c *domain.Config) { c.History.Path = "" }, wantErr: "history.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
