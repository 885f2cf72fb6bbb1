package domain

// Config mirrors ~/.tams/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	API                 APISettings     `yaml:"api"`
	Logging             LoggingSettings `yaml:"logging"`
	History             HistorySettings `yaml:"history"`
}

// APISettings locates the portal backend.
type APISettings struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// LoggingSettings controls the structured logger.
type LoggingSettings struct {
	Level string `yaml:"level"`
}

// HistorySettings controls the request journal.
type HistorySettings struct {
	Enabled       bool   `yaml:"enabled"`
	Path          string `yaml:"path"`
	RetentionDays int    `yaml:"retention_days"`
}
