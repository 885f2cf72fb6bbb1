package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/tams-go/assets"
	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/pkg/filesystem"
	"github.com/doeshing/tams-go/internal/ports"
)

// Environment variables recognised by the loader.
const (
	EnvConfigPath = "TAMS_CONFIG"
	EnvAPIURL     = "TAMS_API_URL"
	EnvTimeout    = "TAMS_TIMEOUT"
	EnvLogLevel   = "TAMS_LOG_LEVEL"
)

// FileLoader loads YAML configuration from ~/.tams/config.yaml (overridable via TAMS_CONFIG).
// A .env file in the working directory is applied before environment overrides are read.
type FileLoader struct {
	overridePath string
	dotenvPaths  []string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path, dotenvPaths: []string{".env"}}
}

// WithDotenv replaces the .env files consulted on Load.
func (l *FileLoader) WithDotenv(paths ...string) *FileLoader {
	l.dotenvPaths = paths
	return l
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	l.loadDotenv()
	cfg, err := l.Stored()
	if err != nil {
		return domain.Config{}, err
	}
	return applyEnv(cfg), nil
}

// Stored returns the file contents with defaults filled in but without
// environment overrides. Use it as the base for Save.
func (l *FileLoader) Stored() (domain.Config, error) {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, fmt.Errorf("create config dir: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
			return domain.Config{}, fmt.Errorf("write default config: %w", err)
		}
		return ExpandedDefaults(), nil
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return hydrateDefaults(cfg), nil
}

// Save writes cfg to the config file.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Backup copies the current config file next to itself and returns the copy's path.
func (l *FileLoader) Backup(now time.Time) (string, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := fmt.Sprintf("%s.%s.bak", path, now.Format("20060102T150405"))
	if err := os.WriteFile(backup, data, domain.SecureFilePermissions); err != nil {
		return "", err
	}
	return backup, nil
}

// Path returns the config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandHome(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandHome(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".tams", "config.yaml")
}

func (l *FileLoader) loadDotenv() {
	var present []string
	for _, p := range l.dotenvPaths {
		if _, err := os.Stat(p); err == nil {
			present = append(present, p)
		}
	}
	if len(present) > 0 {
		// godotenv never overrides variables already set in the process.
		_ = godotenv.Load(present...)
	}
}

func ensureConfigDir(path string) error {
	return filesystem.EnsureParent(path, domain.DirectoryPermissions)
}

// DefaultConfig is the configuration written on first run.
func DefaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{
			ConfigFormatVersion: "1",
			API: domain.APISettings{
				BaseURL: domain.DefaultAPIBaseURL,
				Timeout: domain.DefaultRequestTimeout.String(),
			},
			Logging: domain.LoggingSettings{Level: domain.DefaultLogLevel},
			History: domain.HistorySettings{
				Enabled:       true,
				Path:          "~/.tams/history.db",
				RetentionDays: domain.DefaultHistoryRetainDays,
			},
		}
	}
	return cfg
}

// ExpandedDefaults is DefaultConfig as Stored would return it.
func ExpandedDefaults() domain.Config {
	return hydrateDefaults(DefaultConfig())
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = domain.DefaultAPIBaseURL
	}
	if cfg.API.Timeout == "" {
		cfg.API.Timeout = domain.DefaultRequestTimeout.String()
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = domain.DefaultLogLevel
	}
	if cfg.History.Path == "" {
		cfg.History.Path = "~/.tams/history.db"
	}
	cfg.History.Path = filesystem.ExpandHome(cfg.History.Path)
	return cfg
}

func applyEnv(cfg domain.Config) domain.Config {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		cfg.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		cfg.API.Timeout = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
	cfg.History.Path = filesystem.ExpandHome(cfg.History.Path)
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
