package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/tams-go/internal/domain"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvLogLevel, "")
	return home
}

func TestLoadWritesDefaults(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "cfg", "config.yaml")

	cfg, err := NewFileLoader(path).WithDotenv().Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, "5s", cfg.API.Timeout)
	assert.Equal(t, filepath.Join(home, ".tams", "history.db"), cfg.History.Path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.SecureFilePermissions), info.Mode().Perm())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "# tams configuration")
}

func TestDefaultConfigMatchesDomainDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "1", cfg.ConfigFormatVersion)
	assert.Equal(t, domain.DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, domain.DefaultRequestTimeout.String(), cfg.API.Timeout)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Logging.Level)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, domain.DefaultHistoryRetainDays, cfg.History.RetentionDays)
}

func TestLoadReadsExistingFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "api:\n  base_url: https://portal.example.org/\n  timeout: 2s\nlogging:\n  level: debug\nhistory:\n  enabled: false\n  retention_days: 7\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := NewFileLoader(path).WithDotenv().Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.ConfigFormatVersion)
	assert.Equal(t, "https://portal.example.org", cfg.APIBaseURL())
	assert.Equal(t, "2s", cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, 7, cfg.History.RetentionDays)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unterminated"), 0o600))

	_, err := NewFileLoader(path).WithDotenv().Load(context.Background())
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvAPIURL, "http://10.0.0.5:5000")
	t.Setenv(EnvTimeout, "750ms")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := NewFileLoader(filepath.Join(t.TempDir(), "config.yaml")).WithDotenv().Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:5000", cfg.API.BaseURL)
	assert.Equal(t, "750ms", cfg.API.Timeout)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestDotenvFeedsOverrides(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TAMS_API_URL=http://dotenv.local:5000\n"), 0o600))
	// The variable must be absent (not just empty) for godotenv to set it.
	require.NoError(t, os.Unsetenv(EnvAPIURL))
	t.Cleanup(func() { _ = os.Unsetenv(EnvAPIURL) })

	cfg, err := NewFileLoader(filepath.Join(dir, "config.yaml")).WithDotenv(envFile).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv.local:5000", cfg.API.BaseURL)
}

func TestPathHonoursEnv(t *testing.T) {
	home := isolate(t)
	t.Setenv(EnvConfigPath, "~/alt/config.yaml")
	assert.Equal(t, filepath.Join(home, "alt", "config.yaml"), NewFileLoader("").Path())
}

func TestSaveDoesNotPersistEnvOverrides(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path).WithDotenv()
	t.Setenv(EnvAPIURL, "http://override:5000")

	stored, err := loader.Stored()
	require.NoError(t, err)
	require.NoError(t, stored.SetRetentionDays(3))
	require.NoError(t, loader.Save(stored))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "override")
	assert.Contains(t, string(raw), "retention_days: 3")

	loaded, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "http://override:5000", loaded.API.BaseURL)
	assert.Equal(t, 3, loaded.History.RetentionDays)
}

func TestBackupCopiesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path).WithDotenv()
	_, err := loader.Load(context.Background())
	require.NoError(t, err)

	backup, err := loader.Backup(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, path+".20260102T030405.bak", backup)
	assert.FileExists(t, backup)
}
