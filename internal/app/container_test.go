package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/tams-go/internal/infrastructure/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TAMS_CONFIG", "")
	t.Setenv("TAMS_API_URL", "")
	t.Setenv("TAMS_TIMEOUT", "")
	t.Setenv("TAMS_LOG_LEVEL", "")
	return filepath.Join(home, ".tams", "config.yaml")
}

func TestBuildContainerWiresJournal(t *testing.T) {
	path := isolate(t)
	t.Setenv("TAMS_API_URL", "http://portal.test:5000/")

	c, err := BuildContainer(context.Background(), Options{ConfigPath: path})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "http://portal.test:5000", c.Config.APIBaseURL())
	require.NotNil(t, c.HistoryStore)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "history.db"), c.HistoryStore.Path())
	assert.NotNil(t, c.Diagnostics)
	assert.Equal(t, path, c.ConfigLoader.Path())
}

func TestBuildContainerWithoutJournal(t *testing.T) {
	path := isolate(t)
	loader := config.NewFileLoader(path)
	cfg := config.DefaultConfig()
	cfg.History.Enabled = false
	require.NoError(t, loader.Save(cfg))

	c, err := BuildContainer(context.Background(), Options{ConfigPath: path})
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.HistoryStore)
	assert.Nil(t, c.Diagnostics.History)
}

func TestBuildContainerToleratesBadLogLevel(t *testing.T) {
	path := isolate(t)
	t.Setenv("TAMS_LOG_LEVEL", "chatty")

	c, err := BuildContainer(context.Background(), Options{ConfigPath: path})
	require.NoError(t, err)
	assert.NoError(t, c.Close())
}

func TestNewWidgetsAreIndependent(t *testing.T) {
	path := isolate(t)
	c, err := BuildContainer(context.Background(), Options{ConfigPath: path})
	require.NoError(t, err)
	defer c.Close()

	a, b := c.NewWidgets(), c.NewWidgets()
	a.Vitals.Draft.HeartRate = "72"
	assert.Empty(t, b.Vitals.Draft.HeartRate)
	assert.NotSame(t, a.Specialists, b.Specialists)
}
