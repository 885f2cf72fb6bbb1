package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/tams-go/internal/infrastructure/cli/helpers"
)

func TestNewRootCmdRegistersCommands(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TAMS_CONFIG", "")

	root, container, err := NewRootCmd(context.Background(), Options{ConfigPath: filepath.Join(home, "config.yaml")})
	require.NoError(t, err)
	defer container.Close()

	assert.NotNil(t, container.Prompter)
	for _, name := range []string{
		"health", "login", "register", "vitals", "symptoms", "specialists",
		"prescribe", "interactive", "history", "config", "diagnose", "version",
	} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestAlreadyReported(t *testing.T) {
	assert.True(t, AlreadyReported(helpers.ErrFailed))
	assert.True(t, AlreadyReported(fmt.Errorf("vitals: %w", helpers.ErrFailed)))
	assert.False(t, AlreadyReported(errors.New("boom")))
}
