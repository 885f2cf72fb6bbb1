package helpers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/ports"
	"github.com/doeshing/tams-go/internal/session"
)

// Environment variables consulted when sign-in flags are absent.
const (
	EnvUsername = "TAMS_USERNAME"
	EnvPassword = "TAMS_PASSWORD"
)

// ErrFailed marks a command whose failure has already been shown to the user.
var ErrFailed = errors.New("command failed")

// CredentialFlags are the sign-in flags shared by every gated command.
type CredentialFlags struct {
	Username string
	Password string
}

// Bind registers --username and --password on cmd.
func (f *CredentialFlags) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Username, "username", "u", "", "Portal username (default $"+EnvUsername+")")
	cmd.Flags().StringVar(&f.Password, "password", "", "Portal password (default $"+EnvPassword+", prompted when absent)")
}

// Resolve fills missing fields from the environment, then from the prompter.
func (f CredentialFlags) Resolve(prompter ports.CredentialPrompter) (username, password string, err error) {
	username = firstNonEmpty(f.Username, os.Getenv(EnvUsername))
	password = f.Password
	if password == "" {
		password = os.Getenv(EnvPassword)
	}

	if username == "" {
		if prompter == nil {
			return "", "", fmt.Errorf("--username or $%s is required", EnvUsername)
		}
		if username, err = prompter.Ask("Username"); err != nil {
			return "", "", fmt.Errorf("read username: %w", err)
		}
	}
	if password == "" {
		if prompter == nil {
			return "", "", fmt.Errorf("--password or $%s is required", EnvPassword)
		}
		if password, err = prompter.Secret("Password"); err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
	}
	return username, password, nil
}

// SignIn runs the login flow through the session state machine. On failure the
// returned notice explains why and the state stays anonymous.
func SignIn(ctx context.Context, gw ports.Gateway, username, password string) (session.State, domain.Notice) {
	s := session.Reduce(session.Initial(), session.EditUsername{Value: username})
	s = session.Reduce(s, session.EditPassword{Value: password})
	s = session.Run(ctx, gw, s)
	if anon, ok := s.(session.Anonymous); ok {
		return s, anon.Message
	}
	return s, domain.Notice{}
}

// SignUp runs the registration flow and returns the resulting notice.
func SignUp(ctx context.Context, gw ports.Gateway, username, password string, role domain.Role) domain.Notice {
	s := session.Reduce(session.Initial(), session.ToggleMode{})
	s = session.Reduce(s, session.EditUsername{Value: username})
	s = session.Reduce(s, session.EditPassword{Value: password})
	s = session.Reduce(s, session.SelectRole{Role: role})
	s = session.Run(ctx, gw, s)
	if anon, ok := s.(session.Anonymous); ok {
		return anon.Message
	}
	return domain.Notice{}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
