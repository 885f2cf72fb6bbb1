package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/tams-go/internal/app"
	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/infrastructure/cli/helpers"
	"github.com/doeshing/tams-go/internal/session"
	"github.com/doeshing/tams-go/internal/view"
)

// NewLoginCommand signs in and shows the dashboard the server-confirmed role selects.
func NewLoginCommand(container *app.Container) *cobra.Command {
	var creds helpers.CredentialFlags

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and show your dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, password, err := creds.Resolve(container.Prompter)
			if err != nil {
				return err
			}

			out := helpers.NewOutput(cmd.OutOrStdout())
			state, notice := signIn(cmd, container, username, password)
			if !notice.Empty() {
				out.Notice(notice)
				return helpers.ErrFailed
			}

			kind, err := view.Dispatch(state)
			if err != nil {
				return err
			}
			id, _ := session.Identity(state)
			out.Identity(id, kind)
			return nil
		},
	}
	creds.Bind(cmd)
	return cmd
}

// NewRegisterCommand creates a portal account. It never signs in.
func NewRegisterCommand(container *app.Container) *cobra.Command {
	var (
		creds helpers.CredentialFlags
		role  string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a portal account",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := domain.ParseRole(role)
			if err != nil {
				return err
			}
			username, password, err := creds.Resolve(container.Prompter)
			if err != nil {
				return err
			}

			notice := helpers.WithSpinner(cmd.ErrOrStderr(), LabelSending, func() domain.Notice {
				return helpers.SignUp(cmd.Context(), container.Gateway, username, password, parsed)
			})
			helpers.NewOutput(cmd.OutOrStdout()).Notice(notice)
			if !notice.Success {
				return helpers.ErrFailed
			}
			return nil
		},
	}
	creds.Bind(cmd)
	cmd.Flags().StringVar(&role, "role", string(domain.RolePatient), "Account role (patient|doctor)")
	return cmd
}

type signInResult struct {
	state  session.State
	notice domain.Notice
}

func signIn(cmd *cobra.Command, container *app.Container, username, password string) (session.State, domain.Notice) {
	res := helpers.WithSpinner(cmd.ErrOrStderr(), LabelSigningIn, func() signInResult {
		s, n := helpers.SignIn(cmd.Context(), container.Gateway, username, password)
		return signInResult{state: s, notice: n}
	})
	return res.state, res.notice
}
