package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/doeshing/tams-go/internal/app"
	"github.com/doeshing/tams-go/internal/infrastructure/cli/commands"
	"github.com/doeshing/tams-go/internal/infrastructure/cli/helpers"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// NewRootCmd wires the cobra root command. The returned container must be closed
// once the command has run.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, *app.Container, error) {
	container, err := app.BuildContainer(ctx, app.Options{Verbose: opts.Verbose, ConfigPath: opts.ConfigPath})
	if err != nil {
		return nil, nil, err
	}
	container.Prompter = NewPrompter(nil, nil)

	root := &cobra.Command{
		Use:   "tams",
		Short: "TAMS - telehealth portal client",
		Long:  "tams signs patients and doctors in to the telehealth portal and drives their dashboard widgets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		commands.NewHealthCommand(container),
		commands.NewLoginCommand(container),
		commands.NewRegisterCommand(container),
		commands.NewVitalsCommand(container),
		commands.NewSymptomsCommand(container),
		commands.NewSpecialistsCommand(container),
		commands.NewPrescribeCommand(container),
		commands.NewInteractiveCommand(container),
		commands.NewHistoryCommand(container),
		commands.NewConfigCommand(container),
		commands.NewDiagnoseCommand(container),
		commands.NewVersionCommand(),
	)
	return root, container, nil
}

// AlreadyReported reports whether err was shown to the user by the command itself.
func AlreadyReported(err error) bool {
	return errors.Is(err, helpers.ErrFailed)
}
