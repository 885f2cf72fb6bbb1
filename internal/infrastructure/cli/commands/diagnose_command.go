package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/tams-go/internal/app"
	"github.com/doeshing/tams-go/internal/infrastructure/cli/helpers"
)

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose",
		Short: "Check configuration, journal and backend reachability",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Diagnostics == nil {
				return errors.New(ErrDiagnosticsUnavailable)
			}
			out := helpers.NewOutput(cmd.OutOrStdout())
			report, err := container.Diagnostics.Run(cmd.Context())
			// Display the report even if loading failed part way.
			out.Report(report)
			if err != nil {
				return fmt.Errorf("diagnostics completed with errors: %w", err)
			}
			if report.Failed() {
				return helpers.ErrFailed
			}
			return nil
		},
	}
}
