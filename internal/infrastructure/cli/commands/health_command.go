package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/tams-go/internal/app"
	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/infrastructure/cli/helpers"
	"github.com/doeshing/tams-go/internal/session"
)

// NewHealthCommand probes the portal backend once.
func NewHealthCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the portal backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := helpers.NewOutput(cmd.OutOrStdout())
			probe := helpers.WithSpinner(cmd.ErrOrStderr(), LabelProbing, func() domain.Outcome[domain.HealthStatus] {
				return container.Gateway.ProbeHealth(cmd.Context())
			})

			health := session.HealthFromProbe(probe)
			var status domain.HealthStatus
			if probe.OK() {
				status = probe.Value()
			}
			out.Health(container.Config.APIBaseURL(), health, status)
			if health != domain.HealthHealthy {
				return helpers.ErrFailed
			}
			return nil
		},
	}
}
