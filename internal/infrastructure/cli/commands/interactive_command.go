package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/tams-go/internal/app"
	"github.com/doeshing/tams-go/internal/infrastructure/tui"
)

// NewInteractiveCommand starts the full-screen client.
func NewInteractiveCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"ui"},
		Short:   "Open the interactive portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), tui.Deps{
				Gateway: container.Gateway,
				BaseURL: container.Config.APIBaseURL(),
				NewWidgets: container.NewWidgets,
			})
		},
	}
}
