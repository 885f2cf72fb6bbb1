package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/tams-go/internal/app"
	configapp "github.com/doeshing/tams-go/internal/application/config"
	"github.com/doeshing/tams-go/internal/infrastructure/cli/helpers"
	configinfra "github.com/doeshing/tams-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect tams configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, container)
		},
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration (file plus environment)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfiguration(cmd, container)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file location",
			RunE: func(cmd *cobra.Command, args []string) error {
				loader, err := configLoader(container)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), loader.Path())
				return nil
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := container.ConfigProvider.Load(cmd.Context())
				if err != nil {
					return err
				}
				if err := configapp.Validate(cfg); err != nil {
					return fmt.Errorf("configuration invalid: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), MsgConfigurationValid)
				return nil
			},
		},
		&cobra.Command{
			Use:   "diff",
			Short: "Show differences from the default configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfigDiff(cmd.OutOrStdout(), container)
			},
		},
		newConfigResetCommand(container),
	)

	return configCmd
}

func newConfigResetCommand(container *app.Container) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Back up the config file and restore defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !helpers.ConfirmDestructive(cmd.ErrOrStderr(), cmd.InOrStdin(), "Replace the config file with defaults?", assumeYes) {
				fmt.Fprintln(cmd.OutOrStdout(), MsgAborted)
				return nil
			}
			return resetConfiguration(cmd.OutOrStdout(), container, time.Now())
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func configLoader(container *app.Container) (*configinfra.FileLoader, error) {
	if container.ConfigLoader == nil {
		return nil, errors.New(ErrConfigLoaderUnavailable)
	}
	return container.ConfigLoader, nil
}

func showConfiguration(cmd *cobra.Command, container *app.Container) error {
	cfg, err := container.ConfigProvider.Load(cmd.Context())
	if err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(raw)
	return err
}

func showConfigDiff(out io.Writer, container *app.Container) error {
	loader, err := configLoader(container)
	if err != nil {
		return err
	}
	current, err := loader.Stored()
	if err != nil {
		return err
	}
	if diff := cmp.Diff(configinfra.ExpandedDefaults(), current); diff != "" {
		fmt.Fprintln(out, diff)
		return nil
	}
	fmt.Fprintln(out, MsgNoDifferencesFromDefault)
	return nil
}

func resetConfiguration(out io.Writer, container *app.Container, now time.Time) error {
	loader, err := configLoader(container)
	if err != nil {
		return err
	}
	backup, err := loader.Backup(now)
	if err != nil {
		return fmt.Errorf("failed to back up configuration: %w", err)
	}
	if err := loader.Save(configinfra.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to write defaults: %w", err)
	}
	fmt.Fprintf(out, "Configuration reset. Previous file saved to %s\n", backup)
	return nil
}
