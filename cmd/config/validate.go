package config

import (
	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configuration.DetectAndReadConfigFile()
		if configPath != "" {
			ui.Info("Using configuration file at: %s", configPath)
		} else {
			ui.Info("No config file found, validating defaults")
		}
		if err := configuration.LoadConfig(); err != nil {
			return err
		}
		if err := configuration.Validate(); err != nil {
			return err
		}

		ui.Info("Config looks good! :)")
		return nil
	},
}

func init() {
	Command.AddCommand(validateCmd)
}
