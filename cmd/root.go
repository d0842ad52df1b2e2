package cmd

import (
	"fmt"
	"os"

	"github.com/bosgame-linux/fanctl/cmd/config"
	"github.com/bosgame-linux/fanctl/cmd/curve"
	"github.com/bosgame-linux/fanctl/cmd/fan"
	"github.com/bosgame-linux/fanctl/cmd/global"
	"github.com/bosgame-linux/fanctl/cmd/power"
	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fanctl",
	Short: "Fan and power control for Bosgame M5 / Sixunited AXB35 boards.",
	Long: `fanctl drives the fan subsystem and APU power mode exposed by the
ec_su_axb35 EC driver: three fans with auto/fixed/curve modes,
hysteresis fan curves and a quiet/balanced/performance power profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is /etc/fanctl/fanctl.env)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(config.Command)
	rootCmd.AddCommand(fan.Command)
	rootCmd.AddCommand(curve.Command)
	rootCmd.AddCommand(power.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// loadAndValidateConfig reads the config file (defaults apply when it
// is absent), decodes and validates it.
func loadAndValidateConfig() error {
	configPath := configuration.DetectAndReadConfigFile()
	if configPath != "" {
		ui.Info("Using configuration file at: %s", configPath)
	}
	if err := configuration.LoadConfig(); err != nil {
		return err
	}
	return configuration.Validate()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
