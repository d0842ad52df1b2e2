package curve

import (
	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/ec"
	"github.com/bosgame-linux/fanctl/internal/fans"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Write the configured curve tables to all fans",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configuration.DetectAndReadConfigFile()
		if configPath != "" {
			ui.Info("Using configuration file at: %s", configPath)
		}
		if err := configuration.LoadConfig(); err != nil {
			return err
		}
		if err := configuration.Validate(); err != nil {
			return err
		}

		config := &configuration.CurrentConfig

		store := ec.NewStore(ec.DefaultSysfsPath)
		if !store.Available() {
			return ec.ErrDriverNotLoaded
		}

		for _, fan := range fans.NewFans(store) {
			if !fan.Present() {
				ui.Warning("Fan %s not present, skipping", fan.GetId())
				continue
			}
			if err := fan.SetCurves(config.RampupCurve, config.RampdownCurve); err != nil {
				ui.Error("Unable to set curves of %s: %v", fan.GetId(), err)
				continue
			}
			ui.Info("Curves applied to %s", fan.GetId())
		}

		return nil
	},
}

func init() {
	Command.AddCommand(applyCmd)
}
