package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/bosgame-linux/fanctl/internal/util"
	"github.com/spf13/cobra"
)

var targetPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(targetPath); err == nil {
			return fmt.Errorf("config file already exists: %s", targetPath)
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			return err
		}

		if err := util.WriteFileAtomic(defaultConfigText(), targetPath); err != nil {
			return err
		}

		ui.Info("Wrote default config to %s", targetPath)
		return nil
	},
}

func defaultConfigText() string {
	return fmt.Sprintf(`# fanctl configuration
# Flat KEY=value format.

# APU power profile: quiet | balanced | performance
POWER_MODE=balanced

# Fan mode applied to all fans: auto | fixed | curve
FAN_MODE=auto

# Temperature thresholds for levels 1..5, comma separated.
# RAMPDOWN values should stay below their RAMPUP counterparts,
# the gap between them is the hysteresis band.
RAMPUP_CURVE=%s
RAMPDOWN_CURVE=%s

# Sensor that drives the software curve loop: ec | cpu | gpu | nvme1 | nvme2 | wifi | ethernet
#SENSOR=ec
#TICK_INTERVAL=2s

# Optional APU tuning, handed to ryzenadj as-is.
#RYZENADJ_PATH=/usr/local/bin/ryzenadj
#STAPM_LIMIT=
#FAST_LIMIT=
#SLOW_LIMIT=
#TEMP_LIMIT=
#CPU_CO=
#GPU_CO=

# amdgpu performance level (e.g. low, auto, high), written best-effort.
#GPU_LEVEL=

#METRICS_ENABLED=false
#METRICS_PORT=9045
#API_ENABLED=false
#API_PORT=9046
`, configuration.DefaultRampupCurve.String(), configuration.DefaultRampdownCurve.String())
}

func init() {
	initCmd.Flags().StringVarP(&targetPath, "output", "o", "/etc/fanctl/fanctl.env", "Path of the config file to write")
	Command.AddCommand(initCmd)
}
