package fan

import (
	"fmt"
	"strings"

	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Get/Set the current mode of a fan",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		fan, err := getFan(fanId)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			var mode configuration.FanMode
			switch strings.ToLower(args[0]) {
			case "auto":
				mode = configuration.FanModeAuto
			case "fixed":
				mode = configuration.FanModeFixed
			case "curve":
				mode = configuration.FanModeCurve
			default:
				return fmt.Errorf("unknown mode: %s, must be one of: 'auto', 'fixed', 'curve'", args[0])
			}

			if err = fan.SetMode(mode); err != nil {
				return err
			}
		}

		mode, err := fan.GetMode()
		if err != nil {
			return err
		}

		fmt.Printf("%s", mode)
		return nil
	},
}

func init() {
	Command.AddCommand(modeCmd)
}
