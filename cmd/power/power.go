package power

import (
	"fmt"
	"strings"

	"github.com/bosgame-linux/fanctl/internal/ec"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "power",
	Short: "Get/Set the APU power mode",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		store := ec.NewStore(ec.DefaultSysfsPath)
		if !store.Available() {
			return ec.ErrDriverNotLoaded
		}

		if len(args) > 0 {
			mode := strings.ToLower(args[0])
			switch mode {
			case "quiet", "balanced", "performance":
			default:
				return fmt.Errorf("unknown power mode: %s, must be one of: 'quiet', 'balanced', 'performance'", args[0])
			}

			if err := store.WriteString(ec.PowerModeEndpoint, mode); err != nil {
				return err
			}
		}

		mode, err := store.ReadString(ec.PowerModeEndpoint)
		if err != nil {
			return err
		}

		fmt.Printf("%s", mode)
		return nil
	},
}
