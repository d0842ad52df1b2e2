package fan

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Get/Set the current speed level (0..5) of a fan",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		fan, err := getFan(fanId)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("level must be an integer in (0..5): %s", args[0])
			}
			if err = fan.SetLevel(level); err != nil {
				return err
			}
		}

		level, err := fan.GetLevel()
		if err != nil {
			return err
		}

		fmt.Printf("%d", level)
		return nil
	},
}

func init() {
	Command.AddCommand(levelCmd)
}
