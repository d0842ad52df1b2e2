package fan

import (
	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/control"
	"github.com/bosgame-linux/fanctl/internal/persistence"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Measure the RPM of a fan at each level and store it",
	Long: `Steps the fan through levels 0..5, measures the averaged RPM at each
level and stores the result in the database. Takes about a minute.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fan, err := getFan(fanId)
		if err != nil {
			return err
		}

		dbPath := configuration.CurrentConfig.DbPath
		ui.Info("Using persistence at: %s", dbPath)

		p := persistence.NewPersistence(dbPath)
		if err := p.Init(); err != nil {
			return err
		}

		ui.Info("Deleting existing data for fan '%s'...", fan.GetId())
		if err := p.DeleteFanRpmData(fan.GetId()); err != nil {
			return err
		}

		ui.Info("Measuring RPM curve of fan '%s'...", fan.GetId())
		return control.MeasureRpmCurve(cmd.Context(), fan, p)
	},
}

func init() {
	Command.AddCommand(initCmd)
}
