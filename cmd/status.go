package cmd

import (
	"bytes"
	"strconv"

	"github.com/bosgame-linux/fanctl/cmd/global"
	"github.com/bosgame-linux/fanctl/internal/control"
	"github.com/bosgame-linux/fanctl/internal/ec"
	"github.com/bosgame-linux/fanctl/internal/sensors"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report driver presence, temperatures, fan state and power mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		store := ec.NewStore(ec.DefaultSysfsPath)
		controller := control.NewController(store)

		report := controller.Status()
		if !report.Loaded {
			ui.Warning("EC driver not loaded (missing %s)", store.Root)
			return nil
		}

		ui.Printfln("Power mode: %s", report.PowerMode)
		ui.Printfln("EC temperature: %d°C", report.Temperature)
		ui.Printfln("")

		printFanTable(report)
		printSensorTable(store)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func tableConfig() *table.Config {
	return &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	}
}

func printFanTable(report *control.StatusReport) {
	var rows [][]string
	for _, fan := range report.Fans {
		if !fan.Present {
			rows = append(rows, []string{fan.Id, fan.Label, "-", "-", "not present"})
			continue
		}
		rows = append(rows, []string{
			fan.Id, fan.Label, strconv.Itoa(fan.Rpm), strconv.Itoa(fan.Level), fan.Mode,
		})
	}

	tab := table.Table{
		Headers: []string{"Fan", "Label", "RPM", "Level", "Mode"},
		Rows:    rows,
	}
	var buf bytes.Buffer
	if err := tab.WriteTable(&buf, tableConfig()); err != nil {
		ui.Fatal("Error printing table: %v", err)
	}
	ui.Printfln(buf.String())
}

func printSensorTable(store *ec.Store) {
	var rows [][]string
	for _, sensor := range sensors.NewSensors(store) {
		value, err := sensor.GetValue()
		valueText := "N/A"
		if err == nil {
			valueText = strconv.Itoa(int(value)) + "°C"
		}
		rows = append(rows, []string{sensor.GetId(), sensor.GetLabel(), valueText})
	}

	tab := table.Table{
		Headers: []string{"Sensor", "Label", "Temp"},
		Rows:    rows,
	}
	var buf bytes.Buffer
	if err := tab.WriteTable(&buf, tableConfig()); err != nil {
		ui.Fatal("Error printing table: %v", err)
	}
	ui.Printfln(buf.String())
}
