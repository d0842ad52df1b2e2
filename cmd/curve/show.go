package curve

import (
	"bytes"

	"github.com/bosgame-linux/fanctl/cmd/global"
	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/curves"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configured hysteresis curves to console",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		configPath := configuration.DetectAndReadConfigFile()
		if configPath != "" {
			ui.Info("Using configuration file at: %s", configPath)
		}
		if err = configuration.LoadConfig(); err != nil {
			return err
		}
		if err = configuration.Validate(); err != nil {
			ui.Fatal(err.Error())
		}

		config := &configuration.CurrentConfig

		tab := table.Table{
			Headers: []string{"Curve", "Thresholds (level 1..5)"},
			Rows: [][]string{
				{"rampup", config.RampupCurve.String()},
				{"rampdown", config.RampdownCurve.String()},
			},
		}
		var buf bytes.Buffer
		tableErr := tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if tableErr != nil {
			ui.Fatal("Error printing table: %v", tableErr)
		}
		ui.Printfln(buf.String())

		ui.Printfln(plotCurve(config.RampupCurve, config.RampdownCurve))
		return nil
	},
}

// plotCurve renders the level a rising and a falling temperature sweep
// would produce, which makes the hysteresis band visible.
func plotCurve(rampup configuration.FanCurve, rampdown configuration.FanCurve) string {
	start := rampdown[0] - 10
	stop := rampup[configuration.CurvePoints-1] + 10

	var rising []float64
	level := curves.MinLevel
	for temp := start; temp <= stop; temp++ {
		level = curves.Evaluate(temp, level, rampup, rampdown)
		rising = append(rising, float64(level))
	}

	var falling []float64
	level = curves.MaxLevel
	for temp := stop; temp >= start; temp-- {
		level = curves.Evaluate(temp, level, rampup, rampdown)
		falling = append(falling, float64(level))
	}
	// reverse so both series share the temperature axis
	for i, j := 0, len(falling)-1; i < j; i, j = i+1, j-1 {
		falling[i], falling[j] = falling[j], falling[i]
	}

	caption := "Level / °C (rising and falling sweep)"
	return asciigraph.PlotMany(
		[][]float64{rising, falling},
		asciigraph.Height(10),
		asciigraph.Width(100),
		asciigraph.Caption(caption),
	)
}

func init() {
	Command.AddCommand(showCmd)
}
