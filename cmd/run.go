package cmd

import (
	"os"

	"github.com/bosgame-linux/fanctl/internal"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run activation and keep driving the fans as a daemon",
	Long: `Performs a full activation and stays resident: telemetry sensors are
polled continuously and, with FAN_MODE=curve, fan levels are driven in
software by the hysteresis curve instead of the EC's built-in curve
mode. Optionally serves prometheus metrics and a read-only REST API.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		if err := loadAndValidateConfig(); err != nil {
			ui.Error("Config validation error: %s", err.Error())
			os.Exit(1)
		}

		internal.RunDaemon()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("fan", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("ctl", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		ui.Printfln("fanctl")
	}
}
