package cmd

import (
	"bytes"
	"strconv"

	"github.com/bosgame-linux/fanctl/internal/ec"
	"github.com/bosgame-linux/fanctl/internal/fans"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect EC fan channels",
	Long:  `Probes the EC attribute endpoints and prints the detected fan channels`,
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()

		store := ec.NewStore(ec.DefaultSysfsPath)
		if !store.Available() {
			ui.Warning("EC driver not loaded (missing %s)", store.Root)
			return
		}

		ui.Printfln("> %s", store.Root)

		var rows [][]string
		for _, fan := range fans.NewFans(store) {
			if !fan.Present() {
				continue
			}

			rpmText := "N/A"
			if rpm, err := fan.GetRpm(); err == nil {
				rpmText = strconv.Itoa(rpm)
			}

			levelText := "N/A"
			if level, err := fan.GetLevel(); err == nil {
				levelText = strconv.Itoa(level)
			}

			modeText := "N/A"
			if mode, err := fan.GetMode(); err == nil {
				modeText = string(mode)
			}

			rows = append(rows, []string{fan.GetId(), fan.GetLabel(), rpmText, levelText, modeText})
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
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
