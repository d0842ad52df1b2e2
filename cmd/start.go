package cmd

import (
	"bytes"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/control"
	"github.com/bosgame-linux/fanctl/internal/ec"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Apply the configuration to the EC (one full activation)",
	Long: `Waits for the EC driver, relaxes attribute permissions, then writes
the configured power mode, fan mode and curve tables. Individual
missing or failing endpoints are reported but do not abort the rest.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		if err := loadAndValidateConfig(); err != nil {
			ui.Error("Config validation error: %s", err.Error())
			os.Exit(1)
		}

		ctx, cancel := signalContext()
		defer cancel()

		store := ec.NewStore(ec.DefaultSysfsPath)
		controller := control.NewController(store)

		report, err := controller.Activate(ctx, &configuration.CurrentConfig)
		if err != nil {
			ui.Error("Activation failed: %v", err)
			os.Exit(1)
		}

		printActivationReport(report)

		if !report.Success() {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}

// signalContext returns a context that is cancelled on SIGINT/SIGTERM,
// so the driver wait can be interrupted.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	return ctx, cancel
}

func printActivationReport(report *control.ActivationReport) {
	rows := [][]string{
		{"power mode", resultText(report.PowerMode)},
	}
	for _, id := range []string{"fan1", "fan2", "fan3"} {
		if result, ok := report.Fans[id]; ok {
			rows = append(rows, []string{id, resultText(result)})
		}
	}

	tab := table.Table{
		Headers: []string{"Endpoint", "Result"},
		Rows:    rows,
	}
	var buf bytes.Buffer
	if err := tab.WriteTable(&buf, tableConfig()); err != nil {
		ui.Fatal("Error printing table: %v", err)
	}
	ui.Printfln(buf.String())
}

func resultText(result control.EndpointResult) string {
	if result.Err != nil {
		return string(result.Result) + " (" + result.Err.Error() + ")"
	}
	return string(result.Result)
}
