package fan

import (
	"fmt"

	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/ec"
	"github.com/bosgame-linux/fanctl/internal/fans"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/spf13/cobra"
)

var fanId string

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&fanId,
		"id", "i",
		"",
		"Fan ID (fan1, fan2 or fan3)",
	)
	_ = Command.MarkPersistentFlagRequired("id")
}

func getFan(id string) (fans.Fan, error) {
	configPath := configuration.DetectAndReadConfigFile()
	if configPath != "" {
		ui.Debug("Using configuration file at: %s", configPath)
	}
	if err := configuration.LoadConfig(); err != nil {
		return nil, err
	}
	if err := configuration.Validate(); err != nil {
		return nil, err
	}

	store := ec.NewStore(ec.DefaultSysfsPath)
	if !store.Available() {
		return nil, ec.ErrDriverNotLoaded
	}

	fan, exists := fans.GetFan(store, id)
	if !exists {
		return nil, fmt.Errorf("no fan with id found: %s", id)
	}
	if !fan.Present() {
		return nil, fmt.Errorf("fan %s is not present on this board", id)
	}

	return fan, nil
}
