package configuration

import (
	"os"
	"time"

	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	PowerMode     PowerMode `mapstructure:"power_mode"`
	FanMode       FanMode   `mapstructure:"fan_mode"`
	RampupCurve   FanCurve  `mapstructure:"rampup_curve"`
	RampdownCurve FanCurve  `mapstructure:"rampdown_curve"`

	Sensor                string        `mapstructure:"sensor"`
	TickInterval          time.Duration `mapstructure:"tick_interval"`
	TempRollingWindowSize int           `mapstructure:"temp_rolling_window_size"`

	DriverWaitInterval time.Duration `mapstructure:"driver_wait_interval"`
	DriverWaitAttempts int           `mapstructure:"driver_wait_attempts"`

	DbPath string `mapstructure:"db_path"`

	MetricsEnabled bool `mapstructure:"metrics_enabled"`
	MetricsPort    int  `mapstructure:"metrics_port"`
	ApiEnabled     bool `mapstructure:"api_enabled"`
	ApiPort        int  `mapstructure:"api_port"`

	// tuning keys handed verbatim to the external ryzenadj collaborator
	RyzenadjPath string `mapstructure:"ryzenadj_path"`
	StapmLimit   string `mapstructure:"stapm_limit"`
	FastLimit    string `mapstructure:"fast_limit"`
	SlowLimit    string `mapstructure:"slow_limit"`
	TempLimit    string `mapstructure:"temp_limit"`
	CpuCo        string `mapstructure:"cpu_co"`
	GpuCo        string `mapstructure:"gpu_co"`

	// amdgpu performance level, written best-effort
	GpuLevel string `mapstructure:"gpu_level"`
}

var CurrentConfig Configuration

// InitConfig sets up viper for the flat KEY=value config file format
// and registers the documented default values.
func InitConfig(cfgFile string) {
	viper.SetConfigName("fanctl")
	viper.SetConfigType("env")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/fanctl/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("power_mode", string(PowerModeBalanced))
	viper.SetDefault("fan_mode", string(FanModeAuto))
	viper.SetDefault("rampup_curve", DefaultRampupCurve.String())
	viper.SetDefault("rampdown_curve", DefaultRampdownCurve.String())

	viper.SetDefault("sensor", "ec")
	viper.SetDefault("tick_interval", 2*time.Second)
	viper.SetDefault("temp_rolling_window_size", 10)

	viper.SetDefault("driver_wait_interval", 2*time.Second)
	viper.SetDefault("driver_wait_attempts", 15)

	viper.SetDefault("db_path", "/etc/fanctl/fanctl.db")

	viper.SetDefault("metrics_enabled", false)
	viper.SetDefault("metrics_port", 9045)
	viper.SetDefault("api_enabled", false)
	viper.SetDefault("api_port", 9046)

	viper.SetDefault("ryzenadj_path", "")
	viper.SetDefault("gpu_level", "")
}

// Thresholds used when the config file is absent or does not set any curves.
var (
	DefaultRampupCurve   = FanCurve{50, 60, 70, 80, 90}
	DefaultRampdownCurve = FanCurve{45, 55, 65, 75, 85}
)

// DetectAndReadConfigFile reads the config file if one exists.
// A missing file is not an error, the documented defaults apply.
// Returns the path of the file that was used, or "" for defaults.
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound || os.IsNotExist(err) {
			ui.Info("No config file found, using defaults")
			return ""
		}
		ui.Fatal("Error reading config file: %v", err)
	}
	return viper.ConfigFileUsed()
}

// LoadConfig unmarshals the config values read by viper into CurrentConfig.
// A malformed value (e.g. a curve with the wrong number of thresholds)
// is rejected here, before anything is applied.
func LoadConfig() error {
	return viper.Unmarshal(&CurrentConfig, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			fanCurveHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	))
}
