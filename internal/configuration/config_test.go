package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fanctl.env")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

func TestLoadConfigParsesCurveStrings(t *testing.T) {
	// GIVEN
	viper.Reset()
	path := writeConfigFile(t, `POWER_MODE=performance
FAN_MODE=curve
RAMPUP_CURVE=60,70,80,88,95
RAMPDOWN_CURVE="50 60 70 78 85"
TICK_INTERVAL=5s
`)
	InitConfig(path)
	usedPath := DetectAndReadConfigFile()
	assert.Equal(t, path, usedPath)

	// WHEN
	err := LoadConfig()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, PowerModePerformance, CurrentConfig.PowerMode)
	assert.Equal(t, FanModeCurve, CurrentConfig.FanMode)
	assert.Equal(t, FanCurve{60, 70, 80, 88, 95}, CurrentConfig.RampupCurve)
	assert.Equal(t, FanCurve{50, 60, 70, 78, 85}, CurrentConfig.RampdownCurve)
	assert.Equal(t, 5*time.Second, CurrentConfig.TickInterval)
}

func TestLoadConfigRejectsShortCurve(t *testing.T) {
	// GIVEN
	viper.Reset()
	path := writeConfigFile(t, `RAMPUP_CURVE=60,70,80,88
`)
	InitConfig(path)
	DetectAndReadConfigFile()

	// WHEN
	err := LoadConfig()

	// THEN
	assert.Error(t, err)
}

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	// GIVEN
	viper.Reset()
	path := filepath.Join(t.TempDir(), "does-not-exist.env")
	InitConfig(path)
	usedPath := DetectAndReadConfigFile()
	assert.Equal(t, "", usedPath)

	// WHEN
	err := LoadConfig()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, PowerModeBalanced, CurrentConfig.PowerMode)
	assert.Equal(t, FanModeAuto, CurrentConfig.FanMode)
	assert.Equal(t, DefaultRampupCurve, CurrentConfig.RampupCurve)
	assert.Equal(t, DefaultRampdownCurve, CurrentConfig.RampdownCurve)
	assert.Equal(t, "ec", CurrentConfig.Sensor)
}
