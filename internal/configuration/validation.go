package configuration

import (
	"fmt"

	"github.com/bosgame-linux/fanctl/internal/ui"
	"golang.org/x/exp/slices"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	err := validatePowerMode(config)
	if err != nil {
		return err
	}
	err = validateFanMode(config)
	if err != nil {
		return err
	}
	return validateCurves(config)
}

func validatePowerMode(config *Configuration) error {
	supportedModes := []PowerMode{PowerModeQuiet, PowerModeBalanced, PowerModePerformance}
	if !slices.Contains(supportedModes, config.PowerMode) {
		return fmt.Errorf("unsupported power mode '%s', use one of: quiet | balanced | performance", config.PowerMode)
	}
	return nil
}

func validateFanMode(config *Configuration) error {
	supportedModes := []FanMode{FanModeAuto, FanModeFixed, FanModeCurve}
	if !slices.Contains(supportedModes, config.FanMode) {
		return fmt.Errorf("unsupported fan mode '%s', use one of: auto | fixed | curve", config.FanMode)
	}
	return nil
}

func validateCurves(config *Configuration) error {
	for i := 1; i < CurvePoints; i++ {
		if config.RampupCurve[i] < config.RampupCurve[i-1] {
			return fmt.Errorf("rampup curve thresholds must be non-decreasing: %s", config.RampupCurve)
		}
		if config.RampdownCurve[i] < config.RampdownCurve[i-1] {
			return fmt.Errorf("rampdown curve thresholds must be non-decreasing: %s", config.RampdownCurve)
		}
	}

	// The driver does not enforce this, but without it there is no
	// hysteresis band and the fan may oscillate around a threshold.
	for i := 0; i < CurvePoints; i++ {
		if config.RampdownCurve[i] > config.RampupCurve[i] {
			ui.Warning("Rampdown threshold %d (%d) is above rampup threshold (%d), no hysteresis at level %d",
				i, config.RampdownCurve[i], config.RampupCurve[i], i+1)
		}
	}

	return nil
}
