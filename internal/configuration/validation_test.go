package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() Configuration {
	return Configuration{
		PowerMode:     PowerModeBalanced,
		FanMode:       FanModeAuto,
		RampupCurve:   DefaultRampupCurve,
		RampdownCurve: DefaultRampdownCurve,
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	// GIVEN
	config := validTestConfig()

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidateRejectsUnknownFanMode(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.FanMode = "bogus"

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fan mode")
}

func TestValidateRejectsUnknownPowerMode(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.PowerMode = "turbo"

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "power mode")
}

func TestValidateRejectsDecreasingRampupCurve(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.RampupCurve = FanCurve{50, 40, 70, 80, 90}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateRejectsDecreasingRampdownCurve(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.RampdownCurve = FanCurve{45, 55, 65, 60, 85}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
}

func TestValidateToleratesMissingHysteresisBand(t *testing.T) {
	// GIVEN
	// rampdown above rampup removes the hysteresis band; the driver
	// accepts it, so it only warns
	config := validTestConfig()
	config.RampdownCurve = FanCurve{55, 65, 75, 85, 95}

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.NoError(t, err)
}
