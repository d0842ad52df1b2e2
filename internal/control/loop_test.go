package control

import (
	"testing"
	"time"

	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/fans"
	"github.com/bosgame-linux/fanctl/internal/sensors"
	"github.com/stretchr/testify/assert"
)

func createLoopConfig() *configuration.Configuration {
	return &configuration.Configuration{
		FanMode:       configuration.FanModeCurve,
		RampupCurve:   configuration.FanCurve{60, 70, 80, 88, 95},
		RampdownCurve: configuration.FanCurve{50, 60, 70, 78, 85},
		TickInterval:  time.Second,
	}
}

func TestCurveLoopTickRaisesLevel(t *testing.T) {
	// GIVEN
	store := createTestStore(t)
	sensor := &sensors.FileSensor{Id: "cpu"}
	sensor.SetMovingAvg(81)

	loop := NewCurveLoop(createLoopConfig(), sensor, fans.NewFans(store))
	loop.levels["fan1"] = 2
	loop.levels["fan2"] = 2

	// WHEN
	loop.tick()

	// THEN
	assert.Equal(t, 3, loop.levels["fan1"])
	assert.Equal(t, 3, loop.levels["fan2"])

	level, err := store.ReadInt("fan1/level")
	assert.NoError(t, err)
	assert.Equal(t, 3, level)
}

func TestCurveLoopTickDropsOneLevelPerTick(t *testing.T) {
	// GIVEN
	store := createTestStore(t)
	sensor := &sensors.FileSensor{Id: "cpu"}
	sensor.SetMovingAvg(40)

	loop := NewCurveLoop(createLoopConfig(), sensor, fans.NewFans(store))
	loop.levels["fan1"] = 3

	// WHEN
	loop.tick()

	// THEN
	assert.Equal(t, 2, loop.levels["fan1"])

	// WHEN the dip persists into the next tick
	loop.tick()

	// THEN
	assert.Equal(t, 1, loop.levels["fan1"])
}

func TestCurveLoopTickKeepsLevelInsideBand(t *testing.T) {
	// GIVEN
	store := createTestStore(t)
	sensor := &sensors.FileSensor{Id: "cpu"}
	sensor.SetMovingAvg(65)

	loop := NewCurveLoop(createLoopConfig(), sensor, fans.NewFans(store))
	loop.levels["fan1"] = 2

	// WHEN
	loop.tick()

	// THEN
	assert.Equal(t, 2, loop.levels["fan1"])
}

func TestCurveLoopIgnoresUncontrolledFans(t *testing.T) {
	// GIVEN
	store := createTestStore(t)
	sensor := &sensors.FileSensor{Id: "cpu"}
	sensor.SetMovingAvg(99)

	loop := NewCurveLoop(createLoopConfig(), sensor, fans.NewFans(store))
	// fan3 never entered the level map, it is absent on this board

	// WHEN
	loop.tick()

	// THEN
	_, controlled := loop.levels["fan3"]
	assert.False(t, controlled)
}
