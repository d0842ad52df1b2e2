package control

import (
	"context"
	"math"
	"time"

	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/curves"
	"github.com/bosgame-linux/fanctl/internal/fans"
	"github.com/bosgame-linux/fanctl/internal/sensors"
	"github.com/bosgame-linux/fanctl/internal/ui"
)

// CurveLoop drives the fan levels in software: on each tick it
// re-reads the temperature and asserts the level computed by the
// hysteresis curve. The fans are put into "fixed" mode so the EC does
// not interfere; their configured mode is restored on shutdown.
type CurveLoop struct {
	config *configuration.Configuration
	sensor sensors.Sensor
	fans   []fans.Fan

	levels        map[string]int
	originalModes map[string]configuration.FanMode
}

func NewCurveLoop(config *configuration.Configuration, sensor sensors.Sensor, controlledFans []fans.Fan) *CurveLoop {
	return &CurveLoop{
		config:        config,
		sensor:        sensor,
		fans:          controlledFans,
		levels:        map[string]int{},
		originalModes: map[string]configuration.FanMode{},
	}
}

func (l *CurveLoop) Run(ctx context.Context) error {
	for _, fan := range l.fans {
		if !fan.Present() {
			continue
		}

		mode, err := fan.GetMode()
		if err == nil {
			l.originalModes[fan.GetId()] = mode
		}
		if err = fan.SetMode(configuration.FanModeFixed); err != nil {
			ui.Warning("Could not take over control of %s, trying to continue anyway: %v", fan.GetId(), err)
			continue
		}

		level, err := fan.GetLevel()
		if err != nil {
			level = curves.MinLevel
		}
		l.levels[fan.GetId()] = level
	}

	defer l.restoreModes()

	tick := time.Tick(l.config.TickInterval)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			l.tick()
		}
	}
}

func (l *CurveLoop) tick() {
	temp := int(math.Round(l.sensor.GetMovingAvg()))

	for _, fan := range l.fans {
		id := fan.GetId()
		previousLevel, controlled := l.levels[id]
		if !controlled {
			continue
		}

		newLevel := curves.Evaluate(temp, previousLevel, l.config.RampupCurve, l.config.RampdownCurve)
		if newLevel == previousLevel {
			continue
		}

		ui.Debug("Curve loop: %s at %d° moves from level %d to %d", id, temp, previousLevel, newLevel)
		if err := fan.SetLevel(newLevel); err != nil {
			ui.Error("Unable to set level of %s: %v", id, err)
			continue
		}
		l.levels[id] = newLevel
	}
}

func (l *CurveLoop) restoreModes() {
	for id, mode := range l.originalModes {
		for _, fan := range l.fans {
			if fan.GetId() != id {
				continue
			}
			if err := fan.SetMode(mode); err != nil {
				ui.Warning("Unable to restore mode of %s: %v", id, err)
			}
		}
	}
}
