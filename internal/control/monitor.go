package control

import (
	"context"
	"time"

	"github.com/bosgame-linux/fanctl/internal/sensors"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/bosgame-linux/fanctl/internal/util"
)

type SensorMonitor interface {
	Run(ctx context.Context) error
}

type sensorMonitor struct {
	sensor      sensors.Sensor
	pollingRate time.Duration
	windowSize  int
}

func NewSensorMonitor(sensor sensors.Sensor, pollingRate time.Duration, windowSize int) SensorMonitor {
	return sensorMonitor{
		sensor:      sensor,
		pollingRate: pollingRate,
		windowSize:  windowSize,
	}
}

func (s sensorMonitor) Run(ctx context.Context) error {
	tick := time.Tick(s.pollingRate)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			s.updateSensor()
		}
	}
}

// read the current value of the sensor and fold it into the moving average
func (s sensorMonitor) updateSensor() {
	value, err := s.sensor.GetValue()
	if err != nil {
		// hwmon paths differ between boards, a missing sensor is not fatal
		ui.Debug("Unable to read sensor %s: %v", s.sensor.GetId(), err)
		return
	}

	lastAvg := s.sensor.GetMovingAvg()
	if lastAvg == 0 {
		// seed the average with the first reading instead of
		// ramping up from zero
		s.sensor.SetMovingAvg(value)
		return
	}
	newAvg := util.UpdateSimpleMovingAvg(lastAvg, s.windowSize, value)
	s.sensor.SetMovingAvg(newAvg)
}
