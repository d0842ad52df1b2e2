package sensors

import (
	"github.com/bosgame-linux/fanctl/internal/util"
)

// FileSensor reads a temperature from a plain sysfs file, scaled by
// a divisor (hwmon inputs report millidegrees).
type FileSensor struct {
	Id        string  `json:"id"`
	Label     string  `json:"label"`
	Path      string  `json:"path"`
	Divisor   int     `json:"divisor"`
	MovingAvg float64 `json:"movingAvg"`
}

func (sensor *FileSensor) GetId() string {
	return sensor.Id
}

func (sensor *FileSensor) GetLabel() string {
	return sensor.Label
}

func (sensor *FileSensor) GetValue() (float64, error) {
	value, err := util.ReadIntFromFile(sensor.Path)
	if err != nil {
		return 0, err
	}
	divisor := sensor.Divisor
	if divisor <= 0 {
		divisor = 1
	}
	return float64(value) / float64(divisor), nil
}

func (sensor *FileSensor) GetMovingAvg() float64 {
	return sensor.MovingAvg
}

func (sensor *FileSensor) SetMovingAvg(avg float64) {
	sensor.MovingAvg = avg
}
