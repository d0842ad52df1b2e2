package sensors

import (
	"github.com/bosgame-linux/fanctl/internal/ec"
)

// EcSensor reads the EC's own temperature endpoint.
type EcSensor struct {
	Id        string    `json:"id"`
	Label     string    `json:"label"`
	Store     *ec.Store `json:"-"`
	MovingAvg float64   `json:"movingAvg"`
}

func (sensor *EcSensor) GetId() string {
	return sensor.Id
}

func (sensor *EcSensor) GetLabel() string {
	return sensor.Label
}

func (sensor *EcSensor) GetValue() (float64, error) {
	value, err := sensor.Store.ReadInt(ec.TemperatureEndpoint)
	if err != nil {
		return 0, err
	}
	return float64(value), nil
}

func (sensor *EcSensor) GetMovingAvg() float64 {
	return sensor.MovingAvg
}

func (sensor *EcSensor) SetMovingAvg(avg float64) {
	sensor.MovingAvg = avg
}
