package sensors

import (
	"github.com/bosgame-linux/fanctl/internal/ec"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	SensorMap = cmap.New[Sensor]()
)

type Sensor interface {
	GetId() string
	GetLabel() string

	// GetValue returns the current temperature of this sensor in degrees
	GetValue() (float64, error)

	// GetMovingAvg returns the moving average of this sensor's value
	GetMovingAvg() float64
	SetMovingAvg(avg float64)
}

// Telemetry sensors of the platform: the EC's own reading plus the
// hwmon inputs of the surrounding components. hwmon reports
// millidegrees, the EC plain degrees.
var definitions = []struct {
	id      string
	label   string
	path    string
	divisor int
}{
	{"cpu", "CPU (Tctl)", "/sys/class/hwmon/hwmon4/temp1_input", 1000},
	{"gpu", "GPU (Edge)", "/sys/class/hwmon/hwmon1/temp1_input", 1000},
	{"nvme1", "NVMe 1", "/sys/class/hwmon/hwmon2/temp1_input", 1000},
	{"nvme2", "NVMe 2", "/sys/class/hwmon/hwmon3/temp1_input", 1000},
	{"wifi", "WiFi", "/sys/class/hwmon/hwmon7/temp1_input", 1000},
	{"ethernet", "Ethernet", "/sys/class/hwmon/hwmon5/temp1_input", 1000},
}

// NewSensors creates all telemetry sensors, with the EC sensor first.
func NewSensors(store *ec.Store) []Sensor {
	result := []Sensor{
		&EcSensor{
			Id:    "ec",
			Label: "EC Sensor",
			Store: store,
		},
	}
	for _, definition := range definitions {
		result = append(result, &FileSensor{
			Id:      definition.id,
			Label:   definition.label,
			Path:    definition.path,
			Divisor: definition.divisor,
		})
	}
	return result
}

// GetSensor returns the sensor with the given id.
func GetSensor(store *ec.Store, id string) (Sensor, bool) {
	for _, sensor := range NewSensors(store) {
		if sensor.GetId() == id {
			return sensor, true
		}
	}
	return nil, false
}
