package statistics

import (
	"github.com/bosgame-linux/fanctl/internal/sensors"
	"github.com/prometheus/client_golang/prometheus"
)

const sensorSubsystem = "sensor"

type SensorCollector struct {
	sensors     []sensors.Sensor
	temperature *prometheus.Desc
}

func NewSensorCollector(sensors []sensors.Sensor) *SensorCollector {
	return &SensorCollector{
		sensors: sensors,
		temperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, sensorSubsystem, "temperature"),
			"Moving average temperature of the sensor in degrees",
			[]string{"id"}, nil,
		),
	}
}

func (collector *SensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.temperature
}

func (collector *SensorCollector) Collect(ch chan<- prometheus.Metric) {
	for _, sensor := range collector.sensors {
		ch <- prometheus.MustNewConstMetric(collector.temperature, prometheus.GaugeValue, sensor.GetMovingAvg(), sensor.GetId())
	}
}
