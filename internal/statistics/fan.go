package statistics

import (
	"github.com/bosgame-linux/fanctl/internal/fans"
	"github.com/prometheus/client_golang/prometheus"
)

const fanSubsystem = "fan"

type FanCollector struct {
	fans  []fans.Fan
	level *prometheus.Desc
	rpm   *prometheus.Desc
}

func NewFanCollector(fans []fans.Fan) *FanCollector {
	return &FanCollector{
		fans: fans,
		level: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "level"),
			"Current speed level of the fan",
			[]string{"id"}, nil,
		),
		rpm: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "rpm"),
			"Current RPM value of the fan",
			[]string{"id"}, nil,
		),
	}
}

func (collector *FanCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.level
	ch <- collector.rpm
}

func (collector *FanCollector) Collect(ch chan<- prometheus.Metric) {
	for _, fan := range collector.fans {
		if !fan.Present() {
			continue
		}
		fanId := fan.GetId()
		if level, err := fan.GetLevel(); err == nil {
			ch <- prometheus.MustNewConstMetric(collector.level, prometheus.GaugeValue, float64(level), fanId)
		}
		if rpm, err := fan.GetRpm(); err == nil {
			ch <- prometheus.MustNewConstMetric(collector.rpm, prometheus.GaugeValue, float64(rpm), fanId)
		}
	}
}
