package statistics

import (
	"github.com/bosgame-linux/fanctl/internal/ec"
	"github.com/prometheus/client_golang/prometheus"
)

const powerSubsystem = "power"

type PowerCollector struct {
	store *ec.Store
	mode  *prometheus.Desc
}

func NewPowerCollector(store *ec.Store) *PowerCollector {
	return &PowerCollector{
		store: store,
		mode: prometheus.NewDesc(prometheus.BuildFQName(namespace, powerSubsystem, "mode"),
			"Active APU power mode (1 for the active mode)",
			[]string{"mode"}, nil,
		),
	}
}

func (collector *PowerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.mode
}

func (collector *PowerCollector) Collect(ch chan<- prometheus.Metric) {
	active, err := collector.store.ReadString(ec.PowerModeEndpoint)
	if err != nil {
		return
	}
	for _, mode := range []string{"quiet", "balanced", "performance"} {
		value := 0.0
		if mode == active {
			value = 1.0
		}
		ch <- prometheus.MustNewConstMetric(collector.mode, prometheus.GaugeValue, value, mode)
	}
}
