package fans

import (
	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/ec"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	FanMap = cmap.New[Fan]()
)

type Fan interface {
	GetId() string
	GetLabel() string

	// Present reports whether this fan's endpoints exist on this board
	Present() bool

	// GetRpm returns the current RPM reading of this fan
	GetRpm() (int, error)
	GetRpmAvg() float64
	SetRpmAvg(rpm float64)

	GetMode() (configuration.FanMode, error)
	SetMode(mode configuration.FanMode) error

	// GetLevel returns the current speed level (0..5) of this fan
	GetLevel() (int, error)
	SetLevel(level int) error

	GetRampupCurve() (configuration.FanCurve, error)
	GetRampdownCurve() (configuration.FanCurve, error)
	// SetCurves writes both threshold tables, verbatim as configured
	SetCurves(rampup configuration.FanCurve, rampdown configuration.FanCurve) error
}

// The EC exposes three fan channels. fan3 is missing on some boards.
var channels = []struct {
	id    string
	label string
}{
	{"fan1", "CPU Fan 1"},
	{"fan2", "CPU Fan 2"},
	{"fan3", "System Fan"},
}

// NewFans creates a Fan for each of the three EC fan channels.
func NewFans(store *ec.Store) []Fan {
	result := make([]Fan, 0, len(channels))
	for _, channel := range channels {
		result = append(result, &EcFan{
			Id:    channel.id,
			Label: channel.label,
			Store: store,
		})
	}
	return result
}

// GetFan returns the fan with the given id (fan1, fan2 or fan3).
func GetFan(store *ec.Store, id string) (Fan, bool) {
	for _, fan := range NewFans(store) {
		if fan.GetId() == id {
			return fan, true
		}
	}
	return nil, false
}
