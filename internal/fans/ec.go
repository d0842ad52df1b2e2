package fans

import (
	"fmt"

	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/curves"
	"github.com/bosgame-linux/fanctl/internal/ec"
	"github.com/bosgame-linux/fanctl/internal/ui"
)

// EcFan is a single fan channel of the EC driver, addressed through
// the fan{N}/* attribute endpoints.
type EcFan struct {
	Id           string    `json:"id"`
	Label        string    `json:"label"`
	Store        *ec.Store `json:"-"`
	RpmMovingAvg float64   `json:"rpmMovingAvg"`
}

func (fan *EcFan) GetId() string {
	return fan.Id
}

func (fan *EcFan) GetLabel() string {
	return fan.Label
}

func (fan *EcFan) Present() bool {
	return fan.Store.HasEndpoint(fan.endpoint("mode"))
}

func (fan *EcFan) GetRpm() (int, error) {
	return fan.Store.ReadInt(fan.endpoint("rpm"))
}

func (fan *EcFan) GetRpmAvg() float64 {
	return fan.RpmMovingAvg
}

func (fan *EcFan) SetRpmAvg(rpm float64) {
	fan.RpmMovingAvg = rpm
}

func (fan *EcFan) GetMode() (configuration.FanMode, error) {
	value, err := fan.Store.ReadString(fan.endpoint("mode"))
	if err != nil {
		return "", err
	}
	return configuration.FanMode(value), nil
}

func (fan *EcFan) SetMode(mode configuration.FanMode) error {
	ui.Debug("Setting %s (%s) mode to %s ...", fan.Id, fan.Label, mode)
	return fan.Store.WriteString(fan.endpoint("mode"), string(mode))
}

func (fan *EcFan) GetLevel() (int, error) {
	return fan.Store.ReadInt(fan.endpoint("level"))
}

func (fan *EcFan) SetLevel(level int) error {
	if level < curves.MinLevel || level > curves.MaxLevel {
		return fmt.Errorf("level %d out of range [%d..%d]", level, curves.MinLevel, curves.MaxLevel)
	}
	ui.Debug("Setting %s (%s) level to %d ...", fan.Id, fan.Label, level)
	return fan.Store.WriteInt(fan.endpoint("level"), level)
}

func (fan *EcFan) GetRampupCurve() (configuration.FanCurve, error) {
	return fan.readCurve("rampup_curve")
}

func (fan *EcFan) GetRampdownCurve() (configuration.FanCurve, error) {
	return fan.readCurve("rampdown_curve")
}

func (fan *EcFan) SetCurves(rampup configuration.FanCurve, rampdown configuration.FanCurve) error {
	err := fan.Store.WriteString(fan.endpoint("rampup_curve"), rampup.String())
	if err != nil {
		return err
	}
	return fan.Store.WriteString(fan.endpoint("rampdown_curve"), rampdown.String())
}

func (fan *EcFan) readCurve(attribute string) (configuration.FanCurve, error) {
	value, err := fan.Store.ReadString(fan.endpoint(attribute))
	if err != nil {
		return configuration.FanCurve{}, err
	}
	return configuration.ParseFanCurve(value)
}

func (fan *EcFan) endpoint(attribute string) string {
	return fan.Id + "/" + attribute
}
