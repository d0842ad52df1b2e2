package control

import (
	"context"
	"errors"
	"fmt"

	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/ec"
	"github.com/bosgame-linux/fanctl/internal/fans"
	"github.com/bosgame-linux/fanctl/internal/tuning"
	"github.com/bosgame-linux/fanctl/internal/ui"
)

type Result string

const (
	// ResultApplied means the endpoint was configured successfully.
	ResultApplied Result = "applied"
	// ResultSkipped means the endpoint does not exist on this board.
	ResultSkipped Result = "skipped"
	// ResultFailed means the driver rejected the write.
	ResultFailed Result = "failed"
)

type EndpointResult struct {
	Result Result `json:"result"`
	Err    error  `json:"error,omitempty"`
}

// ActivationReport describes the outcome of one full application of a
// Configuration to the attribute store. Individual endpoint failures
// do not abort sibling operations.
type ActivationReport struct {
	PowerMode EndpointResult            `json:"powerMode"`
	Fans      map[string]EndpointResult `json:"fans"`
}

// Success reports whether the activation as a whole succeeded: the
// power mode was applied and every fan that exists was configured.
func (r *ActivationReport) Success() bool {
	if r.PowerMode.Result != ResultApplied {
		return false
	}
	for _, result := range r.Fans {
		if result.Result == ResultFailed {
			return false
		}
	}
	return true
}

type FanStatus struct {
	Id      string `json:"id"`
	Label   string `json:"label"`
	Present bool   `json:"present"`
	Rpm     int    `json:"rpm"`
	Mode    string `json:"mode"`
	Level   int    `json:"level"`
}

// StatusReport is a read-only snapshot of the fan subsystem.
// Loaded=false (driver missing) is a valid state, not an error.
type StatusReport struct {
	Loaded      bool        `json:"loaded"`
	Temperature int         `json:"temperature"`
	PowerMode   string      `json:"powerMode"`
	Fans        []FanStatus `json:"fans"`
}

// Controller applies a Configuration to the attribute store and reads
// its current state. It is stateless between calls; callers must
// serialize activations, the attribute writes are not transactional.
type Controller struct {
	store *ec.Store
}

func NewController(store *ec.Store) *Controller {
	return &Controller{store: store}
}

// Activate performs one full application of the given configuration:
// wait for the driver, relax endpoint permissions, write the power
// mode, then configure each fan. Endpoint failures are recorded in
// the report and do not abort sibling operations. A missing driver
// after the full wait budget is fatal and issues no writes.
func (c *Controller) Activate(ctx context.Context, config *configuration.Configuration) (*ActivationReport, error) {
	err := c.store.WaitUntilAvailable(ctx, config.DriverWaitInterval, config.DriverWaitAttempts)
	if err != nil {
		if errors.Is(err, ec.ErrDriverNotLoaded) {
			return nil, fmt.Errorf("%w: try 'modprobe ec_su_axb35'", err)
		}
		return nil, err
	}

	c.relaxPermissions()

	report := &ActivationReport{
		Fans: map[string]EndpointResult{},
	}

	report.PowerMode = c.applyPowerMode(config.PowerMode)

	for _, fan := range fans.NewFans(c.store) {
		report.Fans[fan.GetId()] = c.applyFanConfig(fan, config)
	}

	// external collaborators, best-effort
	tuning.Apply(config)
	tuning.ApplyGpuPerformanceLevel(config.GpuLevel)

	return report, nil
}

func (c *Controller) relaxPermissions() {
	endpoints := []string{ec.PowerModeEndpoint}
	for _, fan := range fans.NewFans(c.store) {
		id := fan.GetId()
		endpoints = append(endpoints,
			id+"/mode",
			id+"/level",
			id+"/rampup_curve",
			id+"/rampdown_curve",
		)
	}
	c.store.RelaxPermissions(endpoints...)
}

func (c *Controller) applyPowerMode(mode configuration.PowerMode) EndpointResult {
	if !c.store.HasEndpoint(ec.PowerModeEndpoint) {
		ui.Warning("Power mode endpoint not present, skipping")
		return EndpointResult{Result: ResultSkipped}
	}
	if err := c.store.WriteString(ec.PowerModeEndpoint, string(mode)); err != nil {
		ui.Error("Unable to set power mode to %s: %v", mode, err)
		return EndpointResult{Result: ResultFailed, Err: err}
	}
	ui.Info("Power mode set to %s", mode)
	return EndpointResult{Result: ResultApplied}
}

func (c *Controller) applyFanConfig(fan fans.Fan, config *configuration.Configuration) EndpointResult {
	if !fan.Present() {
		ui.Warning("Fan %s (%s) not present, skipping", fan.GetId(), fan.GetLabel())
		return EndpointResult{Result: ResultSkipped}
	}

	if err := fan.SetMode(config.FanMode); err != nil {
		ui.Error("Unable to set mode of %s: %v", fan.GetId(), err)
		return EndpointResult{Result: ResultFailed, Err: err}
	}

	if config.FanMode == configuration.FanModeCurve {
		if err := fan.SetCurves(config.RampupCurve, config.RampdownCurve); err != nil {
			ui.Error("Unable to set curves of %s: %v", fan.GetId(), err)
			return EndpointResult{Result: ResultFailed, Err: err}
		}
	}

	ui.Info("Fan %s (%s) set to mode %s", fan.GetId(), fan.GetLabel(), config.FanMode)
	return EndpointResult{Result: ResultApplied}
}

// Status reads driver presence, the EC temperature, the power mode and
// each fan's current attributes. It never fails outright; with the
// driver absent it reports Loaded=false.
func (c *Controller) Status() *StatusReport {
	report := &StatusReport{
		Loaded: c.store.Available(),
	}
	if !report.Loaded {
		return report
	}

	if temp, err := c.store.ReadInt(ec.TemperatureEndpoint); err == nil {
		report.Temperature = temp
	}
	if mode, err := c.store.ReadString(ec.PowerModeEndpoint); err == nil {
		report.PowerMode = mode
	}

	for _, fan := range fans.NewFans(c.store) {
		status := FanStatus{
			Id:      fan.GetId(),
			Label:   fan.GetLabel(),
			Present: fan.Present(),
		}
		if status.Present {
			if rpm, err := fan.GetRpm(); err == nil {
				status.Rpm = rpm
			}
			if mode, err := fan.GetMode(); err == nil {
				status.Mode = string(mode)
			}
			if level, err := fan.GetLevel(); err == nil {
				status.Level = level
			}
		}
		report.Fans = append(report.Fans, status)
	}

	return report
}
