package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"os/user"
	"syscall"
	"time"

	"github.com/bosgame-linux/fanctl/internal/api"
	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/control"
	"github.com/bosgame-linux/fanctl/internal/ec"
	"github.com/bosgame-linux/fanctl/internal/fans"
	"github.com/bosgame-linux/fanctl/internal/sensors"
	"github.com/bosgame-linux/fanctl/internal/statistics"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RunDaemon performs a full activation and then keeps running: it
// polls the telemetry sensors, drives the fan levels in software when
// FAN_MODE=curve, and optionally serves metrics and the REST API.
func RunDaemon() {
	if getProcessOwner() != "root" {
		ui.Fatal("Fan control requires root permissions to write EC attributes, please run fanctl as root")
	}

	config := &configuration.CurrentConfig
	store := ec.NewStore(ec.DefaultSysfsPath)
	controller := control.NewController(store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	report, err := controller.Activate(ctx, config)
	if err != nil {
		ui.Fatal("Activation failed: %v", err)
	}
	if !report.Success() {
		ui.Warning("Activation completed with failures, continuing")
	}

	InitializeObjects(store)

	var g run.Group
	{
		// === sensor monitoring
		for _, sensor := range sensors.SensorMap.Items() {
			s := sensor
			mon := control.NewSensorMonitor(s, config.TickInterval, config.TempRollingWindowSize)

			g.Add(func() error {
				err := mon.Run(ctx)
				ui.Info("Sensor monitor for sensor %s stopped.", s.GetId())
				return err
			}, func(err error) {
				if err != nil {
					ui.Warning("Error monitoring sensor: %v", err)
				}
			})
		}
	}
	{
		// === software curve loop
		if config.FanMode == configuration.FanModeCurve {
			sensor, exists := sensors.GetSensor(store, config.Sensor)
			if !exists {
				ui.Fatal("No sensor with id found: %s", config.Sensor)
			}
			// re-resolve through the registry so the loop sees the
			// moving averages maintained by the monitors
			if registered, ok := sensors.SensorMap.Get(sensor.GetId()); ok {
				sensor = registered
			}

			loop := control.NewCurveLoop(config, sensor, registeredFans())

			g.Add(func() error {
				err := loop.Run(ctx)
				ui.Info("Curve loop stopped.")
				return err
			}, func(err error) {
				if err != nil {
					ui.Warning("Error in curve loop: %v", err)
				}
			})
		}
	}
	{
		// === Prometheus exporter
		if config.MetricsEnabled {
			statistics.Register(statistics.NewFanCollector(registeredFans()))
			statistics.Register(statistics.NewSensorCollector(registeredSensors()))
			statistics.Register(statistics.NewPowerCollector(store))

			addr := fmt.Sprintf(":%d", config.MetricsPort)
			handler := promhttp.Handler()
			server := &http.Server{Addr: addr, Handler: handler}

			g.Add(func() error {
				ui.Info("Serving metrics on %s", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					ui.Error("Cannot start metrics endpoint (%s)", err.Error())
					return err
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				_ = server.Shutdown(timeoutCtx)
				ui.Info("Metrics server stopped.")
			})
		}
	}
	{
		// === REST API
		if config.ApiEnabled {
			restService := api.CreateRestService(store)
			addr := fmt.Sprintf("localhost:%d", config.ApiPort)

			g.Add(func() error {
				ui.Info("Serving REST API on %s", addr)
				if err := restService.Start(addr); err != nil && err != http.ErrServerClosed {
					ui.Error("Cannot start REST API endpoint (%s)", err.Error())
					return err
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				_ = restService.Shutdown(timeoutCtx)
				ui.Info("REST API stopped.")
			})
		}
	}
	{
		// === signal handling
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received exit signal, shutting down...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		ui.Error("Daemon stopped with error: %v", err)
	}
}

// InitializeObjects fills the fan and sensor registries.
func InitializeObjects(store *ec.Store) {
	for _, fan := range fans.NewFans(store) {
		fans.FanMap.Set(fan.GetId(), fan)
	}
	for _, sensor := range sensors.NewSensors(store) {
		sensors.SensorMap.Set(sensor.GetId(), sensor)
	}
}

func registeredFans() []fans.Fan {
	var result []fans.Fan
	for _, fan := range fans.FanMap.Items() {
		result = append(result, fan)
	}
	return result
}

func registeredSensors() []sensors.Sensor {
	var result []sensors.Sensor
	for _, sensor := range sensors.SensorMap.Items() {
		result = append(result, sensor)
	}
	return result
}

func getProcessOwner() string {
	currentUser, err := user.Current()
	if err != nil {
		ui.Error("Unable to determine process owner: %v", err)
		return ""
	}
	return currentUser.Username
}
