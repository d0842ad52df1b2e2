package control

import (
	"context"
	"time"

	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/curves"
	"github.com/bosgame-linux/fanctl/internal/fans"
	"github.com/bosgame-linux/fanctl/internal/persistence"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/bosgame-linux/fanctl/internal/util"
)

const (
	// time to let the fan spin up/down before sampling its RPM
	settleTime = 4 * time.Second

	rpmSampleCount    = 5
	rpmSampleInterval = time.Second
)

// MeasureRpmCurve steps the given fan through all levels, measures the
// averaged RPM at each level and stores the result. The fan's mode is
// restored afterwards.
func MeasureRpmCurve(ctx context.Context, fan fans.Fan, p persistence.Persistence) error {
	originalMode, err := fan.GetMode()
	if err == nil {
		defer func() {
			if err := fan.SetMode(originalMode); err != nil {
				ui.Warning("Unable to restore mode of %s: %v", fan.GetId(), err)
			}
		}()
	}

	if err := fan.SetMode(configuration.FanModeFixed); err != nil {
		return err
	}

	levelRpmMap := map[int]float64{}
	for level := curves.MinLevel; level <= curves.MaxLevel; level++ {
		if err := fan.SetLevel(level); err != nil {
			return err
		}

		if err := sleep(ctx, settleTime); err != nil {
			return err
		}

		window := util.CreateRollingWindow(rpmSampleCount)
		for sample := 0; sample < rpmSampleCount; sample++ {
			rpm, err := fan.GetRpm()
			if err != nil {
				return err
			}
			window.Append(float64(rpm))

			if sample < rpmSampleCount-1 {
				if err := sleep(ctx, rpmSampleInterval); err != nil {
					return err
				}
			}
		}

		avg := util.GetWindowAvg(window)
		levelRpmMap[level] = avg
		fan.SetRpmAvg(avg)
		ui.Info("Measured RPM of %s at level %d: %d", fan.GetId(), level, int(avg))
	}

	return p.SaveFanRpmData(fan.GetId(), levelRpmMap)
}

func sleep(ctx context.Context, duration time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(duration):
		return nil
	}
}
