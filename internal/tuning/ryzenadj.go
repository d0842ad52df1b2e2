package tuning

import (
	"fmt"
	"os"
	"time"

	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/ui"
	"github.com/bosgame-linux/fanctl/internal/util"
)

const cmdTimeout = 10 * time.Second

// GpuPerformanceLevelPath is the amdgpu endpoint for forcing a GPU
// performance level. Not all platforms expose it.
var GpuPerformanceLevelPath = "/sys/class/drm/card0/device/power_dpm_force_performance_level"

// Apply invokes the external ryzenadj utility with the configured APU
// tuning limits. The utility is an opaque collaborator: failures are
// logged and never abort an activation.
func Apply(config *configuration.Configuration) {
	args := tuningArgs(config)
	if len(args) == 0 {
		return
	}
	if config.RyzenadjPath == "" {
		ui.Warning("Tuning limits configured but RYZENADJ_PATH is not set, skipping")
		return
	}

	out, err := util.SafeCmdExecution(config.RyzenadjPath, args, cmdTimeout)
	if err != nil {
		ui.Warning("ryzenadj failed: %v", err)
		return
	}
	ui.Debug("ryzenadj: %s", out)
	ui.Info("Applied APU tuning limits")
}

func tuningArgs(config *configuration.Configuration) []string {
	var args []string

	appendArg := func(flag string, value string) {
		if value != "" {
			args = append(args, fmt.Sprintf("--%s=%s", flag, value))
		}
	}

	appendArg("stapm-limit", config.StapmLimit)
	appendArg("fast-limit", config.FastLimit)
	appendArg("slow-limit", config.SlowLimit)
	appendArg("tctl-temp", config.TempLimit)
	appendArg("set-coall", config.CpuCo)
	appendArg("set-cogfx", config.GpuCo)

	return args
}

// ApplyGpuPerformanceLevel writes the amdgpu performance level,
// silently ignoring a missing endpoint.
func ApplyGpuPerformanceLevel(level string) {
	if level == "" {
		return
	}
	err := util.WriteStringToFile(level, GpuPerformanceLevelPath)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		ui.Debug("Unable to set GPU performance level: %v", err)
	}
}
