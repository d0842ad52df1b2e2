package curves

import (
	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/bosgame-linux/fanctl/internal/util"
)

const (
	// MinLevel is the idle fan level.
	MinLevel = 0
	// MaxLevel is the maximum fan level.
	MaxLevel = 5
)

// Evaluate computes the new fan level for the given temperature using
// hysteresis: rampup[i] is the temperature at which the fan rises to
// level i+1, rampdown[i] the temperature below which level i+1 is no
// longer held.
//
// Rising is immediate: if the temperature justifies a higher level, the
// fan jumps straight to it, cooling responsiveness beats noise. Falling
// is damped: the fan drops at most one level per call, so a transient
// dip cannot collapse it to idle within a single tick.
//
// The function is pure, same inputs always yield the same level.
func Evaluate(temp int, previousLevel int, rampup configuration.FanCurve, rampdown configuration.FanCurve) int {
	previousLevel = util.Clamp(previousLevel, MinLevel, MaxLevel)

	// highest level justified by the rampup thresholds, scanning upward
	// and stopping at the first threshold that is not met
	justified := MinLevel
	for i := 0; i < configuration.CurvePoints; i++ {
		if temp >= rampup[i] {
			justified = i + 1
		} else {
			break
		}
	}

	if justified > previousLevel {
		return justified
	}
	if justified == previousLevel {
		// the rampup threshold of the current level is still met
		return previousLevel
	}

	if previousLevel > MinLevel && temp < rampdown[previousLevel-1] {
		return previousLevel - 1
	}

	return previousLevel
}
