package curves

import (
	"testing"

	"github.com/bosgame-linux/fanctl/internal/configuration"
	"github.com/stretchr/testify/assert"
)

var (
	rampup   = configuration.FanCurve{60, 70, 80, 88, 95}
	rampdown = configuration.FanCurve{50, 60, 70, 78, 85}
)

func TestEvaluateStaysWithinHysteresisBand(t *testing.T) {
	// GIVEN
	previousLevel := 2
	// above rampdown[1]=60, below rampup[2]=80
	temp := 65

	// WHEN
	level := Evaluate(temp, previousLevel, rampup, rampdown)

	// THEN
	assert.Equal(t, 2, level)
}

func TestEvaluateRisesImmediately(t *testing.T) {
	// GIVEN
	previousLevel := 2
	// meets rampup[2]=80, below rampup[3]=88
	temp := 81

	// WHEN
	level := Evaluate(temp, previousLevel, rampup, rampdown)

	// THEN
	assert.Equal(t, 3, level)
}

func TestEvaluateRisesMultipleLevelsInOneCall(t *testing.T) {
	// GIVEN
	previousLevel := 0
	temp := 96

	// WHEN
	level := Evaluate(temp, previousLevel, rampup, rampdown)

	// THEN
	assert.Equal(t, 5, level)
}

func TestEvaluateDropsExactlyOneLevel(t *testing.T) {
	// GIVEN
	previousLevel := 2
	// below rampdown[1]=60 and below rampdown[0]=50
	temp := 40

	// WHEN
	level := Evaluate(temp, previousLevel, rampup, rampdown)

	// THEN
	assert.Equal(t, 1, level)
}

func TestEvaluateDropBelowSingleThreshold(t *testing.T) {
	// GIVEN
	previousLevel := 2
	// below rampdown[1]=60, above rampdown[0]=50
	temp := 55

	// WHEN
	level := Evaluate(temp, previousLevel, rampup, rampdown)

	// THEN
	assert.Equal(t, 1, level)
}

func TestEvaluateThresholdIsInclusiveOnRampup(t *testing.T) {
	// GIVEN
	previousLevel := 0
	temp := rampup[0]

	// WHEN
	level := Evaluate(temp, previousLevel, rampup, rampdown)

	// THEN
	assert.Equal(t, 1, level)
}

func TestEvaluateRampdownThresholdIsExclusive(t *testing.T) {
	// GIVEN
	previousLevel := 1
	// sitting exactly on rampdown[0] keeps the level
	temp := rampdown[0]

	// WHEN
	level := Evaluate(temp, previousLevel, rampup, rampdown)

	// THEN
	assert.Equal(t, 1, level)
}

func TestEvaluateIdleNeverDropsFurther(t *testing.T) {
	// GIVEN
	previousLevel := 0
	temp := -10

	// WHEN
	level := Evaluate(temp, previousLevel, rampup, rampdown)

	// THEN
	assert.Equal(t, 0, level)
}

func TestEvaluateMaxLevelIsPinnedWhileHot(t *testing.T) {
	// GIVEN
	previousLevel := 5
	// above rampdown[4]=85 but below rampup[4]=95
	temp := 90

	// WHEN
	level := Evaluate(temp, previousLevel, rampup, rampdown)

	// THEN
	assert.Equal(t, 5, level)
}

func TestEvaluateMaxLevelDropsBelowTopRampdown(t *testing.T) {
	// GIVEN
	previousLevel := 5
	temp := 84

	// WHEN
	level := Evaluate(temp, previousLevel, rampup, rampdown)

	// THEN
	assert.Equal(t, 4, level)
}

func TestEvaluateClampsOutOfRangePreviousLevel(t *testing.T) {
	// GIVEN
	temp := 40

	// WHEN
	fromAbove := Evaluate(temp, 17, rampup, rampdown)
	fromBelow := Evaluate(temp, -3, rampup, rampdown)

	// THEN
	assert.Equal(t, 4, fromAbove)
	assert.Equal(t, 0, fromBelow)
}

func TestEvaluateRampupJustifiedLevelNeverShrinksResult(t *testing.T) {
	for previousLevel := 0; previousLevel < MaxLevel; previousLevel++ {
		// GIVEN
		temp := rampup[previousLevel]

		// WHEN
		level := Evaluate(temp, previousLevel, rampup, rampdown)

		// THEN
		assert.GreaterOrEqual(t, level, previousLevel+1)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	// GIVEN
	previousLevel := 3
	temp := 72

	// WHEN
	first := Evaluate(temp, previousLevel, rampup, rampdown)
	second := Evaluate(temp, previousLevel, rampup, rampdown)

	// THEN
	assert.Equal(t, first, second)
}
