package configuration

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// FanMode is the per-fan control mode understood by the EC driver.
type FanMode string

const (
	FanModeAuto  FanMode = "auto"
	FanModeFixed FanMode = "fixed"
	FanModeCurve FanMode = "curve"
)

// PowerMode is the APU-wide performance profile.
type PowerMode string

const (
	PowerModeQuiet       PowerMode = "quiet"
	PowerModeBalanced    PowerMode = "balanced"
	PowerModePerformance PowerMode = "performance"
)

// CurvePoints is the number of temperature thresholds in a fan curve,
// one per fan level 1..5.
const CurvePoints = 5

// FanCurve holds the temperature thresholds of a rampup or rampdown curve.
// Index i holds the threshold for level i+1.
type FanCurve [CurvePoints]int

func (c FanCurve) String() string {
	parts := make([]string, 0, CurvePoints)
	for _, threshold := range c {
		parts = append(parts, strconv.Itoa(threshold))
	}
	return strings.Join(parts, ",")
}

// ParseFanCurve parses a comma- or space-separated list of exactly
// five integer temperature thresholds.
func ParseFanCurve(input string) (curve FanCurve, err error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != CurvePoints {
		return curve, fmt.Errorf("fan curve must contain exactly %d values, got %d: '%s'", CurvePoints, len(fields), input)
	}
	for i, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return curve, fmt.Errorf("fan curve value '%s' is not an integer: '%s'", field, input)
		}
		curve[i] = value
	}
	return curve, nil
}

// fanCurveHookFunc returns a mapstructure decode hook that parses the
// comma- or space-separated curve strings of the config file into a FanCurve.
func fanCurveHookFunc() mapstructure.DecodeHookFuncType {
	fanCurveType := reflect.TypeOf(FanCurve{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != fanCurveType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return ParseFanCurve(v)
		default:
			return data, nil
		}
	}
}
