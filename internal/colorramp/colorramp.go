// Package colorramp converts a color setting into gamma ramp values using a
// blackbody white point table.
package colorramp

import (
	"math"

	"github.com/saaga0h/nightshift/internal/shift"
)

// Table range
const (
	MinTemperature = 1000
	MaxTemperature = 25000
	TableStep      = 100
)

// WhitePoint returns the red, green and blue multipliers for the given color
// temperature, interpolating linearly between table rows. Temperatures
// outside the table are clamped to its ends.
func WhitePoint(temp int) [3]float64 {
	if temp <= MinTemperature {
		return blackbodyColor[0]
	}
	if temp >= MaxTemperature {
		return blackbodyColor[len(blackbodyColor)-1]
	}

	index := (temp - MinTemperature) / TableStep
	alpha := float64((temp-MinTemperature)%TableStep) / TableStep

	floor := blackbodyColor[index]
	if alpha == 0 {
		return floor
	}
	ceil := blackbodyColor[index+1]

	var wp [3]float64
	for c := range wp {
		wp[c] = (1-alpha)*floor[c] + alpha*ceil[c]
	}
	return wp
}

// Fill applies the setting in place to 16-bit ramps. Each channel may have
// its own length.
func Fill(r, g, b []uint16, setting shift.ColorSetting) {
	wp := WhitePoint(setting.Temperature)

	for c, ramp := range [3][]uint16{r, g, b} {
		for i, v := range ramp {
			y := adjust(float64(v)/(math.MaxUint16+1), wp[c], setting.Brightness, setting.Gamma[c])
			ramp[i] = toUint16(y * (math.MaxUint16 + 1))
		}
	}
}

// FillFloat applies the setting in place to ramps normalized to [0, 1]
func FillFloat(r, g, b []float64, setting shift.ColorSetting) {
	wp := WhitePoint(setting.Temperature)

	for c, ramp := range [3][]float64{r, g, b} {
		for i, v := range ramp {
			y := adjust(v, wp[c], setting.Brightness, setting.Gamma[c])
			ramp[i] = math.Max(0, math.Min(1, y))
		}
	}
}

// LinearRamp returns the identity ramp of the given size
func LinearRamp(size int) []uint16 {
	if size <= 0 {
		return nil
	}
	ramp := make([]uint16, size)
	if size == 1 {
		return ramp
	}
	for i := range ramp {
		ramp[i] = uint16(uint64(i) * math.MaxUint16 / uint64(size-1))
	}
	return ramp
}

// LinearRamps returns three independent identity ramps
func LinearRamps(size int) (r, g, b []uint16) {
	return LinearRamp(size), LinearRamp(size), LinearRamp(size)
}

func adjust(y, whitePoint, brightness, gamma float64) float64 {
	return math.Pow(y*brightness*whitePoint, 1.0/gamma)
}

func toUint16(v float64) uint16 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(v)
	}
}
