// Package fade smooths changes of the color setting over a fixed number of
// short ticks so that large jumps are never applied at once.
package fade

import (
	"math"

	"github.com/saaga0h/nightshift/internal/shift"
)

// Steps is the length of a fade in short ticks
const Steps = 40

// Thresholds above which a change is applied as a fade
const (
	MajorTemperatureDiff = 25
	MajorBrightnessDiff  = 0.1
	MajorGammaDiff       = 0.1
)

// Ease is the cubic smoothstep t²(3-2t): Ease(0)=0, Ease(0.5)=0.5, Ease(1)=1
func Ease(t float64) float64 {
	return t * t * (3 - 2*t)
}

// IsMajor reports whether two settings differ enough to need a fade
func IsMajor(a, b shift.ColorSetting) bool {
	if math.Abs(float64(a.Temperature-b.Temperature)) > MajorTemperatureDiff {
		return true
	}
	if math.Abs(a.Brightness-b.Brightness) > MajorBrightnessDiff {
		return true
	}
	for i := range a.Gamma {
		if math.Abs(a.Gamma[i]-b.Gamma[i]) > MajorGammaDiff {
			return true
		}
	}
	return false
}

// Interpolate blends a towards b. alpha is clamped to [0, 1] and the
// temperature is rounded to the nearest Kelvin.
func Interpolate(a, b shift.ColorSetting, alpha float64) shift.ColorSetting {
	alpha = math.Max(0, math.Min(1, alpha))

	result := shift.ColorSetting{
		Temperature: int(math.Round((1-alpha)*float64(a.Temperature) + alpha*float64(b.Temperature))),
		Brightness:  (1-alpha)*a.Brightness + alpha*b.Brightness,
	}
	for i := range result.Gamma {
		result.Gamma[i] = (1-alpha)*a.Gamma[i] + alpha*b.Gamma[i]
	}
	return result
}

// Engine tracks the setting currently on the display and moves it towards
// the target one tick at a time. The zero value is not usable, use NewEngine.
type Engine struct {
	current    shift.ColorSetting
	prevTarget shift.ColorSetting
	start      shift.ColorSetting
	fading     bool
	step       int
}

// NewEngine returns an idle engine whose current setting and previous target are neutral
func NewEngine() *Engine {
	return &Engine{
		current:    shift.Neutral(),
		prevTarget: shift.Neutral(),
	}
}

// Advance performs one tick towards target and returns the setting to apply.
//
// A fade starts when idle and the target differs majorly from the current
// setting, or when already fading and the target itself moved majorly since
// the previous tick. A restarted fade begins from the current setting. Minor
// differences while idle are applied immediately.
func (e *Engine) Advance(target shift.ColorSetting) shift.ColorSetting {
	if (!e.fading && IsMajor(e.current, target)) || (e.fading && IsMajor(target, e.prevTarget)) {
		e.fading = true
		e.step = 0
		e.start = e.current
	}

	if e.fading {
		e.step++
		alpha := Ease(math.Min(1, float64(e.step)/Steps))
		e.current = Interpolate(e.start, target, alpha)

		if e.step > Steps {
			e.fading = false
			e.step = 0
		}
	} else {
		e.current = target
	}

	e.prevTarget = target
	return e.current
}

// Current returns the setting produced by the last Advance
func (e *Engine) Current() shift.ColorSetting {
	return e.current
}

// Fading reports whether a fade is in progress
func (e *Engine) Fading() bool {
	return e.fading
}

// Step returns the number of ticks taken in the current fade
func (e *Engine) Step() int {
	return e.step
}
