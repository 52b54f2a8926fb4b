package shift

import "math"

// ProgressFromElevation returns how far through the transition the sun is,
// from 0.0 (night) to 1.0 (day). Elevations outside [Low, High] are clamped.
func ProgressFromElevation(scheme TransitionScheme, elevation float64) float64 {
	if elevation <= scheme.Low {
		return 0.0
	}
	if elevation >= scheme.High {
		return 1.0
	}
	return (elevation - scheme.Low) / (scheme.High - scheme.Low)
}

// PeriodFromElevation classifies the solar elevation against the scheme thresholds
func PeriodFromElevation(scheme TransitionScheme, elevation float64) Period {
	switch {
	case elevation >= scheme.High:
		return PeriodDaytime
	case elevation <= scheme.Low:
		return PeriodNight
	default:
		return PeriodTransition
	}
}

// ProgressFromTime is the fixed-window counterpart of ProgressFromElevation.
// offset is the number of seconds since local midnight.
func ProgressFromTime(scheme TransitionScheme, offset int) float64 {
	t := float64(offset)
	dawnStart, dawnEnd := float64(scheme.Dawn.Start), float64(scheme.Dawn.End)
	duskStart, duskEnd := float64(scheme.Dusk.Start), float64(scheme.Dusk.End)

	switch {
	case t < dawnStart || t >= duskEnd:
		return 0.0
	case t < dawnEnd:
		return (t - dawnStart) / (dawnEnd - dawnStart)
	case t > duskStart:
		return (duskEnd - t) / (duskEnd - duskStart)
	default:
		return 1.0
	}
}

// PeriodFromTime classifies a time of day against the dawn and dusk windows
func PeriodFromTime(scheme TransitionScheme, offset int) Period {
	switch {
	case offset < scheme.Dawn.Start || offset >= scheme.Dusk.End:
		return PeriodNight
	case offset >= scheme.Dawn.End && offset <= scheme.Dusk.Start:
		return PeriodDaytime
	default:
		return PeriodTransition
	}
}

// InterpolateScheme blends the night and day settings by progress (0 = night, 1 = day).
// Temperature is rounded to the nearest Kelvin, gamma and brightness stay fractional.
func InterpolateScheme(scheme TransitionScheme, progress float64) ColorSetting {
	alpha := clamp01(progress)
	night, day := scheme.Night, scheme.Day

	result := ColorSetting{
		Temperature: int(math.Round((1-alpha)*float64(night.Temperature) + alpha*float64(day.Temperature))),
		Brightness:  (1-alpha)*night.Brightness + alpha*day.Brightness,
	}
	for i := range result.Gamma {
		result.Gamma[i] = (1-alpha)*night.Gamma[i] + alpha*day.Gamma[i]
	}
	return result
}

// Evaluate classifies the elevation and returns the period, the transition
// progress and the interpolated target setting
func Evaluate(scheme TransitionScheme, elevation float64) (Period, float64, ColorSetting) {
	progress := ProgressFromElevation(scheme, elevation)
	return PeriodFromElevation(scheme, elevation), progress, InterpolateScheme(scheme, progress)
}

// EvaluateTime is Evaluate for schemes using fixed dawn/dusk windows
func EvaluateTime(scheme TransitionScheme, offset int) (Period, float64, ColorSetting) {
	progress := ProgressFromTime(scheme, offset)
	return PeriodFromTime(scheme, offset), progress, InterpolateScheme(scheme, progress)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
