package shift

import (
	"fmt"
	"math"
)

// NeutralTemperature is the color temperature at which no adjustment is applied
const NeutralTemperature = 6500

// Bounds for user supplied parameters
const (
	MinLatitude   = -90.0
	MaxLatitude   = 90.0
	MinLongitude  = -180.0
	MaxLongitude  = 180.0
	MinTemp       = 1000
	MaxTemp       = 25000
	MinBrightness = 0.1
	MaxBrightness = 1.0
	MinGamma      = 0.1
	MaxGamma      = 10.0
)

// Location is a geographic position in degrees, negative values being south / west
type Location struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Validate checks that the coordinates are within range
func (l Location) Validate() error {
	if !inRange(l.Lat, MinLatitude, MaxLatitude) {
		return &ValidationError{Field: "latitude", Value: l.Lat,
			Reason: fmt.Sprintf("must be between %.0f and %.0f", MinLatitude, MaxLatitude)}
	}
	if !inRange(l.Lon, MinLongitude, MaxLongitude) {
		return &ValidationError{Field: "longitude", Value: l.Lon,
			Reason: fmt.Sprintf("must be between %.0f and %.0f", MinLongitude, MaxLongitude)}
	}
	return nil
}

func (l Location) String() string {
	return fmt.Sprintf("%.4f, %.4f", l.Lat, l.Lon)
}

// ColorSetting is a complete display adjustment: temperature, per-channel gamma and brightness
type ColorSetting struct {
	Temperature int        `json:"temperature"`
	Gamma       [3]float64 `json:"gamma"`
	Brightness  float64    `json:"brightness"`
}

// Neutral returns the setting that leaves the display unchanged
func Neutral() ColorSetting {
	return ColorSetting{
		Temperature: NeutralTemperature,
		Gamma:       [3]float64{1.0, 1.0, 1.0},
		Brightness:  1.0,
	}
}

// IsNeutral reports whether the setting equals Neutral()
func (c ColorSetting) IsNeutral() bool {
	return c == Neutral()
}

// Validate checks temperature, gamma and brightness bounds. The label is used
// as a prefix in error messages (e.g. "day", "night").
func (c ColorSetting) Validate(label string) error {
	if c.Temperature < MinTemp || c.Temperature > MaxTemp {
		return &ValidationError{Field: label + " temperature", Value: c.Temperature,
			Reason: fmt.Sprintf("must be between %d and %d", MinTemp, MaxTemp)}
	}
	for i, g := range c.Gamma {
		if !inRange(g, MinGamma, MaxGamma) {
			return &ValidationError{Field: fmt.Sprintf("%s gamma[%d]", label, i), Value: g,
				Reason: fmt.Sprintf("must be between %.1f and %.1f", MinGamma, MaxGamma)}
		}
	}
	if !inRange(c.Brightness, MinBrightness, MaxBrightness) {
		return &ValidationError{Field: label + " brightness", Value: c.Brightness,
			Reason: fmt.Sprintf("must be between %.1f and %.1f", MinBrightness, MaxBrightness)}
	}
	return nil
}

func (c ColorSetting) String() string {
	return fmt.Sprintf("%dK, brightness %.2f, gamma %.2f:%.2f:%.2f",
		c.Temperature, c.Brightness, c.Gamma[0], c.Gamma[1], c.Gamma[2])
}

// Period classifies the current solar state
type Period int

const (
	PeriodNone Period = iota
	PeriodDaytime
	PeriodNight
	PeriodTransition
)

func (p Period) String() string {
	switch p {
	case PeriodDaytime:
		return "Daytime"
	case PeriodNight:
		return "Night"
	case PeriodTransition:
		return "Transition"
	default:
		return "None"
	}
}

// TimeRange is a window in seconds since local midnight
type TimeRange struct {
	Start int
	End   int
}

// TransitionScheme holds the day/night settings and the thresholds between them.
// A scheme is built once per run and treated as read-only afterwards.
type TransitionScheme struct {
	High float64 // elevation at and above which it is day
	Low  float64 // elevation at and below which it is night

	// Optional fixed dawn/dusk windows replacing the elevation thresholds
	UseTime bool
	Dawn    TimeRange
	Dusk    TimeRange

	Day   ColorSetting
	Night ColorSetting
}

// DefaultScheme returns the default scheme: civil twilight to a few degrees above the horizon, 3500K at night
func DefaultScheme() TransitionScheme {
	night := Neutral()
	night.Temperature = 3500

	return TransitionScheme{
		High:  3.0,
		Low:   -6.0,
		Day:   Neutral(),
		Night: night,
	}
}

// Validate checks both color settings and the threshold ordering
func (s TransitionScheme) Validate() error {
	if err := s.Day.Validate("day"); err != nil {
		return err
	}
	if err := s.Night.Validate("night"); err != nil {
		return err
	}

	if s.UseTime {
		if s.Dawn.Start > s.Dawn.End {
			return &ValidationError{Field: "dawn", Value: s.Dawn, Reason: "start must not be after end"}
		}
		if s.Dusk.Start > s.Dusk.End {
			return &ValidationError{Field: "dusk", Value: s.Dusk, Reason: "start must not be after end"}
		}
		if s.Dawn.End > s.Dusk.Start {
			return &ValidationError{Field: "dawn", Value: s.Dawn, Reason: "must end before dusk starts"}
		}
		return nil
	}

	for _, e := range []struct {
		field string
		value float64
	}{{"elevation-high", s.High}, {"elevation-low", s.Low}} {
		if math.IsNaN(e.value) || math.IsInf(e.value, 0) {
			return &ValidationError{Field: e.field, Value: e.value, Reason: "must be a finite number"}
		}
	}
	if s.High <= s.Low {
		return &ValidationError{Field: "elevation-high", Value: s.High,
			Reason: fmt.Sprintf("must be greater than elevation-low (%.2f)", s.Low)}
	}
	return nil
}

// inRange reports whether v lies in [lo, hi]. NaN is never in range.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
