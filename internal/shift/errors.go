package shift

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidationError reports an out-of-range or malformed setting. It is always
// fatal and is detected before the continual loop starts.
type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// ParseBrightness parses "V" (same for day and night) or "DAY:NIGHT"
func ParseBrightness(s string) (day, night float64, err error) {
	parts := strings.Split(s, ":")

	switch len(parts) {
	case 1:
		v, err := parseNumber(parts[0])
		if err != nil {
			return 0, 0, &ValidationError{Field: "brightness", Value: s, Reason: "not a number"}
		}
		return v, v, nil
	case 2:
		day, err = parseNumber(parts[0])
		if err != nil {
			return 0, 0, &ValidationError{Field: "day brightness", Value: parts[0], Reason: "not a number"}
		}
		night, err = parseNumber(parts[1])
		if err != nil {
			return 0, 0, &ValidationError{Field: "night brightness", Value: parts[1], Reason: "not a number"}
		}
		return day, night, nil
	default:
		return 0, 0, &ValidationError{Field: "brightness", Value: s, Reason: "must be a single value or DAY:NIGHT"}
	}
}

// ParseGamma parses "V" (same for all channels) or "R:G:B"
func ParseGamma(s string) ([3]float64, error) {
	var gamma [3]float64
	parts := strings.Split(s, ":")

	switch len(parts) {
	case 1:
		v, err := parseNumber(parts[0])
		if err != nil {
			return gamma, &ValidationError{Field: "gamma", Value: s, Reason: "not a number"}
		}
		return [3]float64{v, v, v}, nil
	case 3:
		channels := []string{"red", "green", "blue"}
		for i, p := range parts {
			v, err := parseNumber(p)
			if err != nil {
				return gamma, &ValidationError{Field: channels[i] + " gamma", Value: p, Reason: "not a number"}
			}
			gamma[i] = v
		}
		return gamma, nil
	default:
		return gamma, &ValidationError{Field: "gamma", Value: s, Reason: "must be a single value or R:G:B"}
	}
}

// ParseTimeRange parses "HH:MM" or "HH:MM-HH:MM" into seconds since midnight
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) > 2 {
		return TimeRange{}, &ValidationError{Field: "time range", Value: s, Reason: "must be HH:MM or HH:MM-HH:MM"}
	}

	start, err := parseClock(parts[0])
	if err != nil {
		return TimeRange{}, err
	}
	end := start
	if len(parts) == 2 {
		if end, err = parseClock(parts[1]); err != nil {
			return TimeRange{}, err
		}
	}

	return TimeRange{Start: start, End: end}, nil
}

func parseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, &ValidationError{Field: "time", Value: s, Reason: "must be in HH:MM format"}
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, &ValidationError{Field: "time", Value: s, Reason: "hours must be 0-23"}
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, &ValidationError{Field: "time", Value: s, Reason: "minutes must be 0-59"}
	}

	return hours*3600 + minutes*60, nil
}

// ParseLocation parses "LAT:LON" in degrees and validates the range
func ParseLocation(s string) (Location, error) {
	latStr, lonStr, ok := strings.Cut(s, ":")
	if !ok {
		return Location{}, &ValidationError{Field: "location", Value: s, Reason: "must be LAT:LON"}
	}

	lat, err := parseNumber(latStr)
	if err != nil {
		return Location{}, &ValidationError{Field: "latitude", Value: latStr, Reason: "not a number"}
	}
	lon, err := parseNumber(lonStr)
	if err != nil {
		return Location{}, &ValidationError{Field: "longitude", Value: lonStr, Reason: "not a number"}
	}

	loc := Location{Lat: lat, Lon: lon}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

var errNotFinite = errors.New("not a finite number")

// parseNumber parses a decimal, rejecting NaN and infinities
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}
