package shift

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressFromElevation_Endpoints(t *testing.T) {
	scheme := DefaultScheme()

	assert.Equal(t, 0.0, ProgressFromElevation(scheme, scheme.Low))
	assert.Equal(t, 1.0, ProgressFromElevation(scheme, scheme.High))
	assert.Equal(t, 0.0, ProgressFromElevation(scheme, -40), "below low is clamped to night")
	assert.Equal(t, 1.0, ProgressFromElevation(scheme, 60), "above high is clamped to day")
}

func TestProgressFromElevation_StrictlyIncreasing(t *testing.T) {
	scheme := DefaultScheme()

	prev := ProgressFromElevation(scheme, scheme.Low)
	for elev := scheme.Low + 0.25; elev <= scheme.High; elev += 0.25 {
		p := ProgressFromElevation(scheme, elev)
		assert.Greater(t, p, prev, "progress must increase at elevation %.2f", elev)
		prev = p
	}
}

func TestEvaluate_TransitionMidpoint(t *testing.T) {
	scheme := DefaultScheme()
	scheme.Low = -6
	scheme.High = 3
	scheme.Night.Temperature = 3500
	scheme.Day.Temperature = 6500

	period, progress, setting := Evaluate(scheme, -1.5)

	assert.Equal(t, PeriodTransition, period)
	assert.InDelta(t, 0.5, progress, 1e-9)
	assert.Equal(t, 5000, setting.Temperature)
	assert.InDelta(t, 1.0, setting.Brightness, 1e-9)
}

func TestPeriodFromElevation(t *testing.T) {
	scheme := DefaultScheme()

	testCases := []struct {
		elevation float64
		expected  Period
	}{
		{45, PeriodDaytime},
		{3, PeriodDaytime},
		{0, PeriodTransition},
		{-6, PeriodNight},
		{-30, PeriodNight},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, PeriodFromElevation(scheme, tc.elevation), "elevation %.1f", tc.elevation)
	}
}

func TestInterpolateScheme_ComponentWise(t *testing.T) {
	scheme := DefaultScheme()
	scheme.Night = ColorSetting{Temperature: 3000, Gamma: [3]float64{0.8, 0.9, 1.0}, Brightness: 0.6}
	scheme.Day = ColorSetting{Temperature: 6001, Gamma: [3]float64{1.0, 1.0, 1.0}, Brightness: 1.0}

	night := InterpolateScheme(scheme, 0)
	assert.Equal(t, scheme.Night, night)

	day := InterpolateScheme(scheme, 1)
	assert.Equal(t, scheme.Day, day)

	mid := InterpolateScheme(scheme, 0.5)
	assert.Equal(t, 4501, mid.Temperature, "4500.5 rounds to nearest")
	assert.InDelta(t, 0.8, mid.Brightness, 1e-9)
	assert.InDelta(t, 0.9, mid.Gamma[0], 1e-9)
	assert.InDelta(t, 0.95, mid.Gamma[1], 1e-9)
	assert.InDelta(t, 1.0, mid.Gamma[2], 1e-9)

	assert.Equal(t, scheme.Day, InterpolateScheme(scheme, 1.7), "progress is clamped")
}

func TestProgressFromTime(t *testing.T) {
	scheme := DefaultScheme()
	scheme.UseTime = true
	scheme.Dawn = TimeRange{Start: 6 * 3600, End: 7 * 3600}
	scheme.Dusk = TimeRange{Start: 20 * 3600, End: 21 * 3600}

	assert.Equal(t, 0.0, ProgressFromTime(scheme, 3*3600))
	assert.InDelta(t, 0.5, ProgressFromTime(scheme, 6*3600+1800), 1e-9)
	assert.Equal(t, 1.0, ProgressFromTime(scheme, 12*3600))
	assert.InDelta(t, 0.25, ProgressFromTime(scheme, 20*3600+2700), 1e-9)
	assert.Equal(t, 0.0, ProgressFromTime(scheme, 23*3600))

	assert.Equal(t, PeriodNight, PeriodFromTime(scheme, 3*3600))
	assert.Equal(t, PeriodTransition, PeriodFromTime(scheme, 6*3600+1))
	assert.Equal(t, PeriodDaytime, PeriodFromTime(scheme, 12*3600))
	assert.Equal(t, PeriodNight, PeriodFromTime(scheme, 21*3600))
}

func TestTransitionScheme_Validate(t *testing.T) {
	scheme := DefaultScheme()
	require.NoError(t, scheme.Validate())

	scheme.High = -10
	err := scheme.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "elevation-high", verr.Field)

	scheme = DefaultScheme()
	scheme.Night.Temperature = 900
	assert.Error(t, scheme.Validate())

	scheme = DefaultScheme()
	scheme.Day.Brightness = 1.5
	assert.Error(t, scheme.Validate())

	scheme = DefaultScheme()
	scheme.Night.Gamma[2] = 0.01
	assert.Error(t, scheme.Validate())

	nan := math.NaN()
	for name, modify := range map[string]func(*TransitionScheme){
		"NaN elevation high": func(s *TransitionScheme) { s.High = nan },
		"NaN elevation low":  func(s *TransitionScheme) { s.Low = nan },
		"infinite high":      func(s *TransitionScheme) { s.High = math.Inf(1) },
		"NaN brightness":     func(s *TransitionScheme) { s.Night.Brightness = nan },
		"NaN gamma":          func(s *TransitionScheme) { s.Day.Gamma[0] = nan },
	} {
		scheme = DefaultScheme()
		modify(&scheme)
		err := scheme.Validate()
		assert.True(t, errors.As(err, &verr), name)
	}
}

func TestLocation_Validate(t *testing.T) {
	assert.NoError(t, Location{Lat: 60.17, Lon: 24.94}.Validate())
	assert.Error(t, Location{Lat: 91, Lon: 0}.Validate())
	assert.Error(t, Location{Lat: 0, Lon: -181}.Validate())
	assert.Error(t, Location{Lat: math.NaN(), Lon: 0}.Validate())
	assert.Error(t, Location{Lat: 0, Lon: math.NaN()}.Validate())
}

func TestParseBrightness(t *testing.T) {
	day, night, err := ParseBrightness("0.8")
	require.NoError(t, err)
	assert.Equal(t, 0.8, day)
	assert.Equal(t, 0.8, night)

	day, night, err = ParseBrightness("1.0:0.7")
	require.NoError(t, err)
	assert.Equal(t, 1.0, day)
	assert.Equal(t, 0.7, night)

	_, _, err = ParseBrightness("1:2:3")
	assert.Error(t, err)
	_, _, err = ParseBrightness("bright")
	assert.Error(t, err)
	_, _, err = ParseBrightness("NaN")
	assert.Error(t, err)
	_, _, err = ParseBrightness("1.0:nan")
	assert.Error(t, err)
	_, _, err = ParseBrightness("+Inf")
	assert.Error(t, err)
}

func TestParseGamma(t *testing.T) {
	g, err := ParseGamma("0.9")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0.9, 0.9, 0.9}, g)

	g, err = ParseGamma("0.8:0.9:1.0")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0.8, 0.9, 1.0}, g)

	_, err = ParseGamma("0.8:0.9")
	assert.Error(t, err)
	_, err = ParseGamma("1.0:NaN:1.0")
	assert.Error(t, err)
}

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("06:00-07:45")
	require.NoError(t, err)
	assert.Equal(t, TimeRange{Start: 21600, End: 27900}, r)

	r, err = ParseTimeRange("18:30")
	require.NoError(t, err)
	assert.Equal(t, TimeRange{Start: 66600, End: 66600}, r)

	_, err = ParseTimeRange("25:00")
	assert.Error(t, err)
	_, err = ParseTimeRange("6h")
	assert.Error(t, err)
}

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("60.17:24.94")
	require.NoError(t, err)
	assert.Equal(t, Location{Lat: 60.17, Lon: 24.94}, loc)

	loc, err = ParseLocation("-33.87:151.21")
	require.NoError(t, err)
	assert.Equal(t, -33.87, loc.Lat)

	_, err = ParseLocation("60.17")
	assert.Error(t, err)
	_, err = ParseLocation("95:0")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "latitude", verr.Field)

	_, err = ParseLocation("NaN:NaN")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "latitude", verr.Field)
}
