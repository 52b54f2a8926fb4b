package location

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/saaga0h/nightshift/internal/shift"
)

// ManualSource returns a fixed location set through options
type ManualSource struct {
	lat, lon       float64
	hasLat, hasLon bool
}

// NewManualSource creates a source without a location, set it with SetOption
func NewManualSource() *ManualSource {
	return &ManualSource{}
}

// NewManualSourceAt creates a source returning loc
func NewManualSourceAt(loc shift.Location) *ManualSource {
	return &ManualSource{lat: loc.Lat, lon: loc.Lon, hasLat: true, hasLon: true}
}

func (m *ManualSource) Init() error { return nil }

func (m *ManualSource) Start(ctx context.Context) error {
	if !m.hasLat || !m.hasLon {
		return errors.New("latitude and longitude must be set")
	}
	return nil
}

func (m *ManualSource) Location(ctx context.Context) (shift.Location, error) {
	if !m.hasLat || !m.hasLon {
		return shift.Location{}, ErrNoLocation
	}
	return shift.Location{Lat: m.lat, Lon: m.lon}, nil
}

// SetOption accepts "lat" and "lon" in degrees
func (m *ManualSource) SetOption(key, value string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return &shift.ValidationError{Field: key, Value: value, Reason: "not a number"}
	}

	switch strings.ToLower(key) {
	case "lat":
		m.lat, m.hasLat = v, true
	case "lon":
		m.lon, m.hasLon = v, true
	default:
		return fmt.Errorf("unknown manual location option: %s", key)
	}
	return nil
}

func (m *ManualSource) Name() string { return "manual" }

func (m *ManualSource) Close() error { return nil }
