package solar

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Event names an entry of the daily solar table
type Event int

const (
	Noon Event = iota
	Midnight
	AstroDawn
	NautDawn
	CivilDawn
	Sunrise
	Sunset
	CivilDusk
	NautDusk
	AstroDusk

	numEvents
)

var eventNames = [numEvents]string{
	Noon:      "noon",
	Midnight:  "midnight",
	AstroDawn: "astronomical dawn",
	NautDawn:  "nautical dawn",
	CivilDawn: "civil dawn",
	Sunrise:   "sunrise",
	Sunset:    "sunset",
	CivilDusk: "civil dusk",
	NautDusk:  "nautical dusk",
	AstroDusk: "astronomical dusk",
}

func (e Event) String() string {
	if e < 0 || e >= numEvents {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

// Events lists every event in table order
func Events() []Event {
	events := make([]Event, numEvents)
	for i := range events {
		events[i] = Event(i)
	}
	return events
}

// eventElevation maps the twilight, rise and set events to their elevation
// and whether they happen before noon
var eventElevation = map[Event]struct {
	elevation float64
	morning   bool
}{
	AstroDawn: {AstronomicalTwilight, true},
	NautDawn:  {NauticalTwilight, true},
	CivilDawn: {CivilTwilight, true},
	Sunrise:   {Daytime, true},
	Sunset:    {Daytime, false},
	CivilDusk: {CivilTwilight, false},
	NautDusk:  {NauticalTwilight, false},
	AstroDusk: {AstronomicalTwilight, false},
}

// Table holds the times of the solar events for one day. An event that does
// not occur on that day at that latitude (polar day or night) is undefined.
type Table struct {
	times   [numEvents]time.Time
	defined [numEvents]bool
}

// Time returns the UTC time of the event and whether it occurs at all
func (tbl Table) Time(e Event) (time.Time, bool) {
	if e < 0 || e >= numEvents || !tbl.defined[e] {
		return time.Time{}, false
	}
	return tbl.times[e], true
}

func (tbl Table) String() string {
	var b strings.Builder
	for _, e := range Events() {
		if t, ok := tbl.Time(e); ok {
			fmt.Fprintf(&b, "%s: %s\n", e, t.Format(time.RFC3339))
		} else {
			fmt.Fprintf(&b, "%s: none\n", e)
		}
	}
	return b.String()
}

func (tbl *Table) set(e Event, jd float64) {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return
	}
	tbl.times[e] = timeFromJD(jd)
	tbl.defined[e] = true
}

// FillTable computes the solar events of the UTC day containing date for the
// given latitude and longitude in degrees.
func FillTable(date time.Time, lat, lon float64) Table {
	var tbl Table

	jdn := math.Round(julianDay(date))
	t := jcentFromJD(jdn)

	solNoon := timeOfSolarNoon(t, lon)
	jNoon := jdn - 0.5 + solNoon/minutesDay
	tNoon := jcentFromJD(jNoon)

	tbl.set(Noon, jNoon)
	tbl.set(Midnight, jNoon+0.5)

	for e, ev := range eventElevation {
		// Morning events use a negative zenith angle to pick the hour angle before noon
		zenith := rad(90 - ev.elevation)
		if ev.morning {
			zenith = -zenith
		}

		offset := timeOfSolarElevation(t, tNoon, lat, lon, zenith)
		tbl.set(e, jdn-0.5+offset/minutesDay)
	}

	return tbl
}
