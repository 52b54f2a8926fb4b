// Package solar computes the sun's elevation and the daily table of solar
// events (noon, twilight boundaries, sunrise and sunset) using the low
// precision algorithms from Jean Meeus, "Astronomical Algorithms".
package solar

import (
	"math"
	"time"
)

// Elevation angles in degrees that delimit the solar events
const (
	AstronomicalTwilight = -18.0
	NauticalTwilight     = -12.0
	CivilTwilight        = -6.0
	// Refraction plus the apparent radius of the solar disc
	Daytime = -0.833
)

const (
	unixEpochJD = 2440587.5
	j2000       = 2451545.0
	secondsDay  = 86400.0
	minutesDay  = 1440.0
)

// Elevation returns the solar elevation in degrees above the horizon at time t
// for the given latitude and longitude (degrees, east positive).
func Elevation(t time.Time, lat, lon float64) float64 {
	return elevationFromTime(jcentFromJD(julianDay(t)), lat, lon)
}

func elevationFromTime(t, lat, lon float64) float64 {
	jd := jdFromJcent(t)
	offset := (jd - math.Round(jd) - 0.5) * minutesDay

	eqTime := equationOfTime(t)
	ha := rad((720-offset-eqTime)/4 - lon)
	decl := solarDeclination(t)

	return deg(elevationFromHourAngle(rad(lat), decl, ha))
}

func julianDay(t time.Time) float64 {
	secs := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return secs/secondsDay + unixEpochJD
}

func timeFromJD(jd float64) time.Time {
	secs := (jd - unixEpochJD) * secondsDay
	return time.Unix(0, int64(math.Round(secs*1e3))*int64(time.Millisecond)).UTC()
}

// Julian centuries since J2000.0
func jcentFromJD(jd float64) float64 {
	return (jd - j2000) / 36525.0
}

func jdFromJcent(t float64) float64 {
	return 36525.0*t + j2000
}

func sunGeomMeanLon(t float64) float64 {
	return rad(math.Mod(280.46646+t*(36000.76983+t*0.0003032), 360))
}

func sunGeomMeanAnomaly(t float64) float64 {
	return rad(357.52911 + t*(35999.05029-t*0.0001537))
}

func earthOrbitEccentricity(t float64) float64 {
	return 0.016708634 - t*(0.000042037+t*0.0000001267)
}

func sunEquationOfCenter(t float64) float64 {
	m := sunGeomMeanAnomaly(t)
	c := math.Sin(m)*(1.914602-t*(0.004817+0.000014*t)) +
		math.Sin(2*m)*(0.019993-0.000101*t) +
		math.Sin(3*m)*0.000289
	return rad(c)
}

func sunTrueLon(t float64) float64 {
	return sunGeomMeanLon(t) + sunEquationOfCenter(t)
}

func sunApparentLon(t float64) float64 {
	o := deg(sunTrueLon(t))
	return rad(o - 0.00569 - 0.00478*math.Sin(rad(125.04-1934.136*t)))
}

func meanEclipticObliquity(t float64) float64 {
	sec := 21.448 - t*(46.815+t*(0.00059-t*0.001813))
	return rad(23.0 + (26.0+sec/60.0)/60.0)
}

// Mean obliquity corrected for nutation
func obliquityCorr(t float64) float64 {
	e0 := meanEclipticObliquity(t)
	omega := 125.04 - t*1934.136
	return rad(deg(e0) + 0.00256*math.Cos(rad(omega)))
}

func solarDeclination(t float64) float64 {
	e := obliquityCorr(t)
	lambda := sunApparentLon(t)
	return math.Asin(math.Sin(e) * math.Sin(lambda))
}

// equationOfTime returns the difference between apparent and mean solar time in minutes
func equationOfTime(t float64) float64 {
	epsilon := obliquityCorr(t)
	l0 := sunGeomMeanLon(t)
	e := earthOrbitEccentricity(t)
	m := sunGeomMeanAnomaly(t)
	y := math.Pow(math.Tan(epsilon/2), 2)

	eqTime := y*math.Sin(2*l0) - 2*e*math.Sin(m) +
		4*e*y*math.Sin(m)*math.Cos(2*l0) -
		0.5*y*y*math.Sin(4*l0) -
		1.25*e*e*math.Sin(2*m)
	return 4 * deg(eqTime)
}

// hourAngleFromElevation returns the hour angle at which the sun's zenith
// angle equals |elev|. The sign of elev selects morning (negative) or
// evening (positive). NaN means the sun never reaches that angle.
func hourAngleFromElevation(lat, decl, elev float64) float64 {
	omega := math.Acos((math.Cos(math.Abs(elev)) - math.Sin(lat)*math.Sin(decl)) /
		(math.Cos(lat) * math.Cos(decl)))
	return math.Copysign(omega, -elev)
}

func elevationFromHourAngle(lat, decl, ha float64) float64 {
	return math.Asin(math.Cos(ha)*math.Cos(lat)*math.Cos(decl) + math.Sin(lat)*math.Sin(decl))
}

// timeOfSolarNoon returns apparent solar noon in minutes after 00:00 UTC of
// the day t refers to. The equation of time is refined once at the first estimate.
func timeOfSolarNoon(t, lon float64) float64 {
	tNoon := jcentFromJD(jdFromJcent(t) - lon/360)
	solNoon := 720 - 4*lon - equationOfTime(tNoon)

	tNoon = jcentFromJD(jdFromJcent(t) - 0.5 + solNoon/minutesDay)
	return 720 - 4*lon - equationOfTime(tNoon)
}

// timeOfSolarElevation returns the time in minutes after 00:00 UTC at which
// the sun reaches the zenith angle elev. The first estimate uses the values
// at noon, the second recomputes them at the estimated event time.
func timeOfSolarElevation(t, tNoon, lat, lon, elev float64) float64 {
	offset := solarOffset(tNoon, lat, lon, elev)
	if math.IsNaN(offset) {
		return offset
	}

	tEvent := jcentFromJD(jdFromJcent(t) - 0.5 + offset/minutesDay)
	return solarOffset(tEvent, lat, lon, elev)
}

func solarOffset(t, lat, lon, elev float64) float64 {
	eqTime := equationOfTime(t)
	decl := solarDeclination(t)
	ha := hourAngleFromElevation(rad(lat), decl, elev)
	return 720 - 4*(lon+deg(ha)) - eqTime
}

func rad(d float64) float64 { return d * math.Pi / 180 }

func deg(r float64) float64 { return r * 180 / math.Pi }
