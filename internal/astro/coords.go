// Package astro provides the solar geometry used to judge sky brightness at
// the observing site.
package astro

import (
	"math"
	"time"
)

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string
}

// Bermuda is the fixed observing site.
var Bermuda = Observer{LatDeg: 32.3078, LonDeg: -64.7505, Name: "Bermuda"}

// J2000 is the Julian Date of the J2000.0 epoch.
const J2000 = 2451545.0

// julianDate calculates the Julian Date for a given time.
func julianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())

	dayFrac := (h + min/60 + sec/3600) / 24.0

	// January/February count as months 13/14 of the previous year
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

// JulianDate exposes julianDate for callers outside the package.
func JulianDate(t time.Time) float64 {
	return julianDate(t)
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle360 normalizes an angle to [0, 360).
func NormalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod(-1e-15, 360) + 360 rounds to 360
	if a >= 360 {
		a -= 360
	}
	return a
}
