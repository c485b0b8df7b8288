package astro

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/litescript/ls-launchview/internal/tz"
)

// Obliquity of the ecliptic in degrees, fixed for the whole system.
const Obliquity = 23.439

// Declination returns the sun's declination in degrees at t.
// Uses the low-precision almanac series in days since J2000.0 (about 0.01°).
func Declination(t time.Time) float64 {
	n := julianDate(t) - J2000

	// Mean anomaly and mean longitude (degrees)
	g := NormalizeAngle360(357.529 + 0.98560028*n)
	q := NormalizeAngle360(280.459 + 0.98564736*n)

	// Equation of center
	gRad := degToRad(g)
	lambda := q +
		1.914602*math.Sin(gRad) +
		0.019993*math.Sin(2*gRad) +
		0.000289*math.Sin(3*gRad)

	dec := math.Asin(math.Sin(degToRad(Obliquity)) * math.Sin(degToRad(lambda)))
	return radToDeg(dec)
}

// SolarCalculator computes sun elevation for the fixed observing site. The
// hour angle is taken from the site's civil clock, so the calculator shares
// the offset resolver with the rest of the pipeline.
type SolarCalculator struct {
	observer Observer
	zones    *tz.Resolver
}

// NewSolarCalculator creates a calculator for the Bermuda site.
func NewSolarCalculator(zones *tz.Resolver) *SolarCalculator {
	if zones == nil {
		zones = tz.NewResolver()
	}
	return &SolarCalculator{
		observer: Bermuda,
		zones:    zones,
	}
}

// Observer returns the site this calculator is bound to.
func (c *SolarCalculator) Observer() Observer {
	return c.observer
}

// HourAngle returns the sun's hour angle in degrees for t, measured from
// local clock noon at 15° per hour. Negative before noon.
func (c *SolarCalculator) HourAngle(t time.Time) float64 {
	local := c.zones.Resolve(t).Local(t)
	hours := float64(local.Hour()) + float64(local.Minute())/60 + float64(local.Second())/3600
	return (hours - 12) * 15
}

// Elevation returns the sun's elevation above the horizon in degrees at t,
// for an observer at latDeg on the site's meridian. Result is in [-90, 90].
func (c *SolarCalculator) Elevation(t time.Time, latDeg float64) float64 {
	lat := degToRad(latDeg)
	dec := degToRad(Declination(t))
	ha := degToRad(c.HourAngle(t))

	sinEl := math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(ha)
	// Clamp for asin
	if sinEl > 1 {
		sinEl = 1
	} else if sinEl < -1 {
		sinEl = -1
	}

	return radToDeg(math.Asin(sinEl))
}

// SiteElevation is Elevation at the site's own latitude.
func (c *SolarCalculator) SiteElevation(t time.Time) float64 {
	return c.Elevation(t, c.observer.LatDeg)
}

// SunTimes returns sunrise and sunset (UTC) at the site for the local
// calendar day containing t. Both are zero when the sun does not cross the
// horizon that day.
func (c *SolarCalculator) SunTimes(t time.Time) (rise, set time.Time) {
	local := c.zones.Resolve(t).Local(t)
	rise, set = sunrise.SunriseSunset(
		c.observer.LatDeg, c.observer.LonDeg,
		local.Year(), local.Month(), local.Day())
	return rise.UTC(), set.UTC()
}
