package astro

// TwilightLevel orders sky brightness from brightest (Day) to darkest (Night).
type TwilightLevel int

const (
	TwilightDay          TwilightLevel = iota // Sun above horizon
	TwilightCivil                             // 0 to -6 degrees
	TwilightNautical                          // -6 to -12 degrees
	TwilightAstronomical                      // -12 to -18 degrees
	TwilightNight                             // below -18 degrees
)

// Twilight boundaries (solar elevation, degrees).
const (
	CivilLimit        = 0.0
	NauticalLimit     = -6.0
	AstronomicalLimit = -12.0
	NightLimit        = -18.0
)

// TwilightLevels lists all levels brightest first.
var TwilightLevels = []TwilightLevel{
	TwilightDay, TwilightCivil, TwilightNautical, TwilightAstronomical, TwilightNight,
}

func (l TwilightLevel) String() string {
	switch l {
	case TwilightDay:
		return "Day"
	case TwilightCivil:
		return "Civil Twilight"
	case TwilightNautical:
		return "Nautical Twilight"
	case TwilightAstronomical:
		return "Astronomical Twilight"
	case TwilightNight:
		return "Night"
	default:
		return "Unknown"
	}
}

// DarkerThan reports whether l is strictly darker than other.
func (l TwilightLevel) DarkerThan(other TwilightLevel) bool {
	return l > other
}

// ClassifyTwilight maps a solar elevation to a twilight level. Intervals are
// half-open with each boundary belonging to the darker level.
func ClassifyTwilight(elDeg float64) TwilightLevel {
	switch {
	case elDeg <= NightLimit:
		return TwilightNight
	case elDeg <= AstronomicalLimit:
		return TwilightAstronomical
	case elDeg <= NauticalLimit:
		return TwilightNautical
	case elDeg <= CivilLimit:
		return TwilightCivil
	default:
		return TwilightDay
	}
}
