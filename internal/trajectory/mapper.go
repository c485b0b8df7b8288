package trajectory

import (
	"strings"

	"github.com/litescript/ls-launchview/internal/launch"
)

// Confidence grades how sure a mapping is.
type Confidence int

const (
	ConfidenceConfirmed Confidence = iota // known mission profile
	ConfidenceEstimated                   // inferred from orbit class
	ConfidenceUnknown                     // nothing to go on
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceConfirmed:
		return "Confirmed"
	case ConfidenceEstimated:
		return "Estimated"
	case ConfidenceUnknown:
		return "Unknown"
	default:
		return "?"
	}
}

// Source names the rule that produced a mapping.
type Source int

const (
	SourceOverride Source = iota
	SourceOrbitHeuristic
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceOverride:
		return "Override"
	case SourceOrbitHeuristic:
		return "OrbitHeuristic"
	case SourceDefault:
		return "Default"
	default:
		return "?"
	}
}

// Heuristic azimuths (degrees).
const (
	GeoTransferAzimuth = 130.0
	LowOrbitAzimuth    = 48.0
	DefaultAzimuth     = 45.0
)

// OrbitFamily is the coarse orbit grouping the heuristic works from.
type OrbitFamily int

const (
	OrbitUnknown OrbitFamily = iota
	OrbitGeo                 // GTO, GEO, GSO and friends
	OrbitLow                 // LEO, ISS, SSO, MEO, polar, suborbital
)

func (f OrbitFamily) String() string {
	switch f {
	case OrbitGeo:
		return "GEO"
	case OrbitLow:
		return "LEO"
	default:
		return "Unknown"
	}
}

var (
	geoPatterns = []string{"gto", "geo", "gso", "geosynchronous", "geostationary", "supersynchronous"}
	lowPatterns = []string{
		"leo", "vleo", "low earth", "iss", "meo", "medium earth",
		"sso", "sun-synchronous", "polar", "suborbital", "sub-orbital",
	}
)

// ClassifyOrbit groups a free-text orbit class. Geostationary names are
// checked first.
func ClassifyOrbit(orbit string) OrbitFamily {
	o := Normalize(orbit)
	if o == "" {
		return OrbitUnknown
	}
	if containsAny(o, geoPatterns) {
		return OrbitGeo
	}
	if containsAny(o, lowPatterns) {
		return OrbitLow
	}
	return OrbitUnknown
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// Mapping is the trajectory estimate for one launch.
type Mapping struct {
	AzimuthDeg float64 // [0, 360)
	Direction  Direction
	Confidence Confidence
	Source     Source
	Override   string // name of the matched override, if any
}

func newMapping(azDeg float64, conf Confidence, src Source) Mapping {
	az := NormalizeAzimuth(azDeg)
	return Mapping{
		AzimuthDeg: az,
		Direction:  DirectionFromAzimuth(az),
		Confidence: conf,
		Source:     src,
	}
}

// Mapper derives trajectories from launch metadata.
type Mapper struct {
	overrides Table
}

// NewMapper creates a mapper over the given override table. A nil table
// disables overrides.
func NewMapper(overrides Table) *Mapper {
	return &Mapper{overrides: overrides}
}

// DefaultMapper creates a mapper with the built-in overrides.
func DefaultMapper() *Mapper {
	return NewMapper(DefaultOverrides())
}

// Map applies, in order: the override table, the orbit-class heuristic, and
// the default heading. Pad coordinates do not influence the result.
func (m *Mapper) Map(rec launch.Record) Mapping {
	if o, ok := m.overrides.Match(rec.MissionName, rec.Name); ok {
		mp := newMapping(o.AzimuthDeg, ConfidenceConfirmed, SourceOverride)
		mp.Override = o.Name
		return mp
	}

	switch ClassifyOrbit(rec.OrbitClass) {
	case OrbitGeo:
		return newMapping(GeoTransferAzimuth, ConfidenceEstimated, SourceOrbitHeuristic)
	case OrbitLow:
		return newMapping(LowOrbitAzimuth, ConfidenceEstimated, SourceOrbitHeuristic)
	}

	return newMapping(DefaultAzimuth, ConfidenceUnknown, SourceDefault)
}
