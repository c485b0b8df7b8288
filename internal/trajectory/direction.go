// Package trajectory estimates which way a rocket flies after lift-off.
package trajectory

import (
	"math"

	"github.com/litescript/ls-launchview/internal/astro"
)

// Direction is an eight-point compass heading.
type Direction int

const (
	North Direction = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

// Directions lists all headings clockwise from North.
var Directions = []Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case Northeast:
		return "NE"
	case East:
		return "E"
	case Southeast:
		return "SE"
	case South:
		return "S"
	case Southwest:
		return "SW"
	case West:
		return "W"
	case Northwest:
		return "NW"
	default:
		return "?"
	}
}

// Long returns the spelled-out heading, e.g. "northeast".
func (d Direction) Long() string {
	switch d {
	case North:
		return "north"
	case Northeast:
		return "northeast"
	case East:
		return "east"
	case Southeast:
		return "southeast"
	case South:
		return "south"
	case Southwest:
		return "southwest"
	case West:
		return "west"
	case Northwest:
		return "northwest"
	default:
		return "unknown"
	}
}

// Quadrant is the coarse four-way grouping used for visibility.
type Quadrant int

const (
	QuadrantNorth          Quadrant = iota // N, NW
	QuadrantNortheastEast                  // NE, E
	QuadrantSoutheastSouth                 // SE, S
	QuadrantSouthwestWest                  // SW, W
)

func (q Quadrant) String() string {
	switch q {
	case QuadrantNorth:
		return "North"
	case QuadrantNortheastEast:
		return "Northeast/East"
	case QuadrantSoutheastSouth:
		return "Southeast/South"
	case QuadrantSouthwestWest:
		return "Southwest/West"
	default:
		return "Unknown"
	}
}

// Quadrant returns the coarse group a heading belongs to.
func (d Direction) Quadrant() Quadrant {
	switch d {
	case Northeast, East:
		return QuadrantNortheastEast
	case Southeast, South:
		return QuadrantSoutheastSouth
	case Southwest, West:
		return QuadrantSouthwestWest
	default:
		return QuadrantNorth
	}
}

// NormalizeAzimuth maps any bearing onto [0, 360).
func NormalizeAzimuth(azDeg float64) float64 {
	return astro.NormalizeAngle360(azDeg)
}

// DirectionFromAzimuth buckets a bearing into 45° octants centred on the
// compass points: N covers [337.5, 22.5), NE [22.5, 67.5), and so on.
func DirectionFromAzimuth(azDeg float64) Direction {
	az := NormalizeAzimuth(azDeg)
	idx := int(math.Floor((az+22.5)/45)) % len(Directions)
	return Directions[idx]
}
