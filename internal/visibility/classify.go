// Package visibility turns sky brightness and trajectory into a verdict on
// whether a launch can be seen from the observing site.
package visibility

import (
	"fmt"
	"strings"

	"github.com/litescript/ls-launchview/internal/astro"
	"github.com/litescript/ls-launchview/internal/trajectory"
)

// Likelihood is how likely the launch is to be seen.
type Likelihood int

const (
	LikelihoodNone Likelihood = iota
	LikelihoodLow
	LikelihoodMedium
	LikelihoodHigh
)

// Likelihoods lists all values from least to most likely.
var Likelihoods = []Likelihood{LikelihoodNone, LikelihoodLow, LikelihoodMedium, LikelihoodHigh}

func (l Likelihood) String() string {
	switch l {
	case LikelihoodNone:
		return "None"
	case LikelihoodLow:
		return "Low"
	case LikelihoodMedium:
		return "Medium"
	case LikelihoodHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// MarshalText renders the likelihood by name.
func (l Likelihood) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText parses a likelihood name.
func (l *Likelihood) UnmarshalText(text []byte) error {
	v, err := ParseLikelihood(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLikelihood parses a likelihood name, case-insensitive.
func ParseLikelihood(s string) (Likelihood, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return LikelihoodNone, nil
	case "low":
		return LikelihoodLow, nil
	case "medium":
		return LikelihoodMedium, nil
	case "high":
		return LikelihoodHigh, nil
	default:
		return LikelihoodNone, fmt.Errorf("unknown likelihood %q", s)
	}
}

// Result is the verdict for one launch. It is recomputed on every
// evaluation and never mutated.
type Result struct {
	Likelihood Likelihood
	Reason     string
	Twilight   astro.TwilightLevel
	Direction  trajectory.Direction
}

// likelihoodTable is indexed by twilight level, then [southeast-ish, other].
var likelihoodTable = map[astro.TwilightLevel][2]Likelihood{
	astro.TwilightDay:          {LikelihoodNone, LikelihoodNone},
	astro.TwilightCivil:        {LikelihoodNone, LikelihoodNone},
	astro.TwilightNautical:     {LikelihoodLow, LikelihoodNone},
	astro.TwilightAstronomical: {LikelihoodMedium, LikelihoodLow},
	astro.TwilightNight:        {LikelihoodHigh, LikelihoodMedium},
}

// Favorable reports whether a heading keeps the rocket in view from the site
// long enough to matter (the SE/S quadrant).
func Favorable(d trajectory.Direction) bool {
	return d.Quadrant() == trajectory.QuadrantSoutheastSouth
}

// Combine looks up the likelihood for a twilight level and heading.
func Combine(level astro.TwilightLevel, dir trajectory.Direction) Result {
	col := 1
	if Favorable(dir) {
		col = 0
	}

	likelihood := LikelihoodNone
	if row, ok := likelihoodTable[level]; ok {
		likelihood = row[col]
	}

	return Result{
		Likelihood: likelihood,
		Reason:     reason(level, dir),
		Twilight:   level,
		Direction:  dir,
	}
}

func reason(level astro.TwilightLevel, dir trajectory.Direction) string {
	heading := dir.Long()
	favorable := Favorable(dir)

	switch level {
	case astro.TwilightDay:
		return "Launch is in daylight. The rocket will not stand out against the bright sky."
	case astro.TwilightCivil:
		return "Launch is in civil twilight. The sky is still too bright to pick out the rocket."
	case astro.TwilightNautical:
		if favorable {
			return fmt.Sprintf("Launch is in nautical twilight and heads %s. The sky is only partly dark; look low in the west for the exhaust plume.", heading)
		}
		return fmt.Sprintf("Launch is in nautical twilight and heads %s. The sky is not dark enough.", heading)
	case astro.TwilightAstronomical:
		if favorable {
			return fmt.Sprintf("Launch is in astronomical twilight and heads %s. The sky is dark enough; watch the western sky a few minutes after liftoff.", heading)
		}
		return fmt.Sprintf("Launch is in astronomical twilight and heads %s. The sky is dark enough but the rocket stays low; watch the western horizon.", heading)
	case astro.TwilightNight:
		if favorable {
			return fmt.Sprintf("Launch is at night and heads %s. Conditions are ideal; watch the western sky a few minutes after liftoff.", heading)
		}
		return fmt.Sprintf("Launch is at night and heads %s. The sky is dark; watch low on the western horizon.", heading)
	default:
		return "Sky conditions unknown."
	}
}
