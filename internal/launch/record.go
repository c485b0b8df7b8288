// Package launch defines the launch record handed to the visibility core.
package launch

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput marks a record that cannot be evaluated.
var ErrInvalidInput = errors.New("invalid input")

// Pad is a launch-pad location in degrees.
type Pad struct {
	LatDeg float64
	LonDeg float64
}

// Record is a single upcoming launch as supplied by the listing collaborator.
// Records are treated as immutable once built.
type Record struct {
	ID          string
	Name        string // display name, e.g. "Falcon 9 Block 5 | Starlink Group 10-4"
	MissionName string
	OrbitClass  string // free text, e.g. "LEO", "GTO"; may be empty
	Pad         *Pad   // nil when the listing carries no coordinates
	Time        time.Time
}

// Validate reports whether the record carries enough data to evaluate.
func (r Record) Validate() error {
	if r.Time.IsZero() {
		return fmt.Errorf("launch %q: missing launch time: %w", r.label(), ErrInvalidInput)
	}
	return nil
}

// Instant returns the launch time in UTC truncated to whole seconds.
func (r Record) Instant() time.Time {
	return r.Time.UTC().Truncate(time.Second)
}

// HasPad reports whether pad coordinates are known.
func (r Record) HasPad() bool {
	return r.Pad != nil
}

func (r Record) label() string {
	switch {
	case r.Name != "":
		return r.Name
	case r.MissionName != "":
		return r.MissionName
	default:
		return r.ID
	}
}

// ParseTime parses a launch timestamp. RFC 3339 with or without fractional
// seconds is accepted; the result is UTC with second precision.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty launch time: %w", ErrInvalidInput)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse launch time %q: %w", s, errors.Join(ErrInvalidInput, err))
	}
	return t.UTC().Truncate(time.Second), nil
}
