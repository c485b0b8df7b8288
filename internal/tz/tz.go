// Package tz resolves the observer's civil time offset, including the
// seasonal daylight-saving switch.
package tz

import (
	"sync"
	"time"
)

// Abbreviation names the civil-time regime in effect.
type Abbreviation int

const (
	Standard Abbreviation = iota // Atlantic Standard Time, UTC-4
	Daylight                     // Atlantic Daylight Time, UTC-3
)

func (a Abbreviation) String() string {
	switch a {
	case Standard:
		return "AST"
	case Daylight:
		return "ADT"
	default:
		return "???"
	}
}

// Offsets behind UTC, in hours.
const (
	StandardOffsetHours = 4
	DaylightOffsetHours = 3
)

// transitionHour is the local wall-clock hour at which both switches happen.
const transitionHour = 2

// Offset is the resolved civil offset for one instant.
type Offset struct {
	Abbreviation Abbreviation
	OffsetHours  int // hours behind UTC
}

// Location returns a fixed zone for this offset.
func (o Offset) Location() *time.Location {
	return time.FixedZone(o.Abbreviation.String(), -o.OffsetHours*3600)
}

// Local converts an instant to civil wall time under this offset.
func (o Offset) Local(t time.Time) time.Time {
	return t.In(o.Location())
}

func (o Offset) String() string {
	return o.Abbreviation.String()
}

// Transitions holds the daylight-saving window of one calendar year.
// Daylight time is active for Start <= t < End.
type Transitions struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the daylight window.
func (tr Transitions) Contains(t time.Time) bool {
	return !t.Before(tr.Start) && t.Before(tr.End)
}

// TransitionsForYear computes the daylight window for a year without caching.
//
//   - Start: second Sunday of March, 02:00 standard time.
//   - End: first Sunday of November, 02:00 daylight time.
func TransitionsForYear(year int) Transitions {
	start := nthSunday(year, time.March, 2).
		Add(transitionHour*time.Hour + StandardOffsetHours*time.Hour)
	end := nthSunday(year, time.November, 1).
		Add(transitionHour*time.Hour + DaylightOffsetHours*time.Hour)
	return Transitions{Start: start, End: end}
}

// nthSunday returns midnight UTC of the nth Sunday of the month.
func nthSunday(year int, month time.Month, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (7 - int(first.Weekday())) % 7
	return first.AddDate(0, 0, offset+7*(n-1))
}

// Resolver caches yearly transitions. A Resolver starts empty and gains at
// most one entry per distinct year; entries are never invalidated. It is
// safe for concurrent use.
type Resolver struct {
	mu    sync.RWMutex
	years map[int]Transitions
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{
		years: make(map[int]Transitions),
	}
}

// TransitionsForYear returns the cached window for a year, computing it on
// first use.
func (r *Resolver) TransitionsForYear(year int) Transitions {
	r.mu.RLock()
	tr, ok := r.years[year]
	r.mu.RUnlock()
	if ok {
		return tr
	}

	// Computing outside the lock is fine: a concurrent miss stores the
	// same value.
	tr = TransitionsForYear(year)

	r.mu.Lock()
	r.years[year] = tr
	r.mu.Unlock()

	return tr
}

// Resolve returns the civil offset in effect at t.
func (r *Resolver) Resolve(t time.Time) Offset {
	t = t.UTC()
	if r.TransitionsForYear(t.Year()).Contains(t) {
		return Offset{Abbreviation: Daylight, OffsetHours: DaylightOffsetHours}
	}
	return Offset{Abbreviation: Standard, OffsetHours: StandardOffsetHours}
}

// Len returns the number of cached years.
func (r *Resolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.years)
}
