// Package listing decodes upcoming-launch listings into launch records.
package listing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/litescript/ls-launchview/internal/launch"
)

// JSON structures matching the Launch Library 2 "upcoming" response.

type jsonListing struct {
	Count   int               `json:"count"`
	Results []json.RawMessage `json:"results"`
}

type jsonLaunch struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Net     string       `json:"net"`
	Mission *jsonMission `json:"mission"`
	Pad     *jsonPad     `json:"pad"`
}

type jsonMission struct {
	Name  string     `json:"name"`
	Orbit *jsonOrbit `json:"orbit"`
}

type jsonOrbit struct {
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
}

type jsonPad struct {
	Name      string `json:"name"`
	Latitude  coord  `json:"latitude"`
	Longitude coord  `json:"longitude"`
}

// coord accepts a coordinate encoded as a JSON number or a numeric string.
// Older feed versions use strings. Anything else leaves the coordinate
// unset; pads are optional and never block a record.
type coord struct {
	value float64
	valid bool
}

func (c *coord) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.valid = false
		return nil
	}
	c.value = v
	c.valid = true
	return nil
}

// Parse decodes a listing. Both the paged object form ({"results": [...]})
// and a bare array of launches are accepted.
//
// Entries that cannot be evaluated are skipped; their errors are joined into
// the returned error, which wraps launch.ErrInvalidInput. Good records are
// returned either way, as a non-nil slice. The records are nil only when the
// listing as a whole cannot be read.
func Parse(data []byte) ([]launch.Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty listing: %w", launch.ErrInvalidInput)
	}

	// Entries are decoded individually; a malformed entry is skipped, not fatal.
	var entries []json.RawMessage
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("unmarshal listing: %w", err)
		}
	} else {
		var page jsonListing
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, fmt.Errorf("unmarshal listing: %w", err)
		}
		entries = page.Results
	}

	records := make([]launch.Record, 0, len(entries))
	var errs []error
	for i, raw := range entries {
		var e jsonLaunch
		if err := json.Unmarshal(raw, &e); err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, errors.Join(launch.ErrInvalidInput, err)))
			continue
		}
		rec, err := e.toRecord()
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		records = append(records, rec)
	}

	return records, errors.Join(errs...)
}

// EntryErrors splits the error returned by Parse into one error per
// skipped entry. It returns nil for a nil error.
func EntryErrors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// Decode reads and parses a listing from r.
func Decode(r io.Reader) ([]launch.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read listing: %w", err)
	}
	return Parse(data)
}

// Load reads a listing from a file; "-" reads standard input.
func Load(path string) ([]launch.Record, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open listing: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func (e jsonLaunch) toRecord() (launch.Record, error) {
	t, err := launch.ParseTime(e.Net)
	if err != nil {
		return launch.Record{}, fmt.Errorf("launch %q: %w", e.Name, err)
	}

	rec := launch.Record{
		ID:   e.ID,
		Name: e.Name,
		Time: t,
	}

	if e.Mission != nil {
		rec.MissionName = e.Mission.Name
		if e.Mission.Orbit != nil {
			// Prefer the abbreviation; it is what the orbit heuristic keys on.
			rec.OrbitClass = e.Mission.Orbit.Abbrev
			if rec.OrbitClass == "" {
				rec.OrbitClass = e.Mission.Orbit.Name
			}
		}
	}

	if e.Pad != nil && e.Pad.Latitude.valid && e.Pad.Longitude.valid {
		rec.Pad = &launch.Pad{LatDeg: e.Pad.Latitude.value, LonDeg: e.Pad.Longitude.value}
	}

	return rec, nil
}
