// Package report renders evaluated launches as JSON and plain text.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/litescript/ls-launchview/internal/astro"
	"github.com/litescript/ls-launchview/internal/notify"
	"github.com/litescript/ls-launchview/internal/state"
	"github.com/litescript/ls-launchview/internal/trajectory"
	"github.com/litescript/ls-launchview/internal/visibility"
)

// Export is the JSON-serializable representation of an evaluated listing.
type Export struct {
	EvaluatedAt time.Time      `json:"evaluated_at"`
	Observer    ObserverExport `json:"observer"`
	Launches    []LaunchExport `json:"launches"`
	Failures    []string       `json:"failures,omitempty"`
}

// ObserverExport describes the observing site.
type ObserverExport struct {
	Name   string  `json:"name"`
	LatDeg float64 `json:"lat_deg"`
	LonDeg float64 `json:"lon_deg"`
}

// LaunchExport is a JSON-friendly verdict with the values behind it.
type LaunchExport struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Mission      string                `json:"mission,omitempty"`
	Orbit        string                `json:"orbit,omitempty"`
	TimeUTC      time.Time             `json:"time_utc"`
	LocalTime    string                `json:"local_time"`
	TimeZone     string                `json:"time_zone"`
	SunElevation float64               `json:"sun_elevation_deg"`
	Twilight     string                `json:"twilight"`
	AzimuthDeg   float64               `json:"azimuth_deg"`
	Direction    string                `json:"direction"`
	Confidence   string                `json:"confidence"`
	Source       string                `json:"source"`
	Override     string                `json:"override,omitempty"`
	Likelihood   visibility.Likelihood `json:"likelihood"`
	Reason       string                `json:"reason"`
	Sunset       *time.Time            `json:"sunset_utc,omitempty"`
}

// ExportSnapshot converts a state snapshot to an exportable form.
func ExportSnapshot(snap state.Snapshot) *Export {
	export := &Export{
		EvaluatedAt: snap.LastEval,
		Observer: ObserverExport{
			Name:   astro.Bermuda.Name,
			LatDeg: astro.Bermuda.LatDeg,
			LonDeg: astro.Bermuda.LonDeg,
		},
		Launches: make([]LaunchExport, 0, len(snap.Launches)),
	}

	for _, a := range snap.Launches {
		export.Launches = append(export.Launches, ExportAssessment(a))
	}
	for _, err := range snap.Failures {
		export.Failures = append(export.Failures, err.Error())
	}

	return export
}

// ExportAssessment converts one assessment.
func ExportAssessment(a visibility.Assessment) LaunchExport {
	le := LaunchExport{
		ID:           a.Record.ID,
		Name:         a.Record.Name,
		Mission:      a.Record.MissionName,
		Orbit:        a.Record.OrbitClass,
		TimeUTC:      a.Record.Instant(),
		LocalTime:    a.LocalTime.Format("2006-01-02 15:04:05"),
		TimeZone:     a.Offset.String(),
		SunElevation: roundTo(a.ElevationDeg, 2),
		Twilight:     a.Result.Twilight.String(),
		AzimuthDeg:   a.Trajectory.AzimuthDeg,
		Direction:    a.Result.Direction.String(),
		Confidence:   a.Trajectory.Confidence.String(),
		Source:       a.Trajectory.Source.String(),
		Override:     a.Trajectory.Override,
		Likelihood:   a.Result.Likelihood,
		Reason:       a.Result.Reason,
	}
	if !a.Sunset.IsZero() {
		set := a.Sunset
		le.Sunset = &set
	}
	return le
}

// WriteJSON writes the export as indented JSON.
func (e *Export) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// SummaryRow represents one row in the summary table.
type SummaryRow struct {
	When       string
	Name       string
	Orbit      string
	Twilight   string
	Direction  string
	Likelihood visibility.Likelihood
}

// GenerateSummaryRows creates summary rows, optionally dropping launches
// below a minimum likelihood.
func GenerateSummaryRows(launches []visibility.Assessment, min visibility.Likelihood) []SummaryRow {
	var rows []SummaryRow
	for _, a := range launches {
		if a.Result.Likelihood < min {
			continue
		}
		orbit := a.Record.OrbitClass
		if orbit == "" {
			orbit = "-"
		}
		rows = append(rows, SummaryRow{
			When:       a.LocalTime.Format("Jan 02 15:04 MST"),
			Name:       a.Record.Name,
			Orbit:      orbit,
			Twilight:   a.Result.Twilight.String(),
			Direction:  a.Result.Direction.String() + confidenceMark(a),
			Likelihood: a.Result.Likelihood,
		})
	}
	return rows
}

// WriteSummaryTable writes a text table to the given writer.
func WriteSummaryTable(w io.Writer, snap state.Snapshot, min visibility.Likelihood) {
	rows := GenerateSummaryRows(snap.Launches, min)

	fmt.Fprintf(w, "Launch visibility from %s @ %s\n", astro.Bermuda.Name, snap.LastEval.Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 96))

	if len(rows) == 0 {
		fmt.Fprintln(w, "No upcoming launches")
		return
	}

	fmt.Fprintf(w, "%-18s %-36s %-6s %-22s %-4s %-6s\n",
		"When", "Launch", "Orbit", "Sky", "Dir", "Chance")
	fmt.Fprintln(w, strings.Repeat("─", 96))

	for _, r := range rows {
		fmt.Fprintf(w, "%-18s %-36s %-6s %-22s %-4s %-6s\n",
			r.When,
			truncateStr(r.Name, 36),
			truncateStr(r.Orbit, 6),
			r.Twilight,
			r.Direction,
			r.Likelihood,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d launches", len(rows))
	if n := len(snap.Failures); n > 0 {
		fmt.Fprintf(w, " (%d skipped)", n)
	}
	fmt.Fprintln(w)
}

// WriteNow writes a single line about the next launch at or after now.
func WriteNow(w io.Writer, launches []visibility.Assessment, now time.Time) {
	for _, a := range launches {
		if a.Record.Time.Before(now) {
			continue
		}
		fmt.Fprintf(w, "▶ %s  T-%s  %s  %s\n",
			a.Record.Name,
			FormatCountdown(a.Record.Time.Sub(now)),
			a.LocalTime.Format("15:04 MST"),
			Badge(a.Result.Likelihood),
		)
		return
	}
	fmt.Fprintln(w, "No upcoming launches")
}

// WriteCard writes a multi-line detail card for one launch.
func WriteCard(w io.Writer, a visibility.Assessment) {
	fmt.Fprintf(w, "%s\n", a.Record.Name)
	fmt.Fprintln(w, strings.Repeat("─", len([]rune(a.Record.Name))))
	if a.Record.MissionName != "" {
		fmt.Fprintf(w, "Mission:    %s\n", a.Record.MissionName)
	}
	if a.Record.OrbitClass != "" {
		fmt.Fprintf(w, "Orbit:      %s\n", a.Record.OrbitClass)
	}
	fmt.Fprintf(w, "Launch:     %s (%s)\n",
		a.LocalTime.Format("Mon Jan 02 15:04:05 MST"),
		a.Record.Instant().Format("15:04Z"))
	fmt.Fprintf(w, "Sun:        %.1f° (%s)\n", a.ElevationDeg, a.Result.Twilight)
	if !a.Sunset.IsZero() {
		fmt.Fprintf(w, "Sunset:     %s\n", a.Offset.Local(a.Sunset).Format("15:04 MST"))
	}
	fmt.Fprintf(w, "Trajectory: %s (%.0f°), %s via %s",
		a.Trajectory.Direction, a.Trajectory.AzimuthDeg, a.Trajectory.Confidence, a.Trajectory.Source)
	if a.Trajectory.Override != "" {
		fmt.Fprintf(w, " [%s]", a.Trajectory.Override)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Visibility: %s\n", Badge(a.Result.Likelihood))
	fmt.Fprintf(w, "            %s\n", a.Result.Reason)
}

// WriteEvents writes the most recent events, newest last.
func WriteEvents(w io.Writer, events []state.Event, n int) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events")
		return
	}
	if len(events) > n {
		events = events[len(events)-n:]
	}
	for _, e := range events {
		ts := e.Timestamp.Format("15:04:05")
		switch e.Type {
		case state.EventNewLaunch:
			fmt.Fprintf(w, "%s  + %s (%s)\n", ts, e.Name, e.NewLikelihood)
		case state.EventVerdictChanged:
			fmt.Fprintf(w, "%s  ~ %s: %s → %s\n", ts, e.Name, e.OldLikelihood, e.NewLikelihood)
		case state.EventRescheduled:
			fmt.Fprintf(w, "%s  ⟳ %s: %s → %s\n", ts, e.Name,
				e.OldTime.UTC().Format("Jan 02 15:04Z"), e.NewTime.UTC().Format("Jan 02 15:04Z"))
		case state.EventLaunchRemoved:
			fmt.Fprintf(w, "%s  - %s\n", ts, e.Name)
		}
	}
}

// WriteAlerts writes planned notifications, soonest first.
func WriteAlerts(w io.Writer, alerts []notify.Alert) {
	if len(alerts) == 0 {
		fmt.Fprintln(w, "No alerts planned")
		return
	}
	fmt.Fprintf(w, "Alerts (%d):\n", len(alerts))
	for _, a := range alerts {
		fmt.Fprintf(w, "  %s  %-8s %s\n",
			a.At.UTC().Format("Jan 02 15:04Z"),
			Badge(a.Likelihood),
			a.Message,
		)
	}
}

// Badge renders a likelihood as a short bracketed label.
func Badge(l visibility.Likelihood) string {
	return "[" + strings.ToUpper(l.String()) + "]"
}

func confidenceMark(a visibility.Assessment) string {
	if a.Trajectory.Confidence == trajectory.ConfidenceConfirmed {
		return ""
	}
	return "?"
}

// FormatCountdown renders a duration as days, hours and minutes.
func FormatCountdown(d time.Duration) string {
	d = d.Round(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd%02dh%02dm", days, hours, mins)
	}
	return fmt.Sprintf("%02dh%02dm", hours, mins)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func truncateStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-2]) + ".."
}
