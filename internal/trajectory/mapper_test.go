package trajectory

import (
	"testing"
	"time"

	"github.com/litescript/ls-launchview/internal/launch"
)

func rec(name, mission, orbit string) launch.Record {
	return launch.Record{
		ID:          "test",
		Name:        name,
		MissionName: mission,
		OrbitClass:  orbit,
		Time:        time.Date(2025, 8, 12, 23, 59, 0, 0, time.UTC),
	}
}

func TestMapper_Map(t *testing.T) {
	m := DefaultMapper()

	tests := []struct {
		name     string
		rec      launch.Record
		wantDir  Direction
		wantAz   float64
		wantConf Confidence
		wantSrc  Source
	}{
		{
			name:     "GTO heuristic",
			rec:      rec("Falcon 9 Block 5 | SES-26", "SES-26", "GTO"),
			wantDir:  Southeast,
			wantAz:   GeoTransferAzimuth,
			wantConf: ConfidenceEstimated,
			wantSrc:  SourceOrbitHeuristic,
		},
		{
			name:     "spelled-out geostationary",
			rec:      rec("Atlas V | ViaSat-3", "ViaSat-3", "Geostationary Transfer Orbit"),
			wantDir:  Southeast,
			wantAz:   GeoTransferAzimuth,
			wantConf: ConfidenceEstimated,
			wantSrc:  SourceOrbitHeuristic,
		},
		{
			name:     "LEO heuristic",
			rec:      rec("Falcon 9 Block 5 | Bandwagon-3", "Bandwagon-3", "LEO"),
			wantDir:  Northeast,
			wantAz:   LowOrbitAzimuth,
			wantConf: ConfidenceEstimated,
			wantSrc:  SourceOrbitHeuristic,
		},
		{
			name:     "low earth orbit text",
			rec:      rec("Electron | Test", "Test", "  Low   Earth Orbit "),
			wantDir:  Northeast,
			wantAz:   LowOrbitAzimuth,
			wantConf: ConfidenceEstimated,
			wantSrc:  SourceOrbitHeuristic,
		},
		{
			name:     "missing orbit",
			rec:      rec("New Glenn | Unknown Payload", "Unknown Payload", ""),
			wantDir:  Northeast,
			wantAz:   DefaultAzimuth,
			wantConf: ConfidenceUnknown,
			wantSrc:  SourceDefault,
		},
		{
			name:     "unrecognized orbit",
			rec:      rec("Falcon Heavy | Psyche", "Psyche", "Heliocentric N/A"),
			wantDir:  Northeast,
			wantAz:   DefaultAzimuth,
			wantConf: ConfidenceUnknown,
			wantSrc:  SourceDefault,
		},
		{
			name:     "space plane beats GTO",
			rec:      rec("Falcon Heavy | USSF-52", "USSF-52 (X-37B OTV-7)", "GTO"),
			wantDir:  Northeast,
			wantAz:   50,
			wantConf: ConfidenceConfirmed,
			wantSrc:  SourceOverride,
		},
		{
			name:     "space plane via display name only",
			rec:      rec("Falcon 9 | X-37B OTV-8", "", "Geostationary"),
			wantDir:  Northeast,
			wantAz:   50,
			wantConf: ConfidenceConfirmed,
			wantSrc:  SourceOverride,
		},
		{
			name:     "starlink override",
			rec:      rec("Falcon 9 Block 5 | Starlink Group 10-4", "Starlink Group 10-4", "LEO"),
			wantDir:  Northeast,
			wantAz:   50,
			wantConf: ConfidenceConfirmed,
			wantSrc:  SourceOverride,
		},
		{
			name:     "polar rideshare heads south",
			rec:      rec("Falcon 9 | Transporter-14", "Transporter-14", "SSO"),
			wantDir:  South,
			wantAz:   175,
			wantConf: ConfidenceConfirmed,
			wantSrc:  SourceOverride,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Map(tt.rec)
			if got.Direction != tt.wantDir {
				t.Errorf("Direction = %v, want %v", got.Direction, tt.wantDir)
			}
			if got.AzimuthDeg != tt.wantAz {
				t.Errorf("AzimuthDeg = %v, want %v", got.AzimuthDeg, tt.wantAz)
			}
			if got.Confidence != tt.wantConf {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConf)
			}
			if got.Source != tt.wantSrc {
				t.Errorf("Source = %v, want %v", got.Source, tt.wantSrc)
			}
		})
	}
}

func TestMapper_OverrideTableOrder(t *testing.T) {
	// Both entries match; the first one listed wins even though the second
	// is more specific.
	table := Table{
		{Name: "broad", Patterns: []string{"falcon"}, AzimuthDeg: 90},
		{Name: "specific", Patterns: []string{"falcon 9 | crew-11"}, AzimuthDeg: 45},
	}
	m := NewMapper(table)

	got := m.Map(rec("Falcon 9 | Crew-11", "Crew-11", "ISS"))
	if got.Override != "broad" || got.Direction != East {
		t.Errorf("Map() = %+v, want first entry (broad, E)", got)
	}
}

func TestMapper_NoOverrides(t *testing.T) {
	m := NewMapper(nil)
	got := m.Map(rec("Falcon 9 | Starlink Group 6-1", "Starlink Group 6-1", "GTO"))
	if got.Source != SourceOrbitHeuristic || got.Direction != Southeast {
		t.Errorf("Map() = %+v, want GTO heuristic without overrides", got)
	}
}

func TestMapper_OverrideAzimuthNormalized(t *testing.T) {
	m := NewMapper(Table{{Name: "odd", Patterns: []string{"odd"}, AzimuthDeg: -10}})
	got := m.Map(rec("Odd Mission", "", ""))
	if got.AzimuthDeg != 350 || got.Direction != North {
		t.Errorf("Map() = %+v, want 350° N", got)
	}
}

func TestMapper_PadIgnored(t *testing.T) {
	m := DefaultMapper()
	r := rec("Falcon 9 | SES-26", "SES-26", "GTO")
	withPad := r
	withPad.Pad = &launch.Pad{LatDeg: 28.5618, LonDeg: -80.5772}

	if m.Map(r) != m.Map(withPad) {
		t.Error("pad coordinates changed the mapping")
	}
}

func TestTable_Match(t *testing.T) {
	table := DefaultOverrides()

	tests := []struct {
		names []string
		want  string
		ok    bool
	}{
		{[]string{"USSF-52"}, "X-37B space plane", true},
		{[]string{"", "Falcon 9 | CRS-33"}, "ISS crew and cargo", true},
		{[]string{"STARLINK GROUP 12-1"}, "Starlink", true},
		{[]string{"SES-26", "Falcon 9 | SES-26"}, "", false},
		{nil, "", false},
	}

	for _, tt := range tests {
		got, ok := table.Match(tt.names...)
		if ok != tt.ok || got.Name != tt.want {
			t.Errorf("Match(%q) = %q, %v; want %q, %v", tt.names, got.Name, ok, tt.want, tt.ok)
		}
	}
}

func TestDefaultOverrides_Copy(t *testing.T) {
	a := DefaultOverrides()
	a[0].Patterns[0] = "mutated"
	a[0].AzimuthDeg = 1

	b := DefaultOverrides()
	if b[0].Patterns[0] == "mutated" || b[0].AzimuthDeg == 1 {
		t.Error("DefaultOverrides shares state between calls")
	}
}

func TestClassifyOrbit(t *testing.T) {
	tests := []struct {
		orbit string
		want  OrbitFamily
	}{
		{"GTO", OrbitGeo},
		{"GEO", OrbitGeo},
		{"Geosynchronous Orbit", OrbitGeo},
		{"Supersynchronous GTO", OrbitGeo},
		{"LEO", OrbitLow},
		{"VLEO", OrbitLow},
		{"ISS", OrbitLow},
		{"SSO", OrbitLow},
		{"Sun-Synchronous Orbit", OrbitLow},
		{"Polar Orbit", OrbitLow},
		{"MEO", OrbitLow},
		{"Sub-Orbital", OrbitLow},
		{"", OrbitUnknown},
		{"TLI", OrbitUnknown},
		{"Heliocentric N/A", OrbitUnknown},
	}

	for _, tt := range tests {
		if got := ClassifyOrbit(tt.orbit); got != tt.want {
			t.Errorf("ClassifyOrbit(%q) = %v, want %v", tt.orbit, got, tt.want)
		}
	}
}
