package astro

import (
	"math"
	"testing"
	"time"
)

func TestJulianDate_JanuaryFebruary(t *testing.T) {
	// January and February are shifted into the previous year; the day count
	// must still run continuously across the leap day.
	tests := []struct {
		name     string
		time     time.Time
		expected float64
	}{
		{"2024-01-31", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 2460340.5},
		{"2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 2460369.5},
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 2460370.5},
		{"2025-03-01", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 2460735.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := julianDate(tt.time)
			if math.Abs(got-tt.expected) > 1e-4 {
				t.Errorf("julianDate() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestJulianDate_IgnoresZone(t *testing.T) {
	utc := time.Date(2025, 8, 12, 23, 59, 0, 0, time.UTC)
	adt := utc.In(time.FixedZone("ADT", -3*3600))

	if julianDate(utc) != julianDate(adt) {
		t.Errorf("julianDate differs by zone: %v vs %v", julianDate(utc), julianDate(adt))
	}
}

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg float64
		rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{360, 2 * math.Pi},
		{-90, -math.Pi / 2},
	}

	for _, tt := range tests {
		got := degToRad(tt.deg)
		if math.Abs(got-tt.rad) > 1e-10 {
			t.Errorf("degToRad(%v) = %v, want %v", tt.deg, got, tt.rad)
		}
		if back := radToDeg(got); math.Abs(back-tt.deg) > 1e-10 {
			t.Errorf("radToDeg(degToRad(%v)) = %v", tt.deg, back)
		}
	}
}

func TestBermudaObserver(t *testing.T) {
	if Bermuda.LatDeg < 32 || Bermuda.LatDeg > 33 {
		t.Errorf("Bermuda.LatDeg = %v, want ~32.3", Bermuda.LatDeg)
	}
	if Bermuda.LonDeg > -64 || Bermuda.LonDeg < -65 {
		t.Errorf("Bermuda.LonDeg = %v, want ~-64.75 (west negative)", Bermuda.LonDeg)
	}
}
