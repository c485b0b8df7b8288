package astro

import (
	"math"
	"testing"
)

func TestClassifyTwilight(t *testing.T) {
	tests := []struct {
		elDeg float64
		want  TwilightLevel
	}{
		{90, TwilightDay},
		{5, TwilightDay},
		{0.0001, TwilightDay},
		{0, TwilightCivil},
		{-3, TwilightCivil},
		{-6, TwilightNautical},
		{-9, TwilightNautical},
		{-12, TwilightAstronomical},
		{-15, TwilightAstronomical},
		{-18, TwilightNight},
		{-20, TwilightNight},
		{-90, TwilightNight},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := ClassifyTwilight(tt.elDeg); got != tt.want {
				t.Errorf("ClassifyTwilight(%.4f) = %v, want %v", tt.elDeg, got, tt.want)
			}
		})
	}
}

func TestClassifyTwilight_Monotone(t *testing.T) {
	prev := ClassifyTwilight(90)
	for el := 90.0; el >= -90; el -= 0.25 {
		got := ClassifyTwilight(el)
		if got < prev {
			t.Fatalf("ClassifyTwilight(%.2f) = %v brighter than %v at higher elevation", el, got, prev)
		}
		prev = got
	}
	if prev != TwilightNight {
		t.Errorf("lowest level = %v, want Night", prev)
	}
}

func TestClassifyTwilight_Exhaustive(t *testing.T) {
	seen := make(map[TwilightLevel]bool)
	for el := -90.0; el <= 90; el += 0.5 {
		seen[ClassifyTwilight(el)] = true
	}
	for _, l := range TwilightLevels {
		if !seen[l] {
			t.Errorf("level %v never produced", l)
		}
	}
	if got := ClassifyTwilight(math.Inf(-1)); got != TwilightNight {
		t.Errorf("ClassifyTwilight(-Inf) = %v, want Night", got)
	}
}

func TestTwilightLevel_DarkerThan(t *testing.T) {
	if !TwilightNight.DarkerThan(TwilightAstronomical) {
		t.Error("Night should be darker than Astronomical")
	}
	if TwilightDay.DarkerThan(TwilightCivil) {
		t.Error("Day should not be darker than Civil")
	}
	if TwilightNautical.DarkerThan(TwilightNautical) {
		t.Error("a level is not darker than itself")
	}
}
