package visibility

import (
	"strings"
	"testing"

	"github.com/litescript/ls-launchview/internal/astro"
	"github.com/litescript/ls-launchview/internal/trajectory"
)

func TestCombine_Table(t *testing.T) {
	tests := []struct {
		level astro.TwilightLevel
		dir   trajectory.Direction
		want  Likelihood
	}{
		{astro.TwilightDay, trajectory.Southeast, LikelihoodNone},
		{astro.TwilightDay, trajectory.Northeast, LikelihoodNone},
		{astro.TwilightCivil, trajectory.South, LikelihoodNone},
		{astro.TwilightCivil, trajectory.North, LikelihoodNone},
		{astro.TwilightNautical, trajectory.Southeast, LikelihoodLow},
		{astro.TwilightNautical, trajectory.East, LikelihoodNone},
		{astro.TwilightAstronomical, trajectory.South, LikelihoodMedium},
		{astro.TwilightAstronomical, trajectory.Southwest, LikelihoodLow},
		{astro.TwilightNight, trajectory.Southeast, LikelihoodHigh},
		{astro.TwilightNight, trajectory.Northeast, LikelihoodMedium},
		{astro.TwilightNight, trajectory.West, LikelihoodMedium},
		{astro.TwilightNight, trajectory.Northwest, LikelihoodMedium},
	}

	for _, tt := range tests {
		t.Run(tt.level.String()+"/"+tt.dir.String(), func(t *testing.T) {
			got := Combine(tt.level, tt.dir)
			if got.Likelihood != tt.want {
				t.Errorf("Combine(%v, %v) = %v, want %v", tt.level, tt.dir, got.Likelihood, tt.want)
			}
			if got.Twilight != tt.level || got.Direction != tt.dir {
				t.Errorf("Combine() echoed %v/%v, want %v/%v", got.Twilight, got.Direction, tt.level, tt.dir)
			}
		})
	}
}

func TestCombine_Total(t *testing.T) {
	for _, level := range astro.TwilightLevels {
		for _, dir := range trajectory.Directions {
			got := Combine(level, dir)
			if got.Reason == "" {
				t.Errorf("Combine(%v, %v) has empty reason", level, dir)
			}
			if got.Likelihood < LikelihoodNone || got.Likelihood > LikelihoodHigh {
				t.Errorf("Combine(%v, %v) likelihood out of range: %d", level, dir, got.Likelihood)
			}
		}
	}
}

func TestCombine_DarkerNeverWorse(t *testing.T) {
	for _, dir := range trajectory.Directions {
		prev := LikelihoodNone
		for _, level := range astro.TwilightLevels {
			got := Combine(level, dir).Likelihood
			if got < prev {
				t.Errorf("%v: likelihood dropped from %v to %v at %v", dir, prev, got, level)
			}
			prev = got
		}
	}
}

func TestCombine_ReasonMentionsHeading(t *testing.T) {
	got := Combine(astro.TwilightNight, trajectory.Southeast)
	if !strings.Contains(got.Reason, "southeast") {
		t.Errorf("reason %q should name the heading", got.Reason)
	}

	day := Combine(astro.TwilightDay, trajectory.Southeast)
	if !strings.Contains(day.Reason, "daylight") {
		t.Errorf("reason %q should mention daylight", day.Reason)
	}
}

func TestCombine_ReasonDoesNotClaimApproach(t *testing.T) {
	// A due-south polar ascent is favorable but does not fly toward the site.
	for _, level := range astro.TwilightLevels {
		for _, dir := range []trajectory.Direction{trajectory.Southeast, trajectory.South} {
			got := Combine(level, dir).Reason
			if strings.Contains(got, "toward") || strings.Contains(got, "away from") {
				t.Errorf("Combine(%v, %v).Reason = %q, should not claim a heading relative to the site", level, dir, got)
			}
		}
	}

	south := Combine(astro.TwilightNight, trajectory.South)
	if south.Likelihood != LikelihoodHigh || !strings.Contains(south.Reason, "heads south.") {
		t.Errorf("south at night = %v %q", south.Likelihood, south.Reason)
	}
}

func TestParseLikelihood(t *testing.T) {
	for _, l := range Likelihoods {
		got, err := ParseLikelihood(strings.ToUpper(l.String()))
		if err != nil || got != l {
			t.Errorf("ParseLikelihood(%q) = %v, %v; want %v", l.String(), got, err, l)
		}
	}
	if _, err := ParseLikelihood("certain"); err == nil {
		t.Error("ParseLikelihood(certain) should fail")
	}
}
