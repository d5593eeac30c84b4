package health

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

func intPtr(v int) *int { return &v }

func TestBMRMissingFieldsReturnZero(t *testing.T) {
	complete := model.Profile{Sex: model.SexMale, Age: 30, WeightLbs: 180, HeightIn: 70}
	cases := []struct {
		name    string
		profile model.Profile
	}{
		{"no sex", model.Profile{Age: 30, WeightLbs: 180, HeightIn: 70}},
		{"no age", model.Profile{Sex: model.SexMale, WeightLbs: 180, HeightIn: 70}},
		{"no weight", model.Profile{Sex: model.SexMale, Age: 30, HeightIn: 70}},
		{"no height", model.Profile{Sex: model.SexMale, Age: 30, WeightLbs: 180}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BMR(tc.profile); got != 0 {
				t.Fatalf("expected 0, got %d", got)
			}
		})
	}
	if got := BMR(complete); got == 0 {
		t.Fatal("complete profile must not return 0")
	}
}

func TestBMRFormula(t *testing.T) {
	// 180 lbs = 81.64656 kg, 70 in = 177.8 cm.
	// male: 10*81.64656 + 6.25*177.8 - 5*30 + 5 = 1782.7156 -> 1783
	p := model.Profile{Sex: model.SexMale, Age: 30, WeightLbs: 180, HeightIn: 70}
	if got := BMR(p); got != 1783 {
		t.Fatalf("male BMR: expected 1783, got %d", got)
	}
	p.Sex = model.SexFemale
	if got := BMR(p); got != 1617 {
		t.Fatalf("female BMR: expected 1617, got %d", got)
	}
	p.Sex = model.SexOther
	if got := BMR(p); got != 1778 {
		t.Fatalf("neutral BMR: expected 1778, got %d", got)
	}
}

func TestExerciseCalories(t *testing.T) {
	cases := []struct {
		name      string
		intensity int
		duration  int
		want      int
	}{
		{"zero intensity", 0, 60, 0},
		{"zero duration", 5, 0, 0},
		{"negative duration", 5, -10, 0},
		{"max intensity hour", 10, 60, 1800},
		{"light half hour", 2, 30, 300},
		{"mid intensity", 5, 45, 788},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExerciseCalories(tc.intensity, tc.duration); got != tc.want {
				t.Fatalf("ExerciseCalories(%d, %d) = %d, want %d", tc.intensity, tc.duration, got, tc.want)
			}
		})
	}
}

func TestDietDeficit(t *testing.T) {
	p := model.Profile{Sex: model.SexMale, Age: 30, WeightLbs: 180, HeightIn: 70}
	ex := model.Exercise{Intensity: 10, DurationMinutes: 60}

	deficit, exerciseCals := DietDeficit(p, ex, model.Diet{ConsumedCalories: intPtr(2000)})
	if exerciseCals != 1800 {
		t.Fatalf("expected 1800 exercise cals, got %d", exerciseCals)
	}
	if deficit != 1783+1800-2000 {
		t.Fatalf("unexpected deficit: %d", deficit)
	}

	// Consumed defaults to zero when absent.
	deficit, _ = DietDeficit(p, model.Exercise{}, model.Diet{})
	if deficit != 1783 {
		t.Fatalf("expected bare BMR deficit, got %d", deficit)
	}

	// Surplus comes out negative.
	deficit, _ = DietDeficit(p, model.Exercise{}, model.Diet{ConsumedCalories: intPtr(4000)})
	if deficit != 1783-4000 {
		t.Fatalf("expected surplus, got %d", deficit)
	}
}

func TestWeightLossProjection(t *testing.T) {
	proj := WeightLossProjection(3500)
	if proj.PerDay != 1.0 || proj.PerWeek != 7.0 || proj.PerMonth != 30.0 || proj.PerQuarter != 90.0 {
		t.Fatalf("unexpected projection: %+v", proj)
	}
	if WeightLossProjection(-3500).PerDay != -1.0 {
		t.Fatal("surplus should project weight gain")
	}
}

func TestIntensityColorGradient(t *testing.T) {
	if IntensityColor(0) != NoDataColor {
		t.Fatal("intensity 0 should map to the no-data sentinel")
	}
	if IntensityColor(-3) != NoDataColor {
		t.Fatal("negative intensity should map to the no-data sentinel")
	}
	// Intensity 10 is hue 120 (pure green at 80%/45%): #17cf17.
	if got := IntensityColor(10); got != lipgloss.Color("#17cf17") {
		t.Fatalf("unexpected full-intensity color: %q", got)
	}
	if IntensityColor(1) == IntensityColor(10) {
		t.Fatal("gradient extremes should differ")
	}
	if IntensityColor(7) != RatingColor(7) {
		t.Fatal("intensity and rating share one gradient")
	}
}
