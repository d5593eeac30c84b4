// Package health computes the planner's simple health metrics: basal metabolic
// rate via the Mifflin-St Jeor equation, an intensity-based exercise calorie
// estimate, and the resulting daily caloric deficit. All functions are pure.
package health

import (
	"math"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

const (
	lbsToKg = 0.453592
	inToCm  = 2.54

	// CaloriesPerPound is the usual 3500 cal ~ 1 lb of fat approximation used
	// for the weight-loss projection table.
	CaloriesPerPound = 3500
)

// BMR estimates basal metabolic rate in kcal/day from the profile. Returns 0
// when sex, age, weight, or height is missing.
func BMR(p model.Profile) int {
	if p.Sex == model.SexUnset || p.Age <= 0 || p.WeightLbs <= 0 || p.HeightIn <= 0 {
		return 0
	}
	kg := float64(p.WeightLbs) * lbsToKg
	cm := float64(p.HeightIn) * inToCm
	bmr := 10*kg + 6.25*cm - 5*float64(p.Age)
	switch p.Sex {
	case model.SexMale:
		bmr += 5
	case model.SexFemale:
		bmr -= 161
	}
	return int(math.Round(bmr))
}

// ExerciseCalories estimates calories burned from a 0-10 intensity and a
// duration in minutes. The burn rate scales linearly from 5 cal/min (light)
// to 30 cal/min (all-out). Zero when either input is below 1.
func ExerciseCalories(intensity, durationMinutes int) int {
	if intensity < 1 || durationMinutes < 1 {
		return 0
	}
	rate := 5 + 25*(float64(intensity)/10)
	return int(math.Round(rate * float64(durationMinutes)))
}

// DietDeficit computes the day's estimated caloric deficit: BMR plus exercise
// burn minus consumed calories. Consumed defaults to 0 when not entered. A
// negative deficit is a surplus.
func DietDeficit(p model.Profile, ex model.Exercise, diet model.Diet) (deficit, exerciseCals int) {
	exerciseCals = ExerciseCalories(ex.Intensity, ex.DurationMinutes)
	consumed := 0
	if diet.ConsumedCalories != nil {
		consumed = *diet.ConsumedCalories
	}
	return BMR(p) + exerciseCals - consumed, exerciseCals
}

// Projection is the estimated weight change implied by holding a daily
// deficit, in pounds. Negative values mean gain.
type Projection struct {
	PerDay     float64
	PerWeek    float64
	PerMonth   float64
	PerQuarter float64
}

// WeightLossProjection extrapolates a daily deficit over 1/7/30/90 days.
func WeightLossProjection(deficit int) Projection {
	perDay := float64(deficit) / CaloriesPerPound
	return Projection{
		PerDay:     perDay,
		PerWeek:    perDay * 7,
		PerMonth:   perDay * 30,
		PerQuarter: perDay * 90,
	}
}
