package services

const (
	defaultWeightKg  = 70
	defaultHeightCm  = 170
	defaultAgeYears  = 30
	activityFactor   = 1.45 // fixed moderate activity
	minDailyCalories = 1200
)

// goalAdjustments holds the caloric surplus/deficit per goal. Unknown goals
// fall through to 0, same as maintain.
var goalAdjustments = map[string]float64{
	"lose":     -400,
	"lean":     -150,
	"build":    200,
	"bulk":     400,
	"maintain": 0,
}

// DailyCalorieTarget estimates a daily calorie target from biometrics and
// goal using Mifflin-St Jeor. Non-positive weight/height/age fall back to
// the 70kg/170cm/30y defaults. Gender offset is -161 for "female" or
// unspecified and +5 for anything else, "other" included.
func DailyCalorieTarget(goal string, weightKg, heightCm float64, age int, gender string) int {
	if weightKg <= 0 {
		weightKg = defaultWeightKg
	}
	if heightCm <= 0 {
		heightCm = defaultHeightCm
	}
	if age <= 0 {
		age = defaultAgeYears
	}

	offset := 5.0
	if gender == "" || gender == "female" {
		offset = -161
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age) + offset
	tdee := bmr * activityFactor

	target := tdee + goalAdjustments[goal]
	if target < minDailyCalories {
		target = minDailyCalories
	}
	// truncation toward zero, not rounding
	return int(target)
}
