package models

// GenerateRequest carries the human-readable labels from the client; the
// plan service maps them to the internal goal/setting enums.
type GenerateRequest struct {
	Age               *int     `json:"age"`
	Weight            *float64 `json:"weight"`
	Height            *float64 `json:"height"`
	Gender            string   `json:"gender" binding:"omitempty,oneof=male female other"`
	Goal              string   `json:"goal" binding:"required,oneof='lose weight' 'get lean' 'build muscle' bulk 'maintain weight'"`
	WorkoutPreference string   `json:"workout_preference" binding:"required,oneof=Home Gym Outdoor"`
	DietType          string   `json:"diet_type" binding:"omitempty,oneof=omnivore vegan vegetarian gluten-free lactose-intolerant"`
	Allergies         []string `json:"allergies"`
	Dislikes          []string `json:"dislikes"`
}

type PlanResponse struct {
	DailyCalorieTarget int            `json:"daily_calorie_target"`
	MealPlan           MealPlan       `json:"meal_plan"`
	FitnessProgram     FitnessProgram `json:"fitness_program"`
}

// PreferenceUpdate is persisted as-is; nothing reads it back yet.
type PreferenceUpdate struct {
	Allergies []string `json:"allergies"`
	Dislikes  []string `json:"dislikes"`
	DietType  string   `json:"diet_type" binding:"omitempty,oneof=omnivore vegan vegetarian gluten-free lactose-intolerant"`
}
