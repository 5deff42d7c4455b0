package models

// Meal is one generated catalog meal with its nutrition snapshot.
// Never mutated after the selector builds it.
type Meal struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Calories    int      `json:"calories"`
	ProteinG    int      `json:"protein_g"`
	CarbsG      int      `json:"carbs_g"`
	FatsG       int      `json:"fats_g"`
}

// MealPlan is the immutable snapshot produced by one generation request.
type MealPlan struct {
	UserID             *string  `json:"user_id"`
	Goal               string   `json:"goal"`
	DietType           string   `json:"diet_type"`
	DailyCalorieTarget int      `json:"daily_calorie_target"`
	Meals              []Meal   `json:"meals"`
	Groceries          []string `json:"groceries"`
}

// CustomMealRequest asks for a mock nutrition breakdown of a named dish.
type CustomMealRequest struct {
	Dish     string `json:"dish" binding:"required"`
	Portions int    `json:"portions" binding:"required"`
	DietType string `json:"diet_type" binding:"omitempty,oneof=omnivore vegan vegetarian gluten-free lactose-intolerant"`
}

type CustomMealResponse struct {
	Ingredients []string           `json:"ingredients"`
	Nutrition   map[string]float64 `json:"nutrition"`
}
