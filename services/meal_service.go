package services

import (
	"fmt"
	"strings"

	"backend/models"
)

type catalogEntry struct {
	title       string
	ingredients []string
	calories    int
	protein     int
	carbs       int
	fats        int
}

// mealCatalog is the fixed seed set; declaration order is selection order.
// Entries cannot be added at runtime.
var mealCatalog = []catalogEntry{
	{"Oats with berries", []string{"oats", "almond milk", "berries", "chia"}, 450, 18, 60, 12},
	{"Grilled chicken bowl", []string{"chicken", "quinoa", "broccoli", "olive oil"}, 650, 45, 50, 20},
	{"Tofu stir-fry", []string{"tofu", "brown rice", "mixed veg", "soy sauce"}, 600, 30, 70, 18},
	{"Salmon salad", []string{"salmon", "greens", "avocado", "vinaigrette"}, 550, 35, 25, 28},
}

// fallbackMeal is substituted when filtering eliminates the whole catalog,
// so a plan never ships without meals.
var fallbackMeal = models.Meal{
	Title:       "Mixed veggie bowl",
	Ingredients: []string{"quinoa", "chickpeas", "veg"},
	Calories:    550,
	ProteinG:    22,
	CarbsG:      70,
	FatsG:       16,
}

type MealService struct{}

func NewMealService() *MealService {
	return &MealService{}
}

// SelectMeals walks the catalog in order, filters by diet type and the
// allergy/dislike lists, and stops once accumulated calories reach the
// target (the crossing meal stays in).
//
// The vegan and vegetarian checks are literal matches against the stored
// ingredient names "chicken" and "salmon", not a semantic animal-product
// rule. gluten-free and lactose-intolerant apply no catalog filtering
// beyond the allergy/dislike lists.
func (s *MealService) SelectMeals(calorieTarget int, dietType string, allergies, dislikes []string) []models.Meal {
	excluded := make(map[string]bool, len(allergies)+len(dislikes))
	for _, x := range allergies {
		excluded[strings.ToLower(x)] = true
	}
	for _, x := range dislikes {
		excluded[strings.ToLower(x)] = true
	}

	var meals []models.Meal
	total := 0
	for _, e := range mealCatalog {
		if dietType == "vegan" && (hasIngredient(e.ingredients, "chicken") || hasIngredient(e.ingredients, "salmon")) {
			continue
		}
		if dietType == "vegetarian" && hasIngredient(e.ingredients, "chicken") {
			continue
		}
		if anyExcluded(e.ingredients, excluded) {
			continue
		}

		meals = append(meals, models.Meal{
			Title:       e.title,
			Ingredients: append([]string(nil), e.ingredients...),
			Calories:    e.calories,
			ProteinG:    e.protein,
			CarbsG:      e.carbs,
			FatsG:       e.fats,
		})
		total += e.calories
		if total >= calorieTarget {
			break
		}
	}

	if len(meals) == 0 {
		meals = append(meals, fallbackMeal)
	}
	return meals
}

func hasIngredient(ingredients []string, name string) bool {
	for _, ing := range ingredients {
		if ing == name {
			return true
		}
	}
	return false
}

func anyExcluded(ingredients []string, excluded map[string]bool) bool {
	for _, ing := range ingredients {
		if excluded[strings.ToLower(ing)] {
			return true
		}
	}
	return false
}

// BuildGroceries counts ingredient occurrences across all meals, duplicates
// within a single meal included, and emits "<ingredient> x<count>" in
// first-seen order.
func BuildGroceries(meals []models.Meal) []string {
	counts := make(map[string]int)
	var order []string
	for _, m := range meals {
		for _, ing := range m.Ingredients {
			if counts[ing] == 0 {
				order = append(order, ing)
			}
			counts[ing]++
		}
	}

	out := make([]string, 0, len(order))
	for _, ing := range order {
		out = append(out, fmt.Sprintf("%s x%d", ing, counts[ing]))
	}
	return out
}

// BuildCustomMeal returns a mock nutrition breakdown for a named dish,
// scaled by portions (clamped to at least one).
func (s *MealService) BuildCustomMeal(dish string, portions int) models.CustomMealResponse {
	if portions < 1 {
		portions = 1
	}
	p := float64(portions)

	ingredients := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		ingredients = append(ingredients, fmt.Sprintf("%s ingredient %d", dish, i))
	}

	return models.CustomMealResponse{
		Ingredients: ingredients,
		Nutrition: map[string]float64{
			"calories":  450 * p,
			"protein_g": 25 * p,
			"carbs_g":   60 * p,
			"fats_g":    12 * p,
		},
	}
}
