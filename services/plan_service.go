package services

import (
	"errors"
	"log"
	"strings"

	"backend/models"
	"backend/storage"
)

// ErrNoPlans signals the "no data yet" read-path condition: either nothing
// was persisted so far or persistence is disabled entirely.
var ErrNoPlans = errors.New("no stored plans yet")

// goalAliases maps the client-facing goal labels to the internal enum.
var goalAliases = map[string]string{
	"lose weight":     "lose",
	"get lean":        "lean",
	"build muscle":    "build",
	"bulk":            "bulk",
	"maintain weight": "maintain",
}

// PlanService composes the calorie estimator, meal selector, grocery
// aggregator and fitness selector into one generation cycle, with a
// best-effort snapshot write per generated plan.
type PlanService struct {
	meals *MealService
	store storage.Store
}

func NewPlanService(meals *MealService, store storage.Store) *PlanService {
	return &PlanService{meals: meals, store: store}
}

// Generate runs the full request/response cycle. It never fails: every
// input maps to a fully populated plan, and a failed snapshot write is
// logged and dropped, never surfaced.
func (s *PlanService) Generate(req models.GenerateRequest) models.PlanResponse {
	goal := goalAliases[req.Goal]

	dietType := req.DietType
	if dietType == "" {
		dietType = "omnivore"
	}

	var weight, height float64
	var age int
	if req.Weight != nil {
		weight = *req.Weight
	}
	if req.Height != nil {
		height = *req.Height
	}
	if req.Age != nil {
		age = *req.Age
	}

	target := DailyCalorieTarget(goal, weight, height, age, req.Gender)
	meals := s.meals.SelectMeals(target, dietType, req.Allergies, req.Dislikes)

	plan := models.MealPlan{
		Goal:               goal,
		DietType:           dietType,
		DailyCalorieTarget: target,
		Meals:              meals,
		Groceries:          BuildGroceries(meals),
	}

	if _, err := s.store.CreateDocument(storage.CollectionMealPlans, plan); err != nil && !errors.Is(err, storage.ErrDisabled) {
		log.Printf("meal plan snapshot not saved: %v", err)
	}

	program := FitnessProgramFor(strings.ToLower(req.WorkoutPreference), goal)

	return models.PlanResponse{
		DailyCalorieTarget: target,
		MealPlan:           plan,
		FitnessProgram:     program,
	}
}

// LatestGroceries returns the grocery list of the latest persisted plan,
// taking the last element of a limit-1 fetch as the most recent write.
func (s *PlanService) LatestGroceries() ([]string, error) {
	docs, err := s.store.GetDocuments(storage.CollectionMealPlans, nil, 1)
	if err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			return nil, ErrNoPlans
		}
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNoPlans
	}

	raw, _ := docs[len(docs)-1]["groceries"].([]any)
	out := make([]string, 0, len(raw))
	for _, g := range raw {
		if item, ok := g.(string); ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// SavePreferences persists a preference update snapshot best-effort; the
// endpoint reports success regardless, so failures are only logged.
func (s *PlanService) SavePreferences(pref models.PreferenceUpdate) {
	if _, err := s.store.CreateDocument(storage.CollectionPreferences, pref); err != nil && !errors.Is(err, storage.ErrDisabled) {
		log.Printf("preference update not saved: %v", err)
	}
}
