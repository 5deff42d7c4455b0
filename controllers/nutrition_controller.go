package controllers

import (
	"errors"
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	plans *services.PlanService
	meals *services.MealService
}

func NewNutritionController(plans *services.PlanService, meals *services.MealService) *NutritionController {
	return &NutritionController{plans: plans, meals: meals}
}

// GeneratePlan runs the full calorie/meal/grocery/fitness cycle. Also
// mounted as /api/meal-plan/regenerate, which is the same computation.
func (n *NutritionController) GeneratePlan(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, n.plans.Generate(req))
}

func (n *NutritionController) Groceries(c *gin.Context) {
	groceries, err := n.plans.LatestGroceries()
	if err != nil {
		if errors.Is(err, services.ErrNoPlans) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No stored plans yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, groceries)
}

func (n *NutritionController) UpdatePreferences(c *gin.Context) {
	var pref models.PreferenceUpdate
	if err := c.ShouldBindJSON(&pref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n.plans.SavePreferences(pref)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "saved": true})
}

func (n *NutritionController) CustomMeal(c *gin.Context) {
	var req models.CustomMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, n.meals.BuildCustomMeal(req.Dish, req.Portions))
}
