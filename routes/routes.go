package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/services"
	"backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps carries everything the handlers need; main builds it once.
type Deps struct {
	Config  config.Config
	Store   storage.Store
	Vision  services.Vision
	Product services.ProductLookup
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	mealSvc := services.NewMealService()
	planSvc := services.NewPlanService(mealSvc, d.Store)
	pantrySvc := services.NewPantryService(d.Store, d.Vision)

	health := controllers.NewHealthController(d.Config, d.Store)
	nutrition := controllers.NewNutritionController(planSvc, mealSvc)
	pantry := controllers.NewPantryController(pantrySvc)
	restaurants := controllers.NewRestaurantController()
	products := controllers.NewProductController(d.Product)

	r.GET("/", health.Root)
	r.GET("/test", health.Test)

	api := r.Group("/api")
	{
		api.POST("/restaurants/search", restaurants.Search)

		api.POST("/nutrition/generate", nutrition.GeneratePlan)
		api.GET("/nutrition/groceries", nutrition.Groceries)
		api.POST("/meal-plan/regenerate", nutrition.GeneratePlan)
		api.POST("/preferences/update", nutrition.UpdatePreferences)
		api.POST("/custom-meal", nutrition.CustomMeal)

		api.POST("/pantry/add", pantry.Add)
		api.GET("/pantry/list", pantry.List)
		api.GET("/pantry/suggest", pantry.Suggest)
		api.POST("/pantry/scan-receipt", pantry.ScanReceipt)
		api.POST("/pantry/photo", pantry.Photo)

		api.POST("/product/scan", products.Scan)
	}

	return r
}
