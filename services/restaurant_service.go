package services

import (
	"strings"

	"backend/models"
)

// restaurantCatalog is the static stand-in for a real restaurant data
// source.
var restaurantCatalog = []models.Restaurant{
	{Name: "Green Garden", Cuisine: "Vegan", Rating: 4.6, DistanceKm: 1.2, PriceRange: "$$", DietaryTags: []string{"vegan", "gluten-free"}, Address: "12 Oak St"},
	{Name: "Pasta Palace", Cuisine: "Italian", Rating: 4.2, DistanceKm: 2.5, PriceRange: "$$", DietaryTags: []string{"vegetarian"}, Address: "77 Pine Ave"},
	{Name: "Sushi Sensei", Cuisine: "Japanese", Rating: 4.8, DistanceKm: 0.8, PriceRange: "$$$", DietaryTags: []string{"pescatarian"}, Address: "5 Market Rd"},
	{Name: "Budget Bites", Cuisine: "Mixed", Rating: 4.0, DistanceKm: 1.0, PriceRange: "$", DietaryTags: []string{"vegan", "vegetarian"}, Address: "3 King St"},
}

var budgetPriceRange = map[string]string{
	"cheap":     "$",
	"medium":    "$$",
	"expensive": "$$$",
}

// SearchRestaurants filters the catalog by cuisine/dish text (lower-case
// substring of "<cuisine> <name>") and budget tier.
func SearchRestaurants(q models.RestaurantQuery) []models.Restaurant {
	results := make([]models.Restaurant, 0, len(restaurantCatalog))
	for _, r := range restaurantCatalog {
		if q.CuisineOrDish != "" {
			blob := strings.ToLower(r.Cuisine) + " " + strings.ToLower(r.Name)
			if !strings.Contains(blob, strings.ToLower(q.CuisineOrDish)) {
				continue
			}
		}
		if q.Budget != "" && r.PriceRange != budgetPriceRange[q.Budget] {
			continue
		}
		results = append(results, r)
	}
	return results
}
