package models

type RestaurantQuery struct {
	Location      string   `json:"location"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	CuisineOrDish string   `json:"cuisine_or_dish"`
	Budget        string   `json:"budget" binding:"omitempty,oneof=cheap medium expensive"`
}

type Restaurant struct {
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	Rating      float64  `json:"rating"`
	DistanceKm  float64  `json:"distance_km"`
	PriceRange  string   `json:"price_range"`
	DietaryTags []string `json:"dietary_tags"`
	Address     string   `json:"address,omitempty"`
}
