package services

import (
	"testing"

	"backend/models"
)

func restaurantNames(rs []models.Restaurant) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Name)
	}
	return out
}

func TestSearchRestaurantsNoFiltersReturnsCatalog(t *testing.T) {
	got := SearchRestaurants(models.RestaurantQuery{})
	if len(got) != 4 {
		t.Fatalf("unfiltered search returned %d entries, want 4", len(got))
	}
}

func TestSearchRestaurantsByCuisineOrDish(t *testing.T) {
	got := SearchRestaurants(models.RestaurantQuery{CuisineOrDish: "Sushi"})
	names := restaurantNames(got)
	if len(names) != 1 || names[0] != "Sushi Sensei" {
		t.Fatalf("sushi search = %v", names)
	}

	// matches against cuisine text too
	got = SearchRestaurants(models.RestaurantQuery{CuisineOrDish: "italian"})
	names = restaurantNames(got)
	if len(names) != 1 || names[0] != "Pasta Palace" {
		t.Fatalf("italian search = %v", names)
	}
}

func TestSearchRestaurantsByBudget(t *testing.T) {
	got := SearchRestaurants(models.RestaurantQuery{Budget: "cheap"})
	names := restaurantNames(got)
	if len(names) != 1 || names[0] != "Budget Bites" {
		t.Fatalf("cheap search = %v", names)
	}

	got = SearchRestaurants(models.RestaurantQuery{Budget: "medium"})
	if len(got) != 2 {
		t.Fatalf("medium search returned %d entries, want 2", len(got))
	}
}

func TestSearchRestaurantsCombinedFilters(t *testing.T) {
	got := SearchRestaurants(models.RestaurantQuery{CuisineOrDish: "pasta", Budget: "medium"})
	names := restaurantNames(got)
	if len(names) != 1 || names[0] != "Pasta Palace" {
		t.Fatalf("combined search = %v", names)
	}

	got = SearchRestaurants(models.RestaurantQuery{CuisineOrDish: "pasta", Budget: "expensive"})
	if len(got) != 0 {
		t.Fatalf("conflicting filters returned %v", restaurantNames(got))
	}
}
