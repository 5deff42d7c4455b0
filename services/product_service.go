package services

import "backend/models"

// ProductLookup resolves a scanned product code to nutrition heuristics.
// MockProductLookup is the deterministic placeholder; a real product
// database client can replace it without touching handlers.
type ProductLookup interface {
	Scan(code string) models.ProductScanResponse
}

// MockProductLookup derives everything from the code's character values,
// so identical codes always scan identically.
type MockProductLookup struct{}

func (MockProductLookup) Scan(code string) models.ProductScanResponse {
	seed := 0
	for _, c := range code {
		seed += int(c)
	}

	processed := 10 + seed%80
	rating := "Avoid"
	switch {
	case processed < 35:
		rating = "Good"
	case processed < 60:
		rating = "Moderate"
	}

	return models.ProductScanResponse{
		Calories:         50 + seed%350,
		ProcessedPercent: processed,
		HealthRating:     rating,
	}
}
