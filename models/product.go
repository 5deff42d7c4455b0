package models

type ProductScanRequest struct {
	Code string `json:"code" binding:"required"`
}

type ProductScanResponse struct {
	Calories         int    `json:"calories"`
	ProcessedPercent int    `json:"processed_percent"`
	HealthRating     string `json:"health_rating"` // "Good" | "Moderate" | "Avoid"
}
