package models

// PantryItem is one inventory entry; quantity and category are free text.
type PantryItem struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity,omitempty"`
	Category string `json:"category,omitempty"`
}

// ScanImageRequest wraps a data-URI image for the receipt/photo scanners.
type ScanImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}
