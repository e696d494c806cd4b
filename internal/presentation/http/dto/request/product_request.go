package request

// ProductRequest represents a create/update request for a catalog product
type ProductRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description"`
	Unit        string  `json:"unit" binding:"omitempty,max=50"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gte=0"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
}
