package request

// CounterpartyRequest represents a create/update request for a supplier
// or branch
type CounterpartyRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	TIN     string  `json:"tin" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address"`
}
