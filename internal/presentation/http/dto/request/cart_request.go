package request

// AddCartItemRequest adds a catalog product to the cart. A quantity
// below 1 is accepted and coerced to 1 by the cart itself.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest sets the quantity of an existing cart line
// item. No required tag on Quantity: 0 is a legal payload and is
// coerced to 1 by the cart, same as on add.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
