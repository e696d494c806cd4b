package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/application/service"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/request"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/response"
)

// CartHandler handles cart HTTP requests. Every route is scoped by
// :kind so purchase and sale carts never mix.
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the cart with its counterparty groups
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	kind, ok := kindFromParam(c)
	if !ok {
		return
	}

	cart, err := h.cartService.Get(c.Request.Context(), userID, kind)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved", cartPayload(cart))
}

// AddItem adds a catalog product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	kind, ok := kindFromParam(c)
	if !ok {
		return
	}

	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product_id")
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), userID, kind, productID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added", cartPayload(cart))
}

// UpdateItem sets a line item's quantity
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	kind, ok := kindFromParam(c)
	if !ok {
		return
	}
	itemID, ok := uuidFromParam(c, "item_id")
	if !ok {
		return
	}

	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.UpdateQuantity(c.Request.Context(), userID, kind, itemID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated", cartPayload(cart))
}

// RemoveItem deletes a line item from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	kind, ok := kindFromParam(c)
	if !ok {
		return
	}
	itemID, ok := uuidFromParam(c, "item_id")
	if !ok {
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), userID, kind, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed", cartPayload(cart))
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	kind, ok := kindFromParam(c)
	if !ok {
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), userID, kind); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// cartPayload renders the cart alongside its derived counterparty
// groups and totals, the shape the checkout review screen consumes.
func cartPayload(cart *entity.Cart) gin.H {
	return gin.H{
		"items":          cart.Items,
		"groups":         entity.GroupByCounterparty(cart.Items),
		"total_quantity": cart.TotalQuantity(),
		"total_amount":   cart.TotalAmount(),
	}
}
