package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jefdiaz/balanceone-api/internal/application/service"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/request"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/response"
)

// CheckoutHandler handles checkout HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout submits the cart, producing one record per counterparty
// group. Clients send an Idempotency-Key header so a double submit
// replays the first response instead of creating duplicate records.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	kind, ok := kindFromParam(c)
	if !ok {
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	forms := make([]entity.ReceiptForm, len(req.Forms))
	for i, f := range req.Forms {
		forms[i] = entity.ReceiptForm{
			Date:             f.Date,
			ReceiptNumber:    f.ReceiptNumber,
			CounterpartySlug: f.CounterpartySlug,
		}
	}

	records, err := h.checkoutService.Checkout(c.Request.Context(), userID, kind, forms)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checkout completed", gin.H{"records": records})
}
