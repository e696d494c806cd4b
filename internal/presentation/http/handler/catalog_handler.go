package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jefdiaz/balanceone-api/internal/application/service"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/request"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// SupplierProducts returns the purchasing catalog for one supplier
func (h *CatalogHandler) SupplierProducts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	products, err := h.catalogService.SupplierProducts(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved", gin.H{"products": products})
}

// BranchProducts returns the sales catalog for one branch
func (h *CatalogHandler) BranchProducts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	products, err := h.catalogService.BranchProducts(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved", gin.H{"products": products})
}

// CreateSupplierProduct adds a product to a supplier's catalog
func (h *CatalogHandler) CreateSupplierProduct(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.catalogService.CreateSupplierProduct(c.Request.Context(), userID, c.Param("slug"), productInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created", product)
}

// CreateBranchProduct adds a product to a branch's catalog
func (h *CatalogHandler) CreateBranchProduct(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.catalogService.CreateBranchProduct(c.Request.Context(), userID, c.Param("slug"), productInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created", product)
}

// UpdateProduct edits a catalog product
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := uuidFromParam(c, "id")
	if !ok {
		return
	}

	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), userID, id, productInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated", product)
}

// DeleteProduct removes a catalog product
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := uuidFromParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Sync refreshes the local catalogs from the upstream backend
func (h *CatalogHandler) Sync(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.catalogService.SyncFromUpstream(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Catalog synced", summary)
}

func productInput(req request.ProductRequest) service.ProductInput {
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
		ImageURL:    req.ImageURL,
	}
}
