package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jefdiaz/balanceone-api/internal/application/service"
	"github.com/jefdiaz/balanceone-api/internal/domain/repository"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/request"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/response"
	"github.com/jefdiaz/balanceone-api/pkg/pagination"
)

// BranchHandler handles branch HTTP requests
type BranchHandler struct {
	branchService *service.BranchService
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchService *service.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

// Create handles branch creation
func (h *BranchHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req request.CounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	branch, err := h.branchService.Create(c.Request.Context(), userID, service.CounterpartyInput{
		Name:    req.Name,
		TIN:     req.TIN,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Branch created", branch)
}

// List returns the user's branches
func (h *BranchHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.branchService.List(c.Request.Context(), userID, &repository.CounterpartyFilterParams{
		Pagination: &params,
		Search:     c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Branches retrieved", result)
}

// Get returns one branch by ID
func (h *BranchHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := uuidFromParam(c, "id")
	if !ok {
		return
	}

	branch, err := h.branchService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branch retrieved", branch)
}

// GetBySlug returns one branch by slug
func (h *BranchHandler) GetBySlug(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	branch, err := h.branchService.GetBySlug(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branch retrieved", branch)
}

// Update edits a branch
func (h *BranchHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := uuidFromParam(c, "id")
	if !ok {
		return
	}

	var req request.CounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	branch, err := h.branchService.Update(c.Request.Context(), userID, id, service.CounterpartyInput{
		Name:    req.Name,
		TIN:     req.TIN,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branch updated", branch)
}

// Delete removes a branch
func (h *BranchHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := uuidFromParam(c, "id")
	if !ok {
		return
	}

	if err := h.branchService.Delete(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
