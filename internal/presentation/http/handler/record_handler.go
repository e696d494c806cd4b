package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jefdiaz/balanceone-api/internal/application/service"
	"github.com/jefdiaz/balanceone-api/internal/domain/enum"
	"github.com/jefdiaz/balanceone-api/internal/domain/repository"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/request"
	"github.com/jefdiaz/balanceone-api/internal/presentation/http/dto/response"
	"github.com/jefdiaz/balanceone-api/pkg/pagination"
)

// RecordHandler handles purchase/sale record HTTP requests. Routes are
// scoped by :kind the same way cart routes are.
type RecordHandler struct {
	recordService *service.RecordService
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// List returns the user's records of one kind
func (h *RecordHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	kind, ok := kindFromParam(c)
	if !ok {
		return
	}

	var query request.RecordListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.RecordFilterParams{
		Pagination:       &pagination.PaginationParams{Page: query.Page, PerPage: query.PerPage},
		Search:           query.Search,
		CounterpartySlug: query.CounterpartySlug,
		SortBy:           query.SortBy,
		SortOrder:        query.SortOrder,
	}

	if query.Status != "" {
		status := enum.RecordStatus(query.Status)
		params.Status = &status
	}
	if query.StartDate != "" {
		t, _ := time.Parse("2006-01-02", query.StartDate)
		params.StartDate = &t
	}
	if query.EndDate != "" {
		t, _ := time.Parse("2006-01-02", query.EndDate)
		params.EndDate = &t
	}

	result, err := h.recordService.List(c.Request.Context(), kind, userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Records retrieved", result)
}

// Get returns one record by ID
func (h *RecordHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := uuidFromParam(c, "id")
	if !ok {
		return
	}

	record, err := h.recordService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Record retrieved", record)
}

// GetByReceiptNumber looks a record up by its receipt number
func (h *RecordHandler) GetByReceiptNumber(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	kind, ok := kindFromParam(c)
	if !ok {
		return
	}

	record, err := h.recordService.GetByReceiptNumber(c.Request.Context(), userID, kind, c.Param("receipt_number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Record retrieved", record)
}

// Update edits a record's receipt fields
func (h *RecordHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := uuidFromParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.recordService.UpdateReceipt(c.Request.Context(), userID, id, service.RecordUpdate{
		ReceiptDate:   req.ReceiptDate,
		ReceiptNumber: req.ReceiptNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Record updated", record)
}

// ChangeStatus moves a record along its lifecycle
func (h *RecordHandler) ChangeStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := uuidFromParam(c, "id")
	if !ok {
		return
	}

	var req request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.recordService.ChangeStatus(c.Request.Context(), userID, id, enum.RecordStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Record status changed", record)
}

// Delete removes a draft record
func (h *RecordHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := uuidFromParam(c, "id")
	if !ok {
		return
	}

	if err := h.recordService.Delete(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
