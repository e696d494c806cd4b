package request

// UpdateRecordRequest edits a record's receipt fields. Nil fields are
// left unchanged. The receiptdate tag checks both the YYYY-MM-DD shape
// and that the value is a real calendar date.
type UpdateRecordRequest struct {
	ReceiptDate   *string `json:"receipt_date" binding:"omitempty,receiptdate"`
	ReceiptNumber *string `json:"receipt_number"`
}

// ChangeStatusRequest moves a record along its lifecycle
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft submitted approved paid cancelled"`
}

// RecordListQuery holds query parameters for record lists
type RecordListQuery struct {
	Page             int    `form:"page"`
	PerPage          int    `form:"per_page"`
	Search           string `form:"search"`
	Status           string `form:"status" binding:"omitempty,oneof=draft submitted approved paid cancelled"`
	CounterpartySlug string `form:"counterparty_slug"`
	StartDate        string `form:"start_date" binding:"omitempty,receiptdate"`
	EndDate          string `form:"end_date" binding:"omitempty,receiptdate"`
	SortBy           string `form:"sort_by" binding:"omitempty,oneof=receipt_date receipt_number total_amount created_at"`
	SortOrder        string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}
