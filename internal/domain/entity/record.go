package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ChangeDetail describes one field-level change within a history entry
type ChangeDetail struct {
	Field string      `json:"field"`
	Old   interface{} `json:"old"`
	New   interface{} `json:"new"`
}

// ChangeHistoryEntry is an immutable audit log entry on a record
type ChangeHistoryEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	UserID    uuid.UUID      `json:"user_id"`
	Changes   []ChangeDetail `json:"changes"`
}

// Record is a purchase or sale document assembled from one counterparty
// group at checkout. Items are value copies of the cart's line items;
// change history is append-only and never mutated in place.
type Record struct {
	ID               uuid.UUID            `gorm:"type:uuid;primary_key" json:"record_id"`
	Kind             enum.RecordKind      `gorm:"size:20;not null;index" json:"kind"`
	UserID           uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	CounterpartyName string               `gorm:"size:255;not null" json:"counterparty_name"`
	CounterpartySlug string               `gorm:"size:255;not null;index" json:"counterparty_slug"`
	CounterpartyTIN  string               `gorm:"size:50" json:"counterparty_tin"`
	ReceiptDate      string               `gorm:"size:10;not null" json:"receipt_date"`
	ReceiptNumber    string               `gorm:"size:100;not null;index" json:"receipt_number"`
	Items            []LineItem           `gorm:"serializer:json" json:"items"`
	TotalAmount      float64              `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	Status           enum.RecordStatus    `gorm:"size:20;not null;default:'draft'" json:"status"`
	CreatedByID      uuid.UUID            `gorm:"type:uuid;column:created_by" json:"created_by"`
	ChangeHistory    []ChangeHistoryEntry `gorm:"serializer:json" json:"change_history"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
	DeletedAt        gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new record
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Record model
func (Record) TableName() string {
	return "records"
}

// CloneItems returns a value copy of the record's line items
func (r Record) CloneItems() []LineItem {
	items := make([]LineItem, len(r.Items))
	copy(items, r.Items)
	return items
}

// cloneHistory deep-copies the change history so appends never share
// backing arrays with the original record.
func cloneHistory(history []ChangeHistoryEntry) []ChangeHistoryEntry {
	out := make([]ChangeHistoryEntry, len(history))
	for i, entry := range history {
		changes := make([]ChangeDetail, len(entry.Changes))
		copy(changes, entry.Changes)
		out[i] = ChangeHistoryEntry{
			Timestamp: entry.Timestamp,
			UserID:    entry.UserID,
			Changes:   changes,
		}
	}
	return out
}

// AppendChange returns a copy of the record with one more change
// history entry. The receiver is not mutated.
func (r Record) AppendChange(userID uuid.UUID, changes ...ChangeDetail) Record {
	out := r
	out.Items = r.CloneItems()
	history := cloneHistory(r.ChangeHistory)
	out.ChangeHistory = append(history, ChangeHistoryEntry{
		Timestamp: time.Now().UTC(),
		UserID:    userID,
		Changes:   changes,
	})
	return out
}

// TransitionTo returns a copy of the record moved to the target status,
// with the transition recorded in the change history. Illegal
// transitions (for example paid -> draft) are rejected.
func (r Record) TransitionTo(target enum.RecordStatus, userID uuid.UUID) (Record, error) {
	if !target.IsValid() {
		return Record{}, ErrInvalidStatus
	}
	if !r.Status.CanTransitionTo(target) {
		return Record{}, &StatusTransitionError{From: r.Status, To: target}
	}

	out := r.AppendChange(userID, ChangeDetail{
		Field: "status",
		Old:   r.Status.String(),
		New:   target.String(),
	})
	out.Status = target
	return out, nil
}
