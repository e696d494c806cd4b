package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftRecord() Record {
	items := []LineItem{lineItem("Acme", "acme", 10.0, 2)}
	return Record{
		ID:               uuid.New(),
		Kind:             enum.RecordKindPurchase,
		UserID:           uuid.New(),
		CounterpartyName: "Acme",
		CounterpartySlug: "acme",
		ReceiptDate:      "2025-06-15",
		ReceiptNumber:    "OR-001",
		Items:            items,
		TotalAmount:      ComputeTotal(items),
		Status:           enum.RecordStatusDraft,
		ChangeHistory:    []ChangeHistoryEntry{},
	}
}

func TestRecordAppendChange(t *testing.T) {
	record := draftRecord()
	editor := uuid.New()

	updated := record.AppendChange(editor, ChangeDetail{
		Field: "receipt_number",
		Old:   "OR-001",
		New:   "OR-002",
	})

	require.Len(t, updated.ChangeHistory, 1)
	assert.Equal(t, editor, updated.ChangeHistory[0].UserID)
	assert.Equal(t, "receipt_number", updated.ChangeHistory[0].Changes[0].Field)
	assert.False(t, updated.ChangeHistory[0].Timestamp.IsZero())

	// The receiver is untouched
	assert.Empty(t, record.ChangeHistory)
}

func TestRecordAppendChangeDoesNotShareHistory(t *testing.T) {
	record := draftRecord()
	editor := uuid.New()

	first := record.AppendChange(editor, ChangeDetail{Field: "receipt_number", Old: "a", New: "b"})
	second := first.AppendChange(editor, ChangeDetail{Field: "receipt_date", Old: "c", New: "d"})

	// Appending to the second copy must not leak into the first
	require.Len(t, first.ChangeHistory, 1)
	require.Len(t, second.ChangeHistory, 2)
	assert.Equal(t, "receipt_number", first.ChangeHistory[0].Changes[0].Field)
}

func TestRecordTransitionTo(t *testing.T) {
	record := draftRecord()
	userID := uuid.New()

	submitted, err := record.TransitionTo(enum.RecordStatusSubmitted, userID)
	require.NoError(t, err)
	assert.Equal(t, enum.RecordStatusSubmitted, submitted.Status)
	assert.Equal(t, enum.RecordStatusDraft, record.Status)

	require.Len(t, submitted.ChangeHistory, 1)
	change := submitted.ChangeHistory[0].Changes[0]
	assert.Equal(t, "status", change.Field)
	assert.Equal(t, "draft", change.Old)
	assert.Equal(t, "submitted", change.New)
}

func TestRecordTransitionToRejectsIllegalMoves(t *testing.T) {
	userID := uuid.New()

	record := draftRecord()
	record.Status = enum.RecordStatusPaid

	_, err := record.TransitionTo(enum.RecordStatusDraft, userID)
	require.Error(t, err)

	var transitionErr *StatusTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, enum.RecordStatusPaid, transitionErr.From)
	assert.Equal(t, enum.RecordStatusDraft, transitionErr.To)
}

func TestRecordTransitionToRejectsUnknownStatus(t *testing.T) {
	record := draftRecord()
	_, err := record.TransitionTo(enum.RecordStatus("shipped"), uuid.New())
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRecordCancelledFromAnyNonTerminal(t *testing.T) {
	userID := uuid.New()

	for _, status := range []enum.RecordStatus{
		enum.RecordStatusDraft,
		enum.RecordStatusSubmitted,
		enum.RecordStatusApproved,
	} {
		record := draftRecord()
		record.Status = status

		cancelled, err := record.TransitionTo(enum.RecordStatusCancelled, userID)
		require.NoError(t, err, "cancel from %s", status)
		assert.Equal(t, enum.RecordStatusCancelled, cancelled.Status)
	}

	record := draftRecord()
	record.Status = enum.RecordStatusCancelled
	_, err := record.TransitionTo(enum.RecordStatusCancelled, userID)
	assert.Error(t, err, "cancel is not re-enterable")
}

func TestRecordCloneItems(t *testing.T) {
	record := draftRecord()
	clone := record.CloneItems()

	clone[0].Quantity = 99
	assert.Equal(t, 2, record.Items[0].Quantity)
}
