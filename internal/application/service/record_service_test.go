package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/internal/domain/enum"
	"github.com/jefdiaz/balanceone-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedRecord(repo *fakeRecordRepo, userID uuid.UUID, status enum.RecordStatus) entity.Record {
	record := entity.Record{
		ID:               uuid.New(),
		Kind:             enum.RecordKindPurchase,
		UserID:           userID,
		CounterpartyName: "Acme",
		CounterpartySlug: "acme",
		ReceiptDate:      "2025-06-15",
		ReceiptNumber:    "OR-001",
		Items:            []entity.LineItem{},
		Status:           status,
		ChangeHistory:    []entity.ChangeHistoryEntry{},
	}
	repo.records = append(repo.records, record)
	return record
}

func TestRecordServiceUpdateReceipt(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRecordRepo{}
	svc := NewRecordService(repo, zap.NewNop())
	userID := uuid.New()
	record := seedRecord(repo, userID, enum.RecordStatusSubmitted)

	newDate := "2025-07-01"
	newNumber := "OR-099"
	updated, err := svc.UpdateReceipt(ctx, userID, record.ID, RecordUpdate{
		ReceiptDate:   &newDate,
		ReceiptNumber: &newNumber,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-07-01", updated.ReceiptDate)
	assert.Equal(t, "OR-099", updated.ReceiptNumber)

	// Both field edits land in one history entry
	require.Len(t, updated.ChangeHistory, 1)
	require.Len(t, updated.ChangeHistory[0].Changes, 2)
	assert.Equal(t, "receipt_date", updated.ChangeHistory[0].Changes[0].Field)
	assert.Equal(t, "receipt_number", updated.ChangeHistory[0].Changes[1].Field)

	// And the repo saw the update
	stored, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "OR-099", stored.ReceiptNumber)
}

func TestRecordServiceUpdateReceiptNoChanges(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRecordRepo{}
	svc := NewRecordService(repo, zap.NewNop())
	userID := uuid.New()
	record := seedRecord(repo, userID, enum.RecordStatusSubmitted)

	sameNumber := "OR-001"
	updated, err := svc.UpdateReceipt(ctx, userID, record.ID, RecordUpdate{ReceiptNumber: &sameNumber})
	require.NoError(t, err)
	assert.Empty(t, updated.ChangeHistory, "identical values must not grow the history")
}

func TestRecordServiceUpdateReceiptInvalidDate(t *testing.T) {
	repo := &fakeRecordRepo{}
	svc := NewRecordService(repo, zap.NewNop())
	userID := uuid.New()
	record := seedRecord(repo, userID, enum.RecordStatusSubmitted)

	badDate := "2025-02-30"
	_, err := svc.UpdateReceipt(context.Background(), userID, record.ID, RecordUpdate{ReceiptDate: &badDate})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestRecordServiceUpdateReceiptTerminalRecord(t *testing.T) {
	repo := &fakeRecordRepo{}
	svc := NewRecordService(repo, zap.NewNop())
	userID := uuid.New()
	record := seedRecord(repo, userID, enum.RecordStatusPaid)

	newNumber := "OR-099"
	_, err := svc.UpdateReceipt(context.Background(), userID, record.ID, RecordUpdate{ReceiptNumber: &newNumber})
	assert.Error(t, err)
}

func TestRecordServiceChangeStatus(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRecordRepo{}
	svc := NewRecordService(repo, zap.NewNop())
	userID := uuid.New()
	record := seedRecord(repo, userID, enum.RecordStatusSubmitted)

	updated, err := svc.ChangeStatus(ctx, userID, record.ID, enum.RecordStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, enum.RecordStatusApproved, updated.Status)
	require.Len(t, updated.ChangeHistory, 1)
}

func TestRecordServiceChangeStatusIllegal(t *testing.T) {
	repo := &fakeRecordRepo{}
	svc := NewRecordService(repo, zap.NewNop())
	userID := uuid.New()
	record := seedRecord(repo, userID, enum.RecordStatusSubmitted)

	_, err := svc.ChangeStatus(context.Background(), userID, record.ID, enum.RecordStatusPaid)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestRecordServiceOwnershipScoping(t *testing.T) {
	repo := &fakeRecordRepo{}
	svc := NewRecordService(repo, zap.NewNop())
	owner := uuid.New()
	record := seedRecord(repo, owner, enum.RecordStatusSubmitted)

	_, err := svc.GetByID(context.Background(), uuid.New(), record.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestRecordServiceDeleteOnlyDrafts(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRecordRepo{}
	svc := NewRecordService(repo, zap.NewNop())
	userID := uuid.New()

	draft := seedRecord(repo, userID, enum.RecordStatusDraft)
	submitted := seedRecord(repo, userID, enum.RecordStatusSubmitted)

	require.NoError(t, svc.Delete(ctx, userID, draft.ID))

	err := svc.Delete(ctx, userID, submitted.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestRecordServiceGetByReceiptNumber(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRecordRepo{}
	svc := NewRecordService(repo, zap.NewNop())
	userID := uuid.New()
	seedRecord(repo, userID, enum.RecordStatusSubmitted)

	record, err := svc.GetByReceiptNumber(ctx, userID, enum.RecordKindPurchase, "OR-001")
	require.NoError(t, err)
	assert.Equal(t, "acme", record.CounterpartySlug)

	_, err = svc.GetByReceiptNumber(ctx, userID, enum.RecordKindSale, "OR-001")
	assert.Error(t, err, "lookup is scoped by kind")
}
