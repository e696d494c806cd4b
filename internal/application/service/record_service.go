package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/internal/domain/enum"
	"github.com/jefdiaz/balanceone-api/internal/domain/repository"
	"github.com/jefdiaz/balanceone-api/pkg/apperror"
	"github.com/jefdiaz/balanceone-api/pkg/pagination"
	"go.uber.org/zap"
)

// RecordUpdate carries the editable receipt fields of a record. Nil
// fields are left unchanged.
type RecordUpdate struct {
	ReceiptDate   *string
	ReceiptNumber *string
}

// RecordService exposes the purchase/sale record ledger: listing,
// lookup, receipt edits and status transitions. Every mutation appends
// a change history entry; history itself is never rewritten.
type RecordService struct {
	recordRepo repository.RecordRepository
	logger     *zap.Logger
}

// NewRecordService creates a new record service
func NewRecordService(recordRepo repository.RecordRepository, logger *zap.Logger) *RecordService {
	return &RecordService{
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// List returns the user's records of one kind with filtering and pagination
func (s *RecordService) List(ctx context.Context, kind enum.RecordKind, userID uuid.UUID, params *repository.RecordFilterParams) (*pagination.PaginatedResult[entity.Record], error) {
	if params == nil {
		params = &repository.RecordFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	records, total, err := s.recordRepo.List(ctx, kind, userID, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(records, p), nil
}

// GetByID returns one record, scoped to its owner
func (s *RecordService) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Record, error) {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil || record.UserID != userID {
		return nil, apperror.NewNotFoundError("Record")
	}
	return record, nil
}

// GetByReceiptNumber looks a record up by its receipt number within one kind
func (s *RecordService) GetByReceiptNumber(ctx context.Context, userID uuid.UUID, kind enum.RecordKind, receiptNumber string) (*entity.Record, error) {
	record, err := s.recordRepo.GetByReceiptNumber(ctx, kind, receiptNumber)
	if err != nil {
		return nil, err
	}
	if record == nil || record.UserID != userID {
		return nil, apperror.NewNotFoundError("Record")
	}
	return record, nil
}

// UpdateReceipt edits a record's receipt fields. The change lands as a
// single history entry listing every field that actually changed;
// submitting identical values is a no-op.
func (s *RecordService) UpdateReceipt(ctx context.Context, userID, id uuid.UUID, update RecordUpdate) (*entity.Record, error) {
	record, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if record.Status.IsTerminal() {
		return nil, apperror.NewBadRequestError("Record is " + record.Status.String() + " and can no longer be edited")
	}

	var changes []entity.ChangeDetail

	if update.ReceiptDate != nil && *update.ReceiptDate != record.ReceiptDate {
		if !entity.IsValidReceiptDate(*update.ReceiptDate) {
			return nil, apperror.NewValidationMessages([]string{"Invalid Date"})
		}
		changes = append(changes, entity.ChangeDetail{
			Field: "receipt_date",
			Old:   record.ReceiptDate,
			New:   *update.ReceiptDate,
		})
	}

	if update.ReceiptNumber != nil && *update.ReceiptNumber != record.ReceiptNumber {
		if !entity.IsValidReceiptNumber(*update.ReceiptNumber) {
			return nil, apperror.NewValidationMessages([]string{"Missing Receipt Number"})
		}
		changes = append(changes, entity.ChangeDetail{
			Field: "receipt_number",
			Old:   record.ReceiptNumber,
			New:   *update.ReceiptNumber,
		})
	}

	if len(changes) == 0 {
		return record, nil
	}

	updated := record.AppendChange(userID, changes...)
	if update.ReceiptDate != nil {
		updated.ReceiptDate = *update.ReceiptDate
	}
	if update.ReceiptNumber != nil {
		updated.ReceiptNumber = *update.ReceiptNumber
	}

	if err := s.recordRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ChangeStatus moves a record along its lifecycle. Illegal transitions
// surface as 400s naming both statuses.
func (s *RecordService) ChangeStatus(ctx context.Context, userID, id uuid.UUID, target enum.RecordStatus) (*entity.Record, error) {
	record, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated, err := record.TransitionTo(target, userID)
	if err != nil {
		var transitionErr *entity.StatusTransitionError
		if errors.As(err, &transitionErr) {
			return nil, apperror.NewBadRequestError(transitionErr.Error())
		}
		if errors.Is(err, entity.ErrInvalidStatus) {
			return nil, apperror.NewBadRequestError("Unknown record status")
		}
		return nil, err
	}

	if err := s.recordRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("record status changed",
		zap.String("record_id", id.String()),
		zap.String("from", record.Status.String()),
		zap.String("to", target.String()),
	)
	return &updated, nil
}

// Delete removes a record. Only drafts can be deleted; everything past
// draft is part of the audit trail and must be cancelled instead.
func (s *RecordService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	record, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if record.Status != enum.RecordStatusDraft {
		return apperror.NewAppError(http.StatusConflict, "Only draft records can be deleted")
	}
	return s.recordRepo.Delete(ctx, id)
}
