package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/internal/domain/enum"
	domainRepo "github.com/jefdiaz/balanceone-api/internal/domain/repository"
	"gorm.io/gorm"
)

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *gorm.DB) domainRepo.RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *recordRepository) CreateBatch(ctx context.Context, records []entity.Record) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

func (r *recordRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	var record entity.Record
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *recordRepository) GetByReceiptNumber(ctx context.Context, kind enum.RecordKind, receiptNumber string) (*entity.Record, error) {
	var record entity.Record
	err := r.db.WithContext(ctx).
		First(&record, "kind = ? AND receipt_number = ?", kind, receiptNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *recordRepository) List(ctx context.Context, kind enum.RecordKind, userID uuid.UUID, params *domainRepo.RecordFilterParams) ([]entity.Record, int64, error) {
	var records []entity.Record
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Record{}).
		Where("kind = ? AND user_id = ?", kind, userID)

	if params.Search != "" {
		query = query.Where("receipt_number ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.CounterpartySlug != "" {
		query = query.Where("counterparty_slug = ?", params.CounterpartySlug)
	}

	if params.StartDate != nil {
		query = query.Where("receipt_date >= ?", params.StartDate.Format("2006-01-02"))
	}

	if params.EndDate != nil {
		query = query.Where("receipt_date <= ?", params.EndDate.Format("2006-01-02"))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&records).Error

	return records, total, err
}

func (r *recordRepository) Update(ctx context.Context, record *entity.Record) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Record{}, "id = ?", id).Error
}
