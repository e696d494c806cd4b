package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/internal/domain/enum"
	"github.com/jefdiaz/balanceone-api/pkg/pagination"
)

// RecordFilterParams holds filtering options for record lists
type RecordFilterParams struct {
	Pagination       *pagination.PaginationParams
	Search           string // matches receipt number
	Status           *enum.RecordStatus
	CounterpartySlug string
	StartDate        *time.Time
	EndDate          *time.Time
	SortBy           string
	SortOrder        string
}

// RecordRepository defines the interface for purchase/sale record data access
type RecordRepository interface {
	Create(ctx context.Context, record *entity.Record) error
	CreateBatch(ctx context.Context, records []entity.Record) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Record, error)
	GetByReceiptNumber(ctx context.Context, kind enum.RecordKind, receiptNumber string) (*entity.Record, error)
	List(ctx context.Context, kind enum.RecordKind, userID uuid.UUID, params *RecordFilterParams) ([]entity.Record, int64, error)
	Update(ctx context.Context, record *entity.Record) error
	Delete(ctx context.Context, id uuid.UUID) error
}
