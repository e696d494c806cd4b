package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/pkg/pagination"
)

// CounterpartyFilterParams holds filtering options for counterparty lists
type CounterpartyFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
}

// SupplierRepository defines the interface for supplier data access
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Supplier, error)
	List(ctx context.Context, userID uuid.UUID, params *CounterpartyFilterParams) ([]entity.Supplier, int64, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BranchRepository defines the interface for branch data access
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Branch, error)
	List(ctx context.Context, userID uuid.UUID, params *CounterpartyFilterParams) ([]entity.Branch, int64, error)
	Update(ctx context.Context, branch *entity.Branch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
