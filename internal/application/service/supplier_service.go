package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/internal/domain/repository"
	"github.com/jefdiaz/balanceone-api/pkg/apperror"
	"github.com/jefdiaz/balanceone-api/pkg/pagination"
	"github.com/jefdiaz/balanceone-api/pkg/utils"
	"go.uber.org/zap"
)

// CounterpartyInput carries the writable fields of a supplier or branch
type CounterpartyInput struct {
	Name    string
	TIN     string
	Email   *string
	Phone   *string
	Address *string
}

// SupplierService manages the purchasing-side counterparties
type SupplierService struct {
	supplierRepo repository.SupplierRepository
	logger       *zap.Logger
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create registers a new supplier for the user. The slug is derived
// from the name and must be unique.
func (s *SupplierService) Create(ctx context.Context, userID uuid.UUID, input CounterpartyInput) (*entity.Supplier, error) {
	slug := utils.Slugify(input.Name)
	existing, err := s.supplierRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A supplier with this name already exists")
	}

	supplier := &entity.Supplier{
		UserID:  userID,
		Name:    input.Name,
		Slug:    slug,
		TIN:     input.TIN,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	s.logger.Info("supplier created",
		zap.String("supplier_id", supplier.ID.String()),
		zap.String("slug", supplier.Slug),
	)
	return supplier, nil
}

// List returns the user's suppliers with pagination and search
func (s *SupplierService) List(ctx context.Context, userID uuid.UUID, params *repository.CounterpartyFilterParams) (*pagination.PaginatedResult[entity.Supplier], error) {
	if params == nil {
		params = &repository.CounterpartyFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	suppliers, total, err := s.supplierRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, p), nil
}

// GetByID returns one supplier, scoped to its owner
func (s *SupplierService) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.UserID != userID {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// GetBySlug returns one supplier by slug, scoped to its owner
func (s *SupplierService) GetBySlug(ctx context.Context, userID uuid.UUID, slug string) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.UserID != userID {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// Update edits a supplier's contact fields. The slug is stable once
// assigned so existing records keep pointing at the same counterparty.
func (s *SupplierService) Update(ctx context.Context, userID, id uuid.UUID, input CounterpartyInput) (*entity.Supplier, error) {
	supplier, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	supplier.Name = input.Name
	supplier.TIN = input.TIN
	supplier.Email = input.Email
	supplier.Phone = input.Phone
	supplier.Address = input.Address

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete soft-deletes a supplier
func (s *SupplierService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}
