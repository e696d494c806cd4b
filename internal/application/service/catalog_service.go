package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/internal/domain/repository"
	"github.com/jefdiaz/balanceone-api/internal/infrastructure/upstream"
	"github.com/jefdiaz/balanceone-api/pkg/apperror"
	"go.uber.org/zap"
)

// ProductInput carries the writable fields of a catalog product
type ProductInput struct {
	Name        string
	Description *string
	Unit        string
	UnitPrice   float64
	ImageURL    *string
}

// SyncSummary reports how many rows a catalog sync touched
type SyncSummary struct {
	Suppliers int `json:"suppliers"`
	Branches  int `json:"branches"`
	Products  int `json:"products"`
}

// CatalogService serves the two catalogs (purchasing and sales) from
// the local database and can refresh them from the upstream function
// backend when one is configured. Carts always resolve products
// locally, so the sync path is what keeps prices current.
type CatalogService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	branchRepo   repository.BranchRepository
	upstream     *upstream.Client // nil when no upstream is configured
	logger       *zap.Logger
}

// NewCatalogService creates a new catalog service. The upstream client
// may be nil, in which case sync requests are rejected.
func NewCatalogService(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	branchRepo repository.BranchRepository,
	upstreamClient *upstream.Client,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		branchRepo:   branchRepo,
		upstream:     upstreamClient,
		logger:       logger,
	}
}

// SupplierProducts returns the purchasing catalog for one supplier
func (s *CatalogService) SupplierProducts(ctx context.Context, userID uuid.UUID, slug string) ([]entity.Product, error) {
	supplier, err := s.supplierRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.UserID != userID {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return s.productRepo.ListBySupplierSlug(ctx, slug)
}

// BranchProducts returns the sales catalog for one branch
func (s *CatalogService) BranchProducts(ctx context.Context, userID uuid.UUID, slug string) ([]entity.Product, error) {
	branch, err := s.branchRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.UserID != userID {
		return nil, apperror.NewNotFoundError("Branch")
	}
	return s.productRepo.ListByBranchSlug(ctx, slug)
}

// CreateSupplierProduct adds a product to a supplier's purchasing catalog
func (s *CatalogService) CreateSupplierProduct(ctx context.Context, userID uuid.UUID, slug string, input ProductInput) (*entity.Product, error) {
	supplier, err := s.supplierRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.UserID != userID {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	product := newProduct(userID, input)
	product.SupplierID = &supplier.ID
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// CreateBranchProduct adds a product to a branch's sales catalog
func (s *CatalogService) CreateBranchProduct(ctx context.Context, userID uuid.UUID, slug string, input ProductInput) (*entity.Product, error) {
	branch, err := s.branchRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.UserID != userID {
		return nil, apperror.NewNotFoundError("Branch")
	}

	product := newProduct(userID, input)
	product.BranchID = &branch.ID
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct edits a catalog product's fields
func (s *CatalogService) UpdateProduct(ctx context.Context, userID, id uuid.UUID, input ProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.UserID != userID {
		return nil, apperror.NewNotFoundError("Product")
	}

	product.Name = input.Name
	product.Description = input.Description
	if input.Unit != "" {
		product.Unit = input.Unit
	}
	product.UnitPrice = input.UnitPrice
	product.ImageURL = input.ImageURL

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a catalog product
func (s *CatalogService) DeleteProduct(ctx context.Context, userID, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil || product.UserID != userID {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// SyncFromUpstream refreshes the local catalogs from the function
// backend: counterparties are upserted by slug and their products by
// name, so repeated syncs converge instead of duplicating rows.
func (s *CatalogService) SyncFromUpstream(ctx context.Context, userID uuid.UUID) (*SyncSummary, error) {
	if s.upstream == nil {
		return nil, apperror.NewBadRequestError("No upstream catalog is configured")
	}

	summary := &SyncSummary{}

	suppliers, err := s.upstream.GetSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range suppliers {
		supplier, err := s.syncSupplier(ctx, userID, row)
		if err != nil {
			return nil, err
		}
		summary.Suppliers++

		products, err := s.upstream.GetSupplierProducts(ctx, supplier.Slug)
		if err != nil {
			return nil, err
		}
		n, err := s.syncProducts(ctx, userID, products, &supplier.ID, nil,
			func() ([]entity.Product, error) { return s.productRepo.ListBySupplierSlug(ctx, supplier.Slug) })
		if err != nil {
			return nil, err
		}
		summary.Products += n
	}

	branches, err := s.upstream.GetBranches(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range branches {
		branch, err := s.syncBranch(ctx, userID, row)
		if err != nil {
			return nil, err
		}
		summary.Branches++

		products, err := s.upstream.GetBranchProducts(ctx, branch.Slug)
		if err != nil {
			return nil, err
		}
		n, err := s.syncProducts(ctx, userID, products, nil, &branch.ID,
			func() ([]entity.Product, error) { return s.productRepo.ListByBranchSlug(ctx, branch.Slug) })
		if err != nil {
			return nil, err
		}
		summary.Products += n
	}

	s.logger.Info("catalog synced from upstream",
		zap.Int("suppliers", summary.Suppliers),
		zap.Int("branches", summary.Branches),
		zap.Int("products", summary.Products),
	)
	return summary, nil
}

func (s *CatalogService) syncSupplier(ctx context.Context, userID uuid.UUID, row upstream.Supplier) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetBySlug(ctx, row.Slug)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		supplier = &entity.Supplier{
			UserID:  userID,
			Name:    row.Name,
			Slug:    row.Slug,
			TIN:     row.TIN,
			Address: optional(row.Address),
		}
		return supplier, s.supplierRepo.Create(ctx, supplier)
	}

	supplier.Name = row.Name
	supplier.TIN = row.TIN
	supplier.Address = optional(row.Address)
	return supplier, s.supplierRepo.Update(ctx, supplier)
}

func (s *CatalogService) syncBranch(ctx context.Context, userID uuid.UUID, row upstream.Branch) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetBySlug(ctx, row.Slug)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		branch = &entity.Branch{
			UserID:  userID,
			Name:    row.Name,
			Slug:    row.Slug,
			TIN:     row.TIN,
			Address: optional(row.Address),
		}
		return branch, s.branchRepo.Create(ctx, branch)
	}

	branch.Name = row.Name
	branch.TIN = row.TIN
	branch.Address = optional(row.Address)
	return branch, s.branchRepo.Update(ctx, branch)
}

func (s *CatalogService) syncProducts(
	ctx context.Context,
	userID uuid.UUID,
	rows []upstream.Product,
	supplierID, branchID *uuid.UUID,
	listExisting func() ([]entity.Product, error),
) (int, error) {
	existing, err := listExisting()
	if err != nil {
		return 0, err
	}
	byName := make(map[string]*entity.Product, len(existing))
	for i := range existing {
		byName[existing[i].Name] = &existing[i]
	}

	for _, row := range rows {
		if current, ok := byName[row.Name]; ok {
			current.Description = optional(row.Description)
			if row.Unit != "" {
				current.Unit = row.Unit
			}
			current.UnitPrice = row.UnitPrice
			current.ImageURL = optional(row.ImageURL)
			if err := s.productRepo.Update(ctx, current); err != nil {
				return 0, err
			}
			continue
		}

		product := &entity.Product{
			UserID:      userID,
			SupplierID:  supplierID,
			BranchID:    branchID,
			Name:        row.Name,
			Description: optional(row.Description),
			Unit:        row.Unit,
			UnitPrice:   row.UnitPrice,
			ImageURL:    optional(row.ImageURL),
		}
		if product.Unit == "" {
			product.Unit = "pcs"
		}
		if err := s.productRepo.Create(ctx, product); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

func newProduct(userID uuid.UUID, input ProductInput) *entity.Product {
	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}
	return &entity.Product{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Unit:        unit,
		UnitPrice:   input.UnitPrice,
		ImageURL:    input.ImageURL,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
