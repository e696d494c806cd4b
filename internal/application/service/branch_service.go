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

// BranchService manages the sales-side counterparties
type BranchService struct {
	branchRepo repository.BranchRepository
	logger     *zap.Logger
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo repository.BranchRepository, logger *zap.Logger) *BranchService {
	return &BranchService{
		branchRepo: branchRepo,
		logger:     logger,
	}
}

// Create registers a new branch for the user
func (s *BranchService) Create(ctx context.Context, userID uuid.UUID, input CounterpartyInput) (*entity.Branch, error) {
	slug := utils.Slugify(input.Name)
	existing, err := s.branchRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A branch with this name already exists")
	}

	branch := &entity.Branch{
		UserID:  userID,
		Name:    input.Name,
		Slug:    slug,
		TIN:     input.TIN,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	s.logger.Info("branch created",
		zap.String("branch_id", branch.ID.String()),
		zap.String("slug", branch.Slug),
	)
	return branch, nil
}

// List returns the user's branches with pagination and search
func (s *BranchService) List(ctx context.Context, userID uuid.UUID, params *repository.CounterpartyFilterParams) (*pagination.PaginatedResult[entity.Branch], error) {
	if params == nil {
		params = &repository.CounterpartyFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	branches, total, err := s.branchRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(branches, p), nil
}

// GetByID returns one branch, scoped to its owner
func (s *BranchService) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.UserID != userID {
		return nil, apperror.NewNotFoundError("Branch")
	}
	return branch, nil
}

// GetBySlug returns one branch by slug, scoped to its owner
func (s *BranchService) GetBySlug(ctx context.Context, userID uuid.UUID, slug string) (*entity.Branch, error) {
	branch, err := s.branchRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.UserID != userID {
		return nil, apperror.NewNotFoundError("Branch")
	}
	return branch, nil
}

// Update edits a branch's contact fields, keeping the slug stable
func (s *BranchService) Update(ctx context.Context, userID, id uuid.UUID, input CounterpartyInput) (*entity.Branch, error) {
	branch, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	branch.Name = input.Name
	branch.TIN = input.TIN
	branch.Email = input.Email
	branch.Phone = input.Phone
	branch.Address = input.Address

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// Delete soft-deletes a branch
func (s *BranchService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.branchRepo.Delete(ctx, id)
}
