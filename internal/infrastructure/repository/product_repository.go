package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	domainRepo "github.com/jefdiaz/balanceone-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Branch").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Branch").
		Where("id IN ?", ids).
		Find(&products).Error
	return products, err
}

func (r *productRepository) ListBySupplierSlug(ctx context.Context, slug string) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN suppliers ON suppliers.id = products.supplier_id").
		Where("suppliers.slug = ? AND suppliers.deleted_at IS NULL", slug).
		Preload("Supplier").
		Order("products.name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) ListByBranchSlug(ctx context.Context, slug string) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN branches ON branches.id = products.branch_id").
		Where("branches.slug = ? AND branches.deleted_at IS NULL", slug).
		Preload("Branch").
		Order("products.name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}
