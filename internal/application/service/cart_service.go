package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/internal/domain/enum"
	"github.com/jefdiaz/balanceone-api/internal/domain/repository"
	"github.com/jefdiaz/balanceone-api/pkg/apperror"
	"go.uber.org/zap"
)

// CartService manages the per-user, per-kind shopping carts. Cart state
// lives in memory for the duration of a request and is snapshotted to
// the key-value store on every mutation; persistence failures are
// logged and never block the cart operation itself.
type CartService struct {
	kv          repository.KVStore
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(kv repository.KVStore, productRepo repository.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		kv:          kv,
		productRepo: productRepo,
		logger:      logger,
	}
}

func cartKey(userID uuid.UUID, kind enum.RecordKind) string {
	return fmt.Sprintf("cart:%s:%s", userID, kind)
}

// Get loads the user's cart for the given kind. A missing or corrupt
// snapshot yields an empty cart rather than an error.
func (s *CartService) Get(ctx context.Context, userID uuid.UUID, kind enum.RecordKind) (*entity.Cart, error) {
	value, ok, err := s.kv.Get(ctx, cartKey(userID, kind))
	if err != nil {
		return nil, err
	}
	if !ok {
		return entity.NewCart(), nil
	}

	var cart entity.Cart
	if err := json.Unmarshal([]byte(value), &cart); err != nil {
		s.logger.Warn("discarding unreadable cart snapshot",
			zap.String("user_id", userID.String()),
			zap.String("kind", kind.String()),
			zap.Error(err),
		)
		return entity.NewCart(), nil
	}
	if cart.Items == nil {
		cart.Items = []entity.LineItem{}
	}
	return &cart, nil
}

// AddItem adds qty units of a catalog product to the cart, merging with
// an existing line item for the same product.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, kind enum.RecordKind, productID uuid.UUID, qty int) (*entity.Cart, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	sel, err := selectionFromProduct(product, kind)
	if err != nil {
		return nil, err
	}

	cart, err := s.Get(ctx, userID, kind)
	if err != nil {
		return nil, err
	}

	cart.AddItem(sel, qty)
	s.persist(ctx, userID, kind, cart)
	return cart, nil
}

// UpdateQuantity sets the quantity of a cart line item
func (s *CartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, kind enum.RecordKind, itemID uuid.UUID, qty int) (*entity.Cart, error) {
	cart, err := s.Get(ctx, userID, kind)
	if err != nil {
		return nil, err
	}

	if !cart.UpdateQuantity(itemID, qty) {
		return nil, apperror.NewNotFoundError("Cart item")
	}

	s.persist(ctx, userID, kind, cart)
	return cart, nil
}

// RemoveItem deletes a line item from the cart
func (s *CartService) RemoveItem(ctx context.Context, userID uuid.UUID, kind enum.RecordKind, itemID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.Get(ctx, userID, kind)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(itemID)
	s.persist(ctx, userID, kind, cart)
	return cart, nil
}

// Clear empties the cart and drops its snapshot
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID, kind enum.RecordKind) error {
	if err := s.kv.Delete(ctx, cartKey(userID, kind)); err != nil {
		s.logger.Warn("failed to delete cart snapshot",
			zap.String("user_id", userID.String()),
			zap.String("kind", kind.String()),
			zap.Error(err),
		)
	}
	return nil
}

// Groups returns the cart's items grouped by counterparty in first-seen
// order, the shape the checkout review screen renders.
func (s *CartService) Groups(ctx context.Context, userID uuid.UUID, kind enum.RecordKind) ([]entity.CounterpartyGroup, error) {
	cart, err := s.Get(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	return entity.GroupByCounterparty(cart.Items), nil
}

// persist writes the cart snapshot best-effort: a storage failure is
// logged but the in-memory cart mutation already succeeded.
func (s *CartService) persist(ctx context.Context, userID uuid.UUID, kind enum.RecordKind, cart *entity.Cart) {
	value, err := json.Marshal(cart)
	if err != nil {
		s.logger.Warn("failed to encode cart snapshot",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return
	}
	if err := s.kv.Set(ctx, cartKey(userID, kind), string(value)); err != nil {
		s.logger.Warn("failed to persist cart snapshot",
			zap.String("user_id", userID.String()),
			zap.String("kind", kind.String()),
			zap.Error(err),
		)
	}
}

// selectionFromProduct captures the catalog fields copied into a line
// item, resolving the counterparty for the cart's side of the ledger.
func selectionFromProduct(product *entity.Product, kind enum.RecordKind) (entity.CatalogSelection, error) {
	sel := entity.CatalogSelection{
		ProductID: product.ID,
		Name:      product.Name,
		Unit:      product.Unit,
		UnitPrice: product.UnitPrice,
	}

	switch kind {
	case enum.RecordKindPurchase:
		if product.Supplier == nil {
			return sel, apperror.NewBadRequestError("Product is not part of the purchasing catalog")
		}
		sel.CounterpartyName = product.Supplier.Name
		sel.CounterpartySlug = product.Supplier.Slug
		sel.CounterpartyTIN = product.Supplier.TIN
	case enum.RecordKindSale:
		if product.Branch == nil {
			return sel, apperror.NewBadRequestError("Product is not part of the sales catalog")
		}
		sel.CounterpartyName = product.Branch.Name
		sel.CounterpartySlug = product.Branch.Slug
		sel.CounterpartyTIN = product.Branch.TIN
	default:
		return sel, apperror.NewBadRequestError("Unknown record kind")
	}

	return sel, nil
}
