package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/internal/domain/enum"
	"github.com/jefdiaz/balanceone-api/internal/domain/repository"
	"github.com/jefdiaz/balanceone-api/pkg/apperror"
	"go.uber.org/zap"
)

// CheckoutService turns a cart into one submitted record per
// counterparty group. Validation covers every group's receipt form
// before anything is written, so a checkout either produces all of its
// records or none.
type CheckoutService struct {
	cartService *CartService
	recordRepo  repository.RecordRepository
	logger      *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(cartService *CartService, recordRepo repository.RecordRepository, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		cartService: cartService,
		recordRepo:  recordRepo,
		logger:      logger,
	}
}

// Checkout validates the receipt forms against the cart's counterparty
// groups, assembles one record per group, persists them in a batch and
// clears the cart. Forms are matched to groups by counterparty slug.
func (s *CheckoutService) Checkout(ctx context.Context, userID uuid.UUID, kind enum.RecordKind, forms []entity.ReceiptForm) ([]entity.Record, error) {
	cart, err := s.cartService.Get(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}

	groups := entity.GroupByCounterparty(cart.Items)

	formsBySlug := make(map[string]entity.ReceiptForm, len(forms))
	for _, form := range forms {
		formsBySlug[form.CounterpartySlug] = form
	}

	var messages []string
	for _, group := range groups {
		form, ok := formsBySlug[group.CounterpartySlug]
		if !ok {
			messages = append(messages, prefixed(group, "Missing Date"), prefixed(group, "Missing Receipt Number"))
			continue
		}
		for _, msg := range form.Validate() {
			messages = append(messages, prefixed(group, msg))
		}
	}
	if len(messages) > 0 {
		return nil, apperror.NewValidationMessages(messages)
	}

	records := make([]entity.Record, 0, len(groups))
	for _, group := range groups {
		form := formsBySlug[group.CounterpartySlug]

		record := entity.Record{
			ID:               uuid.New(),
			Kind:             kind,
			UserID:           userID,
			CounterpartyName: group.CounterpartyName,
			CounterpartySlug: group.CounterpartySlug,
			CounterpartyTIN:  group.CounterpartyTIN,
			ReceiptDate:      form.Date,
			ReceiptNumber:    form.ReceiptNumber,
			Items:            append([]entity.LineItem(nil), group.Items...),
			TotalAmount:      entity.ComputeTotal(group.Items),
			Status:           enum.RecordStatusDraft,
			CreatedByID:      userID,
			ChangeHistory:    []entity.ChangeHistoryEntry{},
		}

		submitted, err := record.TransitionTo(enum.RecordStatusSubmitted, userID)
		if err != nil {
			return nil, err
		}
		records = append(records, submitted)
	}

	if err := s.recordRepo.CreateBatch(ctx, records); err != nil {
		return nil, err
	}

	s.logger.Info("checkout completed",
		zap.String("user_id", userID.String()),
		zap.String("kind", kind.String()),
		zap.Int("records", len(records)),
	)

	if err := s.cartService.Clear(ctx, userID, kind); err != nil {
		s.logger.Warn("failed to clear cart after checkout", zap.Error(err))
	}

	return records, nil
}

// prefixed labels a validation message with the counterparty it belongs
// to, so a multi-group checkout reports which form failed.
func prefixed(group entity.CounterpartyGroup, msg string) string {
	return group.CounterpartyName + ": " + msg
}
