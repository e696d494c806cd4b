package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jefdiaz/balanceone-api/internal/domain/entity"
	"github.com/jefdiaz/balanceone-api/internal/domain/enum"
	"github.com/jefdiaz/balanceone-api/internal/domain/repository"
	"github.com/jefdiaz/balanceone-api/internal/infrastructure/kvstore"
	"github.com/jefdiaz/balanceone-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRecordRepo captures created records in memory
type fakeRecordRepo struct {
	records []entity.Record
}

func (r *fakeRecordRepo) Create(ctx context.Context, record *entity.Record) error {
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeRecordRepo) CreateBatch(ctx context.Context, records []entity.Record) error {
	r.records = append(r.records, records...)
	return nil
}

func (r *fakeRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			return &r.records[i], nil
		}
	}
	return nil, nil
}

func (r *fakeRecordRepo) GetByReceiptNumber(ctx context.Context, kind enum.RecordKind, receiptNumber string) (*entity.Record, error) {
	for i := range r.records {
		if r.records[i].Kind == kind && r.records[i].ReceiptNumber == receiptNumber {
			return &r.records[i], nil
		}
	}
	return nil, nil
}

func (r *fakeRecordRepo) List(ctx context.Context, kind enum.RecordKind, userID uuid.UUID, params *repository.RecordFilterParams) ([]entity.Record, int64, error) {
	var out []entity.Record
	for _, rec := range r.records {
		if rec.Kind == kind && rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeRecordRepo) Update(ctx context.Context, record *entity.Record) error {
	for i := range r.records {
		if r.records[i].ID == record.ID {
			r.records[i] = *record
			return nil
		}
	}
	return nil
}

func (r *fakeRecordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return nil
}

// seedCheckout builds a cart with two Acme items and one Globex item
// and returns the wired services.
func seedCheckout(t *testing.T) (*CheckoutService, *CartService, *fakeRecordRepo, uuid.UUID) {
	t.Helper()

	acme := testSupplier("Acme", "acme")
	globex := testSupplier("Globex", "globex")

	widget := supplierProduct("Widget", 10.0, acme)  // qty 2 -> 20.00
	gadget := supplierProduct("Gadget", 5.0, acme)   // qty 1 -> 5.00
	gizmo := supplierProduct("Gizmo", 20.0, globex)  // qty 1 -> 20.00

	cartService := NewCartService(kvstore.NewMemoryStore(), newFakeProductRepo(widget, gadget, gizmo), zap.NewNop())
	recordRepo := &fakeRecordRepo{}
	checkoutService := NewCheckoutService(cartService, recordRepo, zap.NewNop())

	ctx := context.Background()
	userID := uuid.New()

	_, err := cartService.AddItem(ctx, userID, enum.RecordKindPurchase, widget.ID, 2)
	require.NoError(t, err)
	_, err = cartService.AddItem(ctx, userID, enum.RecordKindPurchase, gadget.ID, 1)
	require.NoError(t, err)
	_, err = cartService.AddItem(ctx, userID, enum.RecordKindPurchase, gizmo.ID, 1)
	require.NoError(t, err)

	return checkoutService, cartService, recordRepo, userID
}

func TestCheckoutCreatesOneRecordPerCounterparty(t *testing.T) {
	checkoutService, cartService, recordRepo, userID := seedCheckout(t)
	ctx := context.Background()

	records, err := checkoutService.Checkout(ctx, userID, enum.RecordKindPurchase, []entity.ReceiptForm{
		{CounterpartySlug: "acme", Date: "2025-06-15", ReceiptNumber: "OR-001"},
		{CounterpartySlug: "globex", Date: "2025-06-16", ReceiptNumber: "OR-002"},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Len(t, recordRepo.records, 2)

	acmeRecord := records[0]
	assert.Equal(t, "acme", acmeRecord.CounterpartySlug)
	assert.Equal(t, enum.RecordStatusSubmitted, acmeRecord.Status)
	assert.Equal(t, "2025-06-15", acmeRecord.ReceiptDate)
	assert.Equal(t, "OR-001", acmeRecord.ReceiptNumber)
	assert.Len(t, acmeRecord.Items, 2)
	assert.InDelta(t, 25.0, acmeRecord.TotalAmount, 0.001)
	assert.NotEqual(t, uuid.Nil, acmeRecord.ID)

	// One history entry recording the draft -> submitted transition
	require.Len(t, acmeRecord.ChangeHistory, 1)
	assert.Equal(t, "status", acmeRecord.ChangeHistory[0].Changes[0].Field)
	assert.Equal(t, "draft", acmeRecord.ChangeHistory[0].Changes[0].Old)
	assert.Equal(t, "submitted", acmeRecord.ChangeHistory[0].Changes[0].New)

	globexRecord := records[1]
	assert.Equal(t, "globex", globexRecord.CounterpartySlug)
	assert.InDelta(t, 20.0, globexRecord.TotalAmount, 0.001)

	// Cart is cleared after a successful checkout
	cart, err := cartService.Get(ctx, userID, enum.RecordKindPurchase)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCheckoutRejectsInvalidForms(t *testing.T) {
	checkoutService, cartService, recordRepo, userID := seedCheckout(t)
	ctx := context.Background()

	_, err := checkoutService.Checkout(ctx, userID, enum.RecordKindPurchase, []entity.ReceiptForm{
		{CounterpartySlug: "acme", Date: "2025-02-30", ReceiptNumber: "OR-001"},
		{CounterpartySlug: "globex", Date: "2025-06-16", ReceiptNumber: ""},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.Len(t, appErr.Errors, 2)
	assert.Equal(t, "Acme: Invalid Date", appErr.Errors[0].Message)
	assert.Equal(t, "Globex: Missing Receipt Number", appErr.Errors[1].Message)

	// Nothing written, cart untouched
	assert.Empty(t, recordRepo.records)
	cart, err := cartService.Get(ctx, userID, enum.RecordKindPurchase)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 3)
}

func TestCheckoutRejectsMissingForm(t *testing.T) {
	checkoutService, _, recordRepo, userID := seedCheckout(t)

	_, err := checkoutService.Checkout(context.Background(), userID, enum.RecordKindPurchase, []entity.ReceiptForm{
		{CounterpartySlug: "acme", Date: "2025-06-15", ReceiptNumber: "OR-001"},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.Len(t, appErr.Errors, 2)
	assert.Equal(t, "Globex: Missing Date", appErr.Errors[0].Message)
	assert.Equal(t, "Globex: Missing Receipt Number", appErr.Errors[1].Message)
	assert.Empty(t, recordRepo.records)
}

func TestCheckoutEmptyCart(t *testing.T) {
	cartService := NewCartService(kvstore.NewMemoryStore(), newFakeProductRepo(), zap.NewNop())
	checkoutService := NewCheckoutService(cartService, &fakeRecordRepo{}, zap.NewNop())

	_, err := checkoutService.Checkout(context.Background(), uuid.New(), enum.RecordKindPurchase, nil)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
