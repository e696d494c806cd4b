package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acmeWidget() CatalogSelection {
	return CatalogSelection{
		ProductID:        uuid.New(),
		Name:             "Widget",
		Unit:             "pcs",
		UnitPrice:        10.0,
		CounterpartyName: "Acme Corp",
		CounterpartySlug: "acme-corp",
		CounterpartyTIN:  "123-456-789",
	}
}

func TestCartAddItem(t *testing.T) {
	cart := NewCart()
	sel := acmeWidget()

	item := cart.AddItem(sel, 1)

	require.Len(t, cart.Items, 1)
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Equal(t, sel.ProductID, item.ProductID)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 10.0, item.TotalPrice)
	assert.Equal(t, "acme-corp", item.CounterpartySlug)
}

func TestCartAddItemMergesSameProduct(t *testing.T) {
	cart := NewCart()
	sel := acmeWidget()

	first := cart.AddItem(sel, 1)
	merged := cart.AddItem(sel, 1)

	require.Len(t, cart.Items, 1, "adding the same product twice must not create a second row")
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, 2, merged.Quantity)
	assert.Equal(t, 20.0, merged.TotalPrice)
}

func TestCartAddItemClampsQuantity(t *testing.T) {
	tests := []struct {
		name string
		qty  int
		want int
	}{
		{"zero", 0, 1},
		{"negative", -5, 1},
		{"positive", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			item := cart.AddItem(acmeWidget(), tt.qty)
			assert.Equal(t, tt.want, item.Quantity)
		})
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := NewCart()
	item := cart.AddItem(acmeWidget(), 2)

	ok := cart.UpdateQuantity(item.ID, 5)

	require.True(t, ok)
	got := cart.Find(item.ID)
	require.NotNil(t, got)
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, 50.0, got.TotalPrice)
}

func TestCartUpdateQuantityClampsToOne(t *testing.T) {
	cart := NewCart()
	item := cart.AddItem(acmeWidget(), 2)

	require.True(t, cart.UpdateQuantity(item.ID, 0))

	got := cart.Find(item.ID)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.Quantity)
	assert.Equal(t, 10.0, got.TotalPrice)
}

func TestCartUpdateQuantityMissingItem(t *testing.T) {
	cart := NewCart()
	assert.False(t, cart.UpdateQuantity(uuid.New(), 3))
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart()
	item := cart.AddItem(acmeWidget(), 1)
	other := cart.AddItem(acmeWidget2(), 1)

	cart.RemoveItem(item.ID)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, other.ID, cart.Items[0].ID)

	// Removing an absent item is a no-op
	cart.RemoveItem(uuid.New())
	assert.Len(t, cart.Items, 1)
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(acmeWidget(), 2)
	cart.AddItem(acmeWidget2(), 1)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalQuantity())
	assert.Equal(t, 0.0, cart.TotalAmount())
}

func TestCartTotals(t *testing.T) {
	cart := NewCart()
	cart.AddItem(acmeWidget(), 2)  // 20.00
	cart.AddItem(acmeWidget2(), 3) // 16.50

	assert.Equal(t, 5, cart.TotalQuantity())
	assert.InDelta(t, 36.50, cart.TotalAmount(), 0.001)
}

// Line totals stay consistent with unit price and quantity through any
// sequence of mutations.
func TestCartLineTotalInvariant(t *testing.T) {
	cart := NewCart()
	a := cart.AddItem(acmeWidget(), 2)
	cart.AddItem(acmeWidget2(), 1)
	cart.UpdateQuantity(a.ID, 7)
	cart.AddItem(acmeWidget(), 1)

	for _, item := range cart.Items {
		assert.Equal(t, LineTotal(item.UnitPrice, item.Quantity), item.TotalPrice)
	}
}

func acmeWidget2() CatalogSelection {
	return CatalogSelection{
		ProductID:        uuid.New(),
		Name:             "Gadget",
		Unit:             "box",
		UnitPrice:        5.50,
		CounterpartyName: "Acme Corp",
		CounterpartySlug: "acme-corp",
		CounterpartyTIN:  "123-456-789",
	}
}
