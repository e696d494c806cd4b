package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineItem(counterparty, slug string, unitPrice float64, qty int) LineItem {
	return LineItem{
		ID:               uuid.New(),
		ProductID:        uuid.New(),
		Name:             "Item",
		Unit:             "pcs",
		UnitPrice:        unitPrice,
		Quantity:         qty,
		TotalPrice:       LineTotal(unitPrice, qty),
		CounterpartyName: counterparty,
		CounterpartySlug: slug,
	}
}

func TestGroupByCounterpartyFirstSeenOrder(t *testing.T) {
	items := []LineItem{
		lineItem("Acme", "acme", 10.0, 1),
		lineItem("Globex", "globex", 5.0, 1),
		lineItem("Acme", "acme", 3.0, 1),
	}

	groups := GroupByCounterparty(items)

	require.Len(t, groups, 2)
	assert.Equal(t, "acme", groups[0].CounterpartySlug)
	assert.Equal(t, "globex", groups[1].CounterpartySlug)

	require.Len(t, groups[0].Items, 2)
	require.Len(t, groups[1].Items, 1)
	assert.InDelta(t, 13.0, groups[0].Subtotal, 0.001)
	assert.InDelta(t, 5.0, groups[1].Subtotal, 0.001)
}

func TestGroupByCounterpartyFallsBackToName(t *testing.T) {
	items := []LineItem{
		lineItem("No Slug Co", "", 2.0, 1),
		lineItem("No Slug Co", "", 4.0, 1),
		lineItem("Other Co", "", 1.0, 1),
	}

	groups := GroupByCounterparty(items)

	require.Len(t, groups, 2)
	assert.Equal(t, "No Slug Co", groups[0].CounterpartyName)
	assert.Len(t, groups[0].Items, 2)
}

func TestGroupByCounterpartyEmpty(t *testing.T) {
	groups := GroupByCounterparty(nil)
	assert.Empty(t, groups)
}

func TestGroupByCounterpartyPreservesItemOrderWithinGroup(t *testing.T) {
	first := lineItem("Acme", "acme", 10.0, 1)
	second := lineItem("Acme", "acme", 3.0, 2)

	groups := GroupByCounterparty([]LineItem{first, second})

	require.Len(t, groups, 1)
	assert.Equal(t, first.ID, groups[0].Items[0].ID)
	assert.Equal(t, second.ID, groups[0].Items[1].ID)
}
