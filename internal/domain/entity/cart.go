package entity

import (
	"github.com/google/uuid"
)

// LineItem is one product/quantity/price entry within a cart or record.
// TotalPrice always equals unit_price * quantity rounded to 2 decimals.
type LineItem struct {
	ID               uuid.UUID `json:"id"`
	ProductID        uuid.UUID `json:"product_id"`
	Name             string    `json:"name"`
	Unit             string    `json:"unit"`
	UnitPrice        float64   `json:"unit_price"`
	Quantity         int       `json:"quantity"`
	TotalPrice       float64   `json:"total_price"`
	CounterpartyName string    `json:"counterparty_name"`
	CounterpartySlug string    `json:"counterparty_slug"`
	CounterpartyTIN  string    `json:"counterparty_tin"`
}

// CatalogSelection is the portion of a catalog product captured into a
// line item when it is added to a cart.
type CatalogSelection struct {
	ProductID        uuid.UUID
	Name             string
	Unit             string
	UnitPrice        float64
	CounterpartyName string
	CounterpartySlug string
	CounterpartyTIN  string
}

// Cart is an ordered collection of line items keyed by product ID:
// adding a product already present merges quantities instead of
// creating a duplicate row. Scoped to one user and record kind.
type Cart struct {
	Items []LineItem `json:"items"`
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{Items: []LineItem{}}
}

// Find returns the line item with the given ID, or nil
func (c *Cart) Find(id uuid.UUID) *LineItem {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// FindByProduct returns the line item for the given product ID, or nil
func (c *Cart) FindByProduct(productID uuid.UUID) *LineItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// AddItem adds a catalog selection to the cart. If a line item for the
// same product exists its quantity is incremented by qty; otherwise a
// new line item is appended. Non-positive qty is coerced to 1.
func (c *Cart) AddItem(sel CatalogSelection, qty int) LineItem {
	if qty < 1 {
		qty = 1
	}

	if existing := c.FindByProduct(sel.ProductID); existing != nil {
		existing.Quantity += qty
		existing.TotalPrice = LineTotal(existing.UnitPrice, existing.Quantity)
		return *existing
	}

	item := LineItem{
		ID:               uuid.New(),
		ProductID:        sel.ProductID,
		Name:             sel.Name,
		Unit:             sel.Unit,
		UnitPrice:        sel.UnitPrice,
		Quantity:         qty,
		TotalPrice:       LineTotal(sel.UnitPrice, qty),
		CounterpartyName: sel.CounterpartyName,
		CounterpartySlug: sel.CounterpartySlug,
		CounterpartyTIN:  sel.CounterpartyTIN,
	}
	c.Items = append(c.Items, item)
	return item
}

// RemoveItem deletes the line item with the given ID. Removing an
// absent item is a no-op.
func (c *Cart) RemoveItem(id uuid.UUID) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of a line item, clamped to a minimum
// of 1, and recomputes its total price. Returns false if no line item
// with the given ID exists.
func (c *Cart) UpdateQuantity(id uuid.UUID, qty int) bool {
	item := c.Find(id)
	if item == nil {
		return false
	}
	if qty < 1 {
		qty = 1
	}
	item.Quantity = qty
	item.TotalPrice = LineTotal(item.UnitPrice, item.Quantity)
	return true
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = []LineItem{}
}

// IsEmpty reports whether the cart has no line items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalQuantity returns the sum of all line item quantities
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalAmount returns the grand total of all line items, rounded once
// at the final sum
func (c *Cart) TotalAmount() float64 {
	return ComputeTotal(c.Items)
}

// ComputeTotal sums line item totals, rounding only the final sum
func ComputeTotal(items []LineItem) float64 {
	totals := make([]float64, len(items))
	for i, item := range items {
		totals[i] = item.TotalPrice
	}
	return sumRounded(totals)
}
