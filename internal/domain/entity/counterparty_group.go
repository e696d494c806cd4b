package entity

// CounterpartyGroup is a derived view of cart items belonging to one
// counterparty (supplier or branch). Recomputed from the cart whenever
// items change, never stored.
type CounterpartyGroup struct {
	CounterpartyName string     `json:"counterparty_name"`
	CounterpartySlug string     `json:"counterparty_slug"`
	CounterpartyTIN  string     `json:"counterparty_tin"`
	Items            []LineItem `json:"items"`
	Subtotal         float64    `json:"subtotal"`
}

// GroupByCounterparty groups line items by counterparty, preserving
// first-seen order. Items are grouped by slug, falling back to name
// when a slug is absent. Each group's subtotal is the rounded sum of
// its line totals.
func GroupByCounterparty(items []LineItem) []CounterpartyGroup {
	var order []string
	byKey := make(map[string]*CounterpartyGroup)

	for _, item := range items {
		key := item.CounterpartySlug
		if key == "" {
			key = item.CounterpartyName
		}

		group, ok := byKey[key]
		if !ok {
			group = &CounterpartyGroup{
				CounterpartyName: item.CounterpartyName,
				CounterpartySlug: item.CounterpartySlug,
				CounterpartyTIN:  item.CounterpartyTIN,
			}
			byKey[key] = group
			order = append(order, key)
		}
		group.Items = append(group.Items, item)
	}

	groups := make([]CounterpartyGroup, 0, len(order))
	for _, key := range order {
		group := byKey[key]
		group.Subtotal = ComputeTotal(group.Items)
		groups = append(groups, *group)
	}
	return groups
}
