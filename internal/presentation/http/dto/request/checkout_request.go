package request

// ReceiptFormRequest is one receipt form per counterparty group. Date
// and receipt number are deliberately unvalidated at the binding layer:
// the checkout reports form problems as a message list covering every
// group at once.
type ReceiptFormRequest struct {
	CounterpartySlug string `json:"counterparty_slug" binding:"required"`
	Date             string `json:"date"`
	ReceiptNumber    string `json:"receipt_number"`
}

// CheckoutRequest submits the cart with one receipt form per
// counterparty group
type CheckoutRequest struct {
	Forms []ReceiptFormRequest `json:"forms" binding:"required,min=1,dive"`
}
