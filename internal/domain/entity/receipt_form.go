package entity

import (
	"regexp"
	"strings"
	"time"
)

var receiptDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidReceiptDate reports whether s is a YYYY-MM-DD string that
// denotes a real calendar date. Shapes like "25-1-1" fail the pattern;
// well-shaped impossible dates like "2025-02-30" fail the round trip.
func IsValidReceiptDate(s string) bool {
	if !receiptDatePattern.MatchString(s) {
		return false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	return t.Format("2006-01-02") == s
}

// IsValidReceiptNumber reports whether s is non-empty after trimming
func IsValidReceiptNumber(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ReceiptForm carries the receipt metadata a user fills in at checkout,
// one form per counterparty group.
type ReceiptForm struct {
	Date             string `json:"date"`
	ReceiptNumber    string `json:"receipt_number"`
	CounterpartySlug string `json:"counterparty_slug,omitempty"`
}

// Validate returns human-readable error messages; an empty list means
// the form is eligible for submission.
func (f *ReceiptForm) Validate() []string {
	var errs []string

	if f.Date == "" {
		errs = append(errs, "Missing Date")
	} else if !IsValidReceiptDate(f.Date) {
		errs = append(errs, "Invalid Date")
	}

	if !IsValidReceiptNumber(f.ReceiptNumber) {
		errs = append(errs, "Missing Receipt Number")
	}

	return errs
}
