package enum

// RecordKind distinguishes purchase records (supplier counterparty) from
// sale records (branch counterparty)
type RecordKind string

const (
	RecordKindPurchase RecordKind = "purchase"
	RecordKindSale     RecordKind = "sale"
)

// IsValid checks if the kind is a known RecordKind
func (k RecordKind) IsValid() bool {
	return k == RecordKindPurchase || k == RecordKindSale
}

// String returns the string representation of the kind
func (k RecordKind) String() string {
	return string(k)
}

// ParseRecordKind parses a string into a RecordKind
func ParseRecordKind(s string) (RecordKind, bool) {
	k := RecordKind(s)
	return k, k.IsValid()
}
