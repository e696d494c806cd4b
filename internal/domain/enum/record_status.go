package enum

// RecordStatus represents the lifecycle status of a purchase or sale record
type RecordStatus string

const (
	RecordStatusDraft     RecordStatus = "draft"
	RecordStatusSubmitted RecordStatus = "submitted"
	RecordStatusApproved  RecordStatus = "approved"
	RecordStatusPaid      RecordStatus = "paid"
	RecordStatusCancelled RecordStatus = "cancelled"
)

// IsValid checks if the status is a known RecordStatus
func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusDraft, RecordStatusSubmitted, RecordStatusApproved,
		RecordStatusPaid, RecordStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s RecordStatus) String() string {
	return string(s)
}

// IsTerminal returns true for statuses with no outgoing transitions
func (s RecordStatus) IsTerminal() bool {
	return s == RecordStatusPaid || s == RecordStatusCancelled
}

// CanTransitionTo checks if the status can legally transition to target.
// The lifecycle is draft -> submitted -> approved -> paid, with cancelled
// reachable from any non-terminal status.
func (s RecordStatus) CanTransitionTo(target RecordStatus) bool {
	if target == RecordStatusCancelled {
		return !s.IsTerminal()
	}
	switch s {
	case RecordStatusDraft:
		return target == RecordStatusSubmitted
	case RecordStatusSubmitted:
		return target == RecordStatusApproved
	case RecordStatusApproved:
		return target == RecordStatusPaid
	}
	return false
}
