package entity

import (
	"errors"
	"fmt"

	"github.com/jefdiaz/balanceone-api/internal/domain/enum"
)

// ErrInvalidStatus is returned when a status value is not a known RecordStatus
var ErrInvalidStatus = errors.New("invalid record status")

// StatusTransitionError is returned when a status transition is not
// allowed by the record lifecycle.
type StatusTransitionError struct {
	From enum.RecordStatus
	To   enum.RecordStatus
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("cannot transition record from %s to %s", e.From, e.To)
}
