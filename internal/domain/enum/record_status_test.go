package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordStatusIsValid(t *testing.T) {
	for _, s := range []RecordStatus{
		RecordStatusDraft, RecordStatusSubmitted, RecordStatusApproved,
		RecordStatusPaid, RecordStatusCancelled,
	} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, RecordStatus("shipped").IsValid())
	assert.False(t, RecordStatus("").IsValid())
}

func TestRecordStatusIsTerminal(t *testing.T) {
	assert.True(t, RecordStatusPaid.IsTerminal())
	assert.True(t, RecordStatusCancelled.IsTerminal())
	assert.False(t, RecordStatusDraft.IsTerminal())
	assert.False(t, RecordStatusSubmitted.IsTerminal())
	assert.False(t, RecordStatusApproved.IsTerminal())
}

func TestRecordStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from RecordStatus
		to   RecordStatus
		want bool
	}{
		{RecordStatusDraft, RecordStatusSubmitted, true},
		{RecordStatusSubmitted, RecordStatusApproved, true},
		{RecordStatusApproved, RecordStatusPaid, true},
		{RecordStatusDraft, RecordStatusApproved, false},
		{RecordStatusDraft, RecordStatusPaid, false},
		{RecordStatusSubmitted, RecordStatusDraft, false},
		{RecordStatusPaid, RecordStatusDraft, false},
		{RecordStatusPaid, RecordStatusApproved, false},
		{RecordStatusDraft, RecordStatusCancelled, true},
		{RecordStatusSubmitted, RecordStatusCancelled, true},
		{RecordStatusApproved, RecordStatusCancelled, true},
		{RecordStatusPaid, RecordStatusCancelled, false},
		{RecordStatusCancelled, RecordStatusCancelled, false},
		{RecordStatusCancelled, RecordStatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseRecordKind(t *testing.T) {
	kind, ok := ParseRecordKind("purchase")
	assert.True(t, ok)
	assert.Equal(t, RecordKindPurchase, kind)

	kind, ok = ParseRecordKind("sale")
	assert.True(t, ok)
	assert.Equal(t, RecordKindSale, kind)

	_, ok = ParseRecordKind("rental")
	assert.False(t, ok)
}
