package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.57, Round2(10.565))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 0.0, Round2(0))
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 20.0, LineTotal(10.0, 2))
	assert.Equal(t, 0.3, LineTotal(0.1, 3))
	// Each line total is rounded to 2 decimals
	assert.Equal(t, 33.33, LineTotal(3.333, 10))
}

func TestComputeTotalRoundsOnceAtTheEnd(t *testing.T) {
	items := []LineItem{
		{UnitPrice: 0.1, Quantity: 1, TotalPrice: 0.1},
		{UnitPrice: 0.2, Quantity: 1, TotalPrice: 0.2},
		{UnitPrice: 0.3, Quantity: 1, TotalPrice: 0.3},
	}

	// Naive float addition gives 0.6000000000000001
	assert.Equal(t, 0.6, ComputeTotal(items))
}

func TestComputeTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, ComputeTotal(nil))
}
