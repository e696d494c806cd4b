package entity

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to 2 decimal places
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// LineTotal computes unit_price * quantity rounded to 2 decimal places
func LineTotal(unitPrice float64, quantity int) float64 {
	return decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		InexactFloat64()
}

// sumRounded sums already-rounded line totals in decimal and rounds the
// final sum once, so rounding error is never accumulated step by step.
func sumRounded(values []float64) float64 {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	return sum.Round(2).InexactFloat64()
}
