package domain

import (
	"github.com/shopspring/decimal"
)

// BreakdownEntry is the number of units of one denomination.
type BreakdownEntry struct {
	Denomination Denomination `json:"denomination"`
	Count        int64        `json:"count"`
}

// Value returns count × face value.
func (e BreakdownEntry) Value() decimal.Decimal {
	return e.Denomination.Value.Mul(decimal.NewFromInt(e.Count))
}

// Breakdown is the per-denomination result of decomposing an amount.
// Entries follow the descending order of the set and include zero counts.
type Breakdown struct {
	Amount    decimal.Decimal  `json:"amount"`
	Entries   []BreakdownEntry `json:"entries"`
	Leftover  decimal.Decimal  `json:"leftover"`  // residual before it was folded into the smallest denomination
	RoundedUp bool             `json:"roundedUp"` // true when Leftover was folded
}

// Count returns the count recorded for the given face value, or 0 if absent.
func (b Breakdown) Count(value decimal.Decimal) int64 {
	for _, e := range b.Entries {
		if e.Denomination.Value.Equal(value) {
			return e.Count
		}
	}
	return 0
}

// Total returns the sum of count × face value over all entries.
func (b Breakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b.Entries {
		total = total.Add(e.Value())
	}
	return total
}

// TotalUnits returns the number of physical units across all denominations.
func (b Breakdown) TotalUnits() int64 {
	var units int64
	for _, e := range b.Entries {
		units += e.Count
	}
	return units
}

// IsEmpty reports whether every count is zero.
func (b Breakdown) IsEmpty() bool {
	return b.TotalUnits() == 0
}
