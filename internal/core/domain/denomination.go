package domain

import (
	"fmt"

	"github.com/SscSPs/cash_breakdown/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Denomination is a single face value used as a unit in a breakdown.
type Denomination struct {
	Value decimal.Decimal `json:"value"`
	Name  string          `json:"name"`  // e.g., "500 Unit"
	Color string          `json:"color"` // e.g., "#4CAF50"
}

// DenominationSet is an immutable, strictly descending sequence of denominations.
// The zero value is not usable; build one with NewDenominationSet.
type DenominationSet struct {
	denominations []Denomination
}

// NewDenominationSet validates and freezes the given denominations.
// They must be non-empty, positive and strictly descending.
func NewDenominationSet(denominations ...Denomination) (*DenominationSet, error) {
	if len(denominations) == 0 {
		return nil, fmt.Errorf("%w: denomination set must not be empty", apperrors.ErrValidation)
	}
	for i, d := range denominations {
		if !d.Value.IsPositive() {
			return nil, fmt.Errorf("%w: denomination %s must be positive", apperrors.ErrValidation, d.Value)
		}
		if i > 0 && !d.Value.LessThan(denominations[i-1].Value) {
			return nil, fmt.Errorf("%w: denominations must be strictly descending (%s after %s)",
				apperrors.ErrValidation, d.Value, denominations[i-1].Value)
		}
	}

	frozen := make([]Denomination, len(denominations))
	copy(frozen, denominations)
	return &DenominationSet{denominations: frozen}, nil
}

// DefaultDenominationSet returns the fixed set used by the application.
func DefaultDenominationSet() *DenominationSet {
	set, err := NewDenominationSet(
		Denomination{Value: decimal.NewFromInt(500), Name: "500 Unit", Color: "#4CAF50"}, // Green
		Denomination{Value: decimal.NewFromInt(200), Name: "200 Unit", Color: "#2196F3"}, // Blue
		Denomination{Value: decimal.NewFromInt(100), Name: "100 Unit", Color: "#FF9800"}, // Orange
		Denomination{Value: decimal.NewFromInt(50), Name: "50 Unit", Color: "#9C27B0"},   // Purple
		Denomination{Value: decimal.NewFromInt(25), Name: "25 Unit", Color: "#F44336"},   // Red
		Denomination{Value: decimal.NewFromInt(10), Name: "10 Unit", Color: "#795548"},   // Brown
	)
	if err != nil {
		panic(fmt.Sprintf("default denomination set is invalid: %v", err))
	}
	return set
}

// Denominations returns a copy of the denominations in descending order.
func (s *DenominationSet) Denominations() []Denomination {
	out := make([]Denomination, len(s.denominations))
	copy(out, s.denominations)
	return out
}

// Values returns the face values in descending order.
func (s *DenominationSet) Values() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s.denominations))
	for i, d := range s.denominations {
		out[i] = d.Value
	}
	return out
}

// Len returns the number of denominations in the set.
func (s *DenominationSet) Len() int {
	return len(s.denominations)
}

// At returns the i-th denomination in descending order.
func (s *DenominationSet) At(i int) Denomination {
	return s.denominations[i]
}

// Smallest returns the last (smallest) denomination.
func (s *DenominationSet) Smallest() Denomination {
	return s.denominations[len(s.denominations)-1]
}

// Lookup finds the denomination with the given face value.
func (s *DenominationSet) Lookup(value decimal.Decimal) (Denomination, bool) {
	for _, d := range s.denominations {
		if d.Value.Equal(value) {
			return d, true
		}
	}
	return Denomination{}, false
}
