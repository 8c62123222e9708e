package domain_test

import (
	"testing"

	"github.com/SscSPs/cash_breakdown/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBreakdown_Totals(t *testing.T) {
	b := domain.Breakdown{
		Entries: []domain.BreakdownEntry{
			{Denomination: denom("500"), Count: 2},
			{Denomination: denom("25"), Count: 0},
			{Denomination: denom("10"), Count: 3},
		},
	}

	assert.True(t, decimal.NewFromInt(1030).Equal(b.Total()))
	assert.Equal(t, int64(5), b.TotalUnits())
	assert.False(t, b.IsEmpty())
	assert.Equal(t, int64(3), b.Count(decimal.NewFromInt(10)))
	assert.Equal(t, int64(0), b.Count(decimal.NewFromInt(25)))
	assert.Equal(t, int64(0), b.Count(decimal.NewFromInt(7)))
	assert.True(t, decimal.NewFromInt(30).Equal(b.Entries[2].Value()))
}

func TestBreakdown_IsEmpty(t *testing.T) {
	b := domain.Breakdown{
		Entries: []domain.BreakdownEntry{
			{Denomination: denom("500")},
			{Denomination: denom("10")},
		},
	}

	assert.True(t, b.IsEmpty())
	assert.True(t, b.Total().IsZero())
}
