package denomination

import (
	"github.com/SscSPs/cash_breakdown/internal/core/domain"
	"github.com/shopspring/decimal"
)

// residualPlaces is the number of fractional digits the running remainder is rounded to
// after every subtraction.
const residualPlaces int32 = 2

// Decompose breaks amount into the denominations of set, largest first.
// Any residual smaller than the smallest denomination is folded into the smallest
// denomination with ceiling division. For amounts with at most two fractional digits
// the represented total is therefore never below amount and exceeds it by less than
// one smallest unit.
// The amount must be non-negative and small enough that amount / smallest fits in an
// int64; callers validate it before calling.
func Decompose(amount decimal.Decimal, set *domain.DenominationSet) domain.Breakdown {
	entries := make([]domain.BreakdownEntry, set.Len())
	remaining := amount

	for i := 0; i < set.Len(); i++ {
		d := set.At(i)
		entries[i] = domain.BreakdownEntry{Denomination: d}
		if remaining.LessThan(d.Value) {
			continue
		}
		count, rest := remaining.QuoRem(d.Value, 0)
		entries[i].Count = count.IntPart()
		remaining = rest.Round(residualPlaces)
	}

	breakdown := domain.Breakdown{
		Amount:   amount,
		Entries:  entries,
		Leftover: remaining,
	}

	if remaining.IsPositive() {
		last := len(entries) - 1
		entries[last].Count += ceilQuotient(remaining, set.Smallest().Value)
		breakdown.RoundedUp = true
	}

	return breakdown
}

// ceilQuotient returns ceil(a / b) for positive a and b without rounding the quotient first.
func ceilQuotient(a, b decimal.Decimal) int64 {
	q, r := a.QuoRem(b, 0)
	n := q.IntPart()
	if r.IsPositive() {
		n++
	}
	return n
}
