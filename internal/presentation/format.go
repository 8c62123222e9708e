package presentation

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatAmount renders an amount with thousands separators and two decimals, e.g. "1,234.50".
func FormatAmount(d decimal.Decimal) string {
	rounded := d.Round(2)
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	n, _ := new(big.Int).SetString(whole, 10)

	formatted := humanize.BigComma(n) + "." + frac
	if rounded.IsNegative() {
		return "-" + formatted
	}
	return formatted
}

// percentage returns part as a share of total with one decimal, or "0.0" when total is zero.
func percentage(part, total decimal.Decimal) string {
	if !total.IsPositive() {
		return "0.0"
	}
	return part.Div(total).Mul(hundred).StringFixed(1)
}
