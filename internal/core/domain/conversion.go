package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conversion is the outcome of one conversion request. It is built fresh per
// request and never stored.
type Conversion struct {
	ConversionID   string          `json:"conversionID"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	ScaleFactor    decimal.Decimal `json:"scaleFactor"`
	ScaledAmount   decimal.Decimal `json:"scaledAmount"`
	Breakdown      Breakdown       `json:"breakdown"`
	CreatedAt      time.Time       `json:"createdAt"`
}
