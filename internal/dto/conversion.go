package dto

import (
	"github.com/SscSPs/cash_breakdown/internal/core/domain"
	"github.com/SscSPs/cash_breakdown/internal/presentation"
	"github.com/shopspring/decimal"
)

// ConvertRequest carries the raw amount exactly as the user typed it.
type ConvertRequest struct {
	Amount string `json:"amount" form:"amount" binding:"required" validate:"required,max=64"`
}

// BreakdownEntryResponse is one denomination of a conversion result.
type BreakdownEntryResponse struct {
	Denomination decimal.Decimal `json:"denomination"`
	Name         string          `json:"name"`
	Color        string          `json:"color"`
	Count        int64           `json:"count"`
	Value        decimal.Decimal `json:"value"`
}

// ConversionResponse defines the data returned for a conversion.
type ConversionResponse struct {
	ConversionID     string                   `json:"conversionID"`
	OriginalAmount   decimal.Decimal          `json:"originalAmount"`
	ScaleFactor      decimal.Decimal          `json:"scaleFactor"`
	ScaledAmount     decimal.Decimal          `json:"scaledAmount"`
	Entries          []BreakdownEntryResponse `json:"entries"`
	Leftover         decimal.Decimal          `json:"leftover"`
	RoundedUp        bool                     `json:"roundedUp"`
	RepresentedTotal decimal.Decimal          `json:"representedTotal"`
	TotalUnits       int64                    `json:"totalUnits"`
	View             presentation.View        `json:"view"`
}

// DenominationResponse defines the data returned for a denomination.
type DenominationResponse struct {
	Value decimal.Decimal `json:"value"`
	Name  string          `json:"name"`
	Color string          `json:"color"`
}

// ToConversionResponse converts a domain.Conversion and its rendered view to a ConversionResponse DTO.
func ToConversionResponse(conv *domain.Conversion, view presentation.View) ConversionResponse {
	entries := make([]BreakdownEntryResponse, len(conv.Breakdown.Entries))
	for i, e := range conv.Breakdown.Entries {
		entries[i] = BreakdownEntryResponse{
			Denomination: e.Denomination.Value,
			Name:         e.Denomination.Name,
			Color:        e.Denomination.Color,
			Count:        e.Count,
			Value:        e.Value(),
		}
	}
	return ConversionResponse{
		ConversionID:     conv.ConversionID,
		OriginalAmount:   conv.OriginalAmount,
		ScaleFactor:      conv.ScaleFactor,
		ScaledAmount:     conv.ScaledAmount,
		Entries:          entries,
		Leftover:         conv.Breakdown.Leftover,
		RoundedUp:        conv.Breakdown.RoundedUp,
		RepresentedTotal: conv.Breakdown.Total(),
		TotalUnits:       conv.Breakdown.TotalUnits(),
		View:             view,
	}
}

// ToListDenominationResponse converts denominations to DenominationResponse DTOs, preserving order.
func ToListDenominationResponse(denominations []domain.Denomination) []DenominationResponse {
	res := make([]DenominationResponse, len(denominations))
	for i, d := range denominations {
		res[i] = DenominationResponse{Value: d.Value, Name: d.Name, Color: d.Color}
	}
	return res
}
