package services

import (
	"context"

	"github.com/SscSPs/cash_breakdown/internal/core/domain"
	"github.com/SscSPs/cash_breakdown/internal/dto"
	"github.com/shopspring/decimal"
)

// ConversionReaderSvc defines read operations on the fixed conversion setup
type ConversionReaderSvc interface {
	// ListDenominations returns the fixed denomination set in descending order.
	ListDenominations(ctx context.Context) []domain.Denomination

	// ScaleFactor returns the factor raw amounts are divided by.
	ScaleFactor() decimal.Decimal
}

// ConversionWriterSvc defines the conversion operation
type ConversionWriterSvc interface {
	// Convert parses, scales and decomposes the raw amount in req.
	// Unusable input returns an error wrapping apperrors.ErrInvalidInput.
	Convert(ctx context.Context, req dto.ConvertRequest) (*domain.Conversion, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	ConversionReaderSvc
	ConversionWriterSvc
}
