package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cash_breakdown/internal/apperrors"
	"github.com/SscSPs/cash_breakdown/internal/core/domain"
	portssvc "github.com/SscSPs/cash_breakdown/internal/core/ports/services"
	"github.com/SscSPs/cash_breakdown/internal/dto"
	"github.com/SscSPs/cash_breakdown/internal/middleware"
	"github.com/SscSPs/cash_breakdown/internal/utils/denomination"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// conversionCompletedEvent is the analytics event sent after every successful conversion.
const conversionCompletedEvent = "conversion_completed"

const (
	// maxFractionDigits bounds how many fractional digits a raw amount may carry.
	maxFractionDigits int32 = 64
	// maxExponent bounds exponent notation such as "5e9" before any arithmetic runs.
	maxExponent int32 = 18
)

// DefaultMaxAmount is the largest scaled amount accepted when no other limit is configured.
var DefaultMaxAmount = decimal.NewFromInt(1_000_000)

// conversionService implements the ConversionSvcFacade interface
type conversionService struct {
	BaseService
	set         *domain.DenominationSet
	scaleFactor decimal.Decimal
	maxAmount   decimal.Decimal
	validate    *validator.Validate
	events      portssvc.EventPublisher
	now         func() time.Time
}

// ConversionServiceOption is a functional option for configuring the conversion service
type ConversionServiceOption func(*conversionService)

// WithDenominationSet replaces the default denomination set
func WithDenominationSet(set *domain.DenominationSet) ConversionServiceOption {
	return func(s *conversionService) {
		s.set = set
	}
}

// WithEventPublisher sets the analytics publisher
func WithEventPublisher(events portssvc.EventPublisher) ConversionServiceOption {
	return func(s *conversionService) {
		s.events = events
	}
}

// WithMaxAmount sets the largest scaled amount Convert accepts. Non-positive limits are ignored.
func WithMaxAmount(maxAmount decimal.Decimal) ConversionServiceOption {
	return func(s *conversionService) {
		if maxAmount.IsPositive() {
			s.maxAmount = maxAmount
		}
	}
}

// WithClock overrides the time source used to stamp conversions
func WithClock(now func() time.Time) ConversionServiceOption {
	return func(s *conversionService) {
		s.now = now
	}
}

// NewConversionService creates a conversion service dividing raw amounts by scaleFactor.
// scaleFactor must be positive.
func NewConversionService(scaleFactor decimal.Decimal, options ...ConversionServiceOption) portssvc.ConversionSvcFacade {
	svc := &conversionService{
		set:         domain.DefaultDenominationSet(),
		scaleFactor: scaleFactor,
		maxAmount:   DefaultMaxAmount,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		now:         time.Now,
	}
	for _, opt := range options {
		opt(svc)
	}
	return svc
}

// Ensure conversionService implements the interface
var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

func (s *conversionService) ListDenominations(ctx context.Context) []domain.Denomination {
	return s.set.Denominations()
}

func (s *conversionService) ScaleFactor() decimal.Decimal {
	return s.scaleFactor
}

func (s *conversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*domain.Conversion, error) {
	if err := s.validate.Struct(req); err != nil {
		s.LogWarn(ctx, "Conversion request failed validation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	raw := strings.TrimSpace(req.Amount)
	original, err := decimal.NewFromString(raw)
	if err != nil {
		s.LogWarn(ctx, "Amount is not a number", slog.String("amount", raw))
		return nil, fmt.Errorf("%w: amount %q is not a number", apperrors.ErrInvalidInput, raw)
	}
	if exp := original.Exponent(); exp < -maxFractionDigits || exp > maxExponent {
		s.LogWarn(ctx, "Amount is out of range", slog.String("amount", raw))
		return nil, fmt.Errorf("%w: amount %q is out of range", apperrors.ErrInvalidInput, raw)
	}
	if original.IsNegative() {
		s.LogWarn(ctx, "Amount is negative", slog.String("amount", raw))
		return nil, fmt.Errorf("%w: amount %q must not be negative", apperrors.ErrInvalidInput, raw)
	}

	scaled := s.scale(original)
	if scaled.GreaterThan(s.maxAmount) {
		s.LogWarn(ctx, "Amount exceeds maximum", slog.String("amount", raw), slog.String("max_amount", s.maxAmount.String()))
		return nil, fmt.Errorf("%w: amount %q exceeds the maximum of %s after scaling", apperrors.ErrInvalidInput, raw, s.maxAmount)
	}
	breakdown := denomination.Decompose(scaled, s.set)

	conv := &domain.Conversion{
		ConversionID:   uuid.NewString(),
		OriginalAmount: original,
		ScaleFactor:    s.scaleFactor,
		ScaledAmount:   scaled,
		Breakdown:      breakdown,
		CreatedAt:      s.now(),
	}

	s.LogInfo(ctx, "Amount converted",
		slog.String("conversion_id", conv.ConversionID),
		slog.String("original_amount", original.String()),
		slog.String("scaled_amount", scaled.String()),
		slog.Int64("total_units", breakdown.TotalUnits()),
		slog.Bool("rounded_up", breakdown.RoundedUp),
	)
	s.publish(ctx, conv)

	return conv, nil
}

// scale divides amount by the scale factor, keeping enough fractional digits that a
// positive amount never scales to zero.
func (s *conversionService) scale(amount decimal.Decimal) decimal.Decimal {
	places := int32(len(s.scaleFactor.Ceil().String()))
	if exp := amount.Exponent(); exp < 0 {
		places -= exp
	}
	return amount.DivRound(s.scaleFactor, places)
}

func (s *conversionService) publish(ctx context.Context, conv *domain.Conversion) {
	if s.events == nil {
		return
	}
	distinctID, ok := middleware.GetRequestIDFromCtx(ctx)
	if !ok {
		distinctID = conv.ConversionID
	}
	s.events.Enqueue(distinctID, conversionCompletedEvent, map[string]any{
		"conversion_id": conv.ConversionID,
		"scaled_amount": conv.ScaledAmount.String(),
		"total_units":   conv.Breakdown.TotalUnits(),
		"rounded_up":    conv.Breakdown.RoundedUp,
	})
}
