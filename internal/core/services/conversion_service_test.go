package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cash_breakdown/internal/apperrors"
	"github.com/SscSPs/cash_breakdown/internal/core/domain"
	portssvc "github.com/SscSPs/cash_breakdown/internal/core/ports/services"
	"github.com/SscSPs/cash_breakdown/internal/core/services"
	"github.com/SscSPs/cash_breakdown/internal/dto"
	"github.com/SscSPs/cash_breakdown/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

// Ensure mock implements the interface
var _ portssvc.EventPublisher = (*MockEventPublisher)(nil)

// --- Test Suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	mockEvents *MockEventPublisher
	fixedNow   time.Time
	service    portssvc.ConversionSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockEvents = new(MockEventPublisher)
	suite.fixedNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewConversionService(
		decimal.NewFromInt(100),
		services.WithEventPublisher(suite.mockEvents),
		services.WithClock(func() time.Time { return suite.fixedNow }),
	)
}

// --- Test Cases ---

func (suite *ConversionServiceTestSuite) TestConvert_Success() {
	ctx := context.Background()
	suite.mockEvents.On("Enqueue", mock.AnythingOfType("string"), "conversion_completed", mock.MatchedBy(func(p map[string]any) bool {
		return p["total_units"] == int64(5) && p["rounded_up"] == false
	})).Return().Once()

	conv, err := suite.service.Convert(ctx, dto.ConvertRequest{Amount: " 78500 "})

	suite.Require().NoError(err)
	suite.Require().NotNil(conv)
	suite.NotEmpty(conv.ConversionID)
	suite.True(decimal.NewFromInt(78500).Equal(conv.OriginalAmount))
	suite.True(decimal.NewFromInt(785).Equal(conv.ScaledAmount))
	suite.True(decimal.NewFromInt(100).Equal(conv.ScaleFactor))
	suite.Equal(suite.fixedNow, conv.CreatedAt)
	suite.Equal(int64(1), conv.Breakdown.Count(decimal.NewFromInt(500)))
	suite.Equal(int64(1), conv.Breakdown.Count(decimal.NewFromInt(200)))
	suite.Equal(int64(0), conv.Breakdown.Count(decimal.NewFromInt(100)))
	suite.False(conv.Breakdown.RoundedUp)
	suite.mockEvents.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvert_FractionalScaledAmountRoundsUp() {
	ctx := context.Background()
	suite.mockEvents.On("Enqueue", mock.Anything, mock.Anything, mock.Anything).Return().Once()

	conv, err := suite.service.Convert(ctx, dto.ConvertRequest{Amount: "500"})

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(5).Equal(conv.ScaledAmount))
	suite.Equal(int64(1), conv.Breakdown.Count(decimal.NewFromInt(10)))
	suite.True(conv.Breakdown.RoundedUp)
}

func (suite *ConversionServiceTestSuite) TestConvert_Zero() {
	ctx := context.Background()
	suite.mockEvents.On("Enqueue", mock.Anything, mock.Anything, mock.Anything).Return().Once()

	conv, err := suite.service.Convert(ctx, dto.ConvertRequest{Amount: "0"})

	suite.Require().NoError(err)
	suite.True(conv.Breakdown.IsEmpty())
	suite.False(conv.Breakdown.RoundedUp)
}

func (suite *ConversionServiceTestSuite) TestConvert_InvalidInput() {
	ctx := context.Background()

	for _, raw := range []string{"", "   ", "abc", "12,50", "1.2.3", "-100", "NaN"} {
		conv, err := suite.service.Convert(ctx, dto.ConvertRequest{Amount: raw})

		suite.Require().Error(err, "amount %q", raw)
		suite.Nil(conv)
		suite.ErrorIs(err, apperrors.ErrInvalidInput, "amount %q", raw)
		suite.ErrorIs(err, apperrors.ErrValidation, "amount %q", raw)
	}
	suite.mockEvents.AssertNotCalled(suite.T(), "Enqueue", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvert_OutOfRangeInput() {
	ctx := context.Background()
	inputs := []string{
		"1e2147483647",
		"1e2000000000",
		"1e-2000000000",
		"5e9",
		"100000001",
		"99999999999999999999999999999999999999999999999999999999999999",
	}

	for _, raw := range inputs {
		var (
			conv *domain.Conversion
			err  error
		)
		suite.NotPanics(func() {
			conv, err = suite.service.Convert(ctx, dto.ConvertRequest{Amount: raw})
		}, "amount %q", raw)

		suite.Nil(conv, "amount %q", raw)
		suite.ErrorIs(err, apperrors.ErrInvalidInput, "amount %q", raw)
	}
	suite.mockEvents.AssertNotCalled(suite.T(), "Enqueue", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvert_AtMaxAmount() {
	ctx := context.Background()
	suite.mockEvents.On("Enqueue", mock.Anything, mock.Anything, mock.Anything).Return().Once()

	conv, err := suite.service.Convert(ctx, dto.ConvertRequest{Amount: "1e8"})

	suite.Require().NoError(err)
	suite.True(services.DefaultMaxAmount.Equal(conv.ScaledAmount))
	suite.Equal(int64(2000), conv.Breakdown.Count(decimal.NewFromInt(500)))
	suite.False(conv.Breakdown.RoundedUp)
}

func (suite *ConversionServiceTestSuite) TestConvert_CustomMaxAmount() {
	svc := services.NewConversionService(decimal.NewFromInt(100), services.WithMaxAmount(decimal.NewFromInt(1000)))

	_, err := svc.Convert(context.Background(), dto.ConvertRequest{Amount: "100000"})
	suite.NoError(err)

	_, err = svc.Convert(context.Background(), dto.ConvertRequest{Amount: "100001"})
	suite.ErrorIs(err, apperrors.ErrInvalidInput)
}

func (suite *ConversionServiceTestSuite) TestConvert_TinyPositiveAmountStillRoundsUp() {
	ctx := context.Background()
	suite.mockEvents.On("Enqueue", mock.Anything, mock.Anything, mock.Anything).Return().Once()

	conv, err := suite.service.Convert(ctx, dto.ConvertRequest{Amount: "0.00000000000000001"})

	suite.Require().NoError(err)
	suite.True(conv.ScaledAmount.IsPositive(), "scaled amount %s", conv.ScaledAmount)
	suite.Equal(int64(1), conv.Breakdown.Count(decimal.NewFromInt(10)))
	suite.True(conv.Breakdown.RoundedUp)
}

func (suite *ConversionServiceTestSuite) TestConvert_ScalesByNonDecimalFactor() {
	svc := services.NewConversionService(decimal.NewFromInt(3))

	conv, err := svc.Convert(context.Background(), dto.ConvertRequest{Amount: "0.001"})

	suite.Require().NoError(err)
	suite.True(conv.ScaledAmount.IsPositive(), "scaled amount %s", conv.ScaledAmount)
	suite.Equal(int64(1), conv.Breakdown.Count(decimal.NewFromInt(10)))
}

func (suite *ConversionServiceTestSuite) TestListDenominations() {
	denominations := suite.service.ListDenominations(context.Background())

	suite.Require().Len(denominations, 6)
	suite.Equal("500 Unit", denominations[0].Name)
	suite.Equal("10 Unit", denominations[5].Name)
	suite.True(decimal.NewFromInt(100).Equal(suite.service.ScaleFactor()))
}

func (suite *ConversionServiceTestSuite) TestConvert_CustomDenominationSet() {
	set, err := domain.NewDenominationSet(
		domain.Denomination{Value: decimal.NewFromInt(5), Name: "five"},
		domain.Denomination{Value: decimal.NewFromInt(1), Name: "one"},
	)
	suite.Require().NoError(err)
	svc := services.NewConversionService(decimal.NewFromInt(1), services.WithDenominationSet(set))

	conv, err := svc.Convert(context.Background(), dto.ConvertRequest{Amount: "13"})

	suite.Require().NoError(err)
	suite.Equal(int64(2), conv.Breakdown.Count(decimal.NewFromInt(5)))
	suite.Equal(int64(3), conv.Breakdown.Count(decimal.NewFromInt(1)))
}

func (suite *ConversionServiceTestSuite) TestNewServiceContainer() {
	cfg := &config.Config{ScaleFactor: decimal.NewFromInt(10)}

	container := services.NewServiceContainer(cfg, nil)

	suite.Require().NotNil(container.Conversion)
	conv, err := container.Conversion.Convert(context.Background(), dto.ConvertRequest{Amount: "5000"})
	suite.Require().NoError(err)
	suite.Equal(int64(1), conv.Breakdown.Count(decimal.NewFromInt(500)))
}

// --- Run Test Suite ---
func TestConversionService(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
