package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cash_breakdown/internal/apperrors"
	portssvc "github.com/SscSPs/cash_breakdown/internal/core/ports/services"
	"github.com/SscSPs/cash_breakdown/internal/dto"
	"github.com/SscSPs/cash_breakdown/internal/middleware"
	"github.com/SscSPs/cash_breakdown/internal/presentation"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body returned by the JSON API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// conversionHandler handles HTTP requests related to conversions.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
	presenter         *presentation.Presenter
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade, presenter *presentation.Presenter) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
		presenter:         presenter,
	}
}

// RegisterConversionRoutes registers the JSON API routes for conversions and denominations.
func RegisterConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade, presenter *presentation.Presenter) {
	h := newConversionHandler(conversionService, presenter)

	rg.GET("/denominations", h.listDenominations)
	rg.POST("/conversions", h.createConversion)
}

// createConversion godoc
// @Summary Convert an amount into denominations
// @Description Divides the raw amount by the configured scale factor and breaks the result into the fixed denominations
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Raw amount"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Unexpected failure"
// @Router /conversions [post]
func (h *conversionHandler) createConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateConversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid input"})
		return
	}

	logger.Info("Received request to convert amount", slog.String("amount", req.Amount))

	conv, err := h.conversionService.Convert(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			logger.Warn("Invalid amount", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid input"})
		} else {
			logger.Error("Failed to convert amount", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(conv, h.presenter.View(conv)))
}

// listDenominations godoc
// @Summary List denominations
// @Description Returns the fixed denomination set in descending order
// @Tags conversions
// @Produce  json
// @Success 200 {array} dto.DenominationResponse
// @Router /denominations [get]
func (h *conversionHandler) listDenominations(c *gin.Context) {
	denominations := h.conversionService.ListDenominations(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListDenominationResponse(denominations))
}
