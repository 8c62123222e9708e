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

const homeTemplate = "index.html"

// homePage is the data passed to the HTML template.
type homePage struct {
	Amount      string
	ScaleFactor string
	View        *presentation.View
}

// homeHandler serves the HTML converter page.
type homeHandler struct {
	conversionService portssvc.ConversionSvcFacade
	presenter         *presentation.Presenter
}

// registerHomeRoutes registers the HTML page routes. Conversions go through rateLimit.
func registerHomeRoutes(r *gin.Engine, conversionService portssvc.ConversionSvcFacade, presenter *presentation.Presenter, rateLimit gin.HandlerFunc) {
	h := &homeHandler{conversionService: conversionService, presenter: presenter}
	r.GET("/", h.getHome)
	r.POST("/convert", rateLimit, h.postConvert)
}

func (h *homeHandler) getHome(c *gin.Context) {
	c.HTML(http.StatusOK, homeTemplate, homePage{
		ScaleFactor: h.conversionService.ScaleFactor().String(),
	})
}

func (h *homeHandler) postConvert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	scale := h.conversionService.ScaleFactor()
	page := homePage{
		Amount:      c.PostForm("amount"),
		ScaleFactor: scale.String(),
	}

	conv, err := h.conversionService.Convert(c.Request.Context(), dto.ConvertRequest{Amount: page.Amount})
	if err != nil {
		var view presentation.View
		status := http.StatusBadRequest
		if errors.Is(err, apperrors.ErrInvalidInput) {
			view = h.presenter.InvalidView(scale)
		} else {
			logger.Error("Failed to convert amount", slog.String("error", err.Error()))
			view = h.presenter.ErrorView(err, scale)
			status = http.StatusInternalServerError
		}
		page.View = &view
		c.HTML(status, homeTemplate, page)
		return
	}

	view := h.presenter.View(conv)
	page.View = &view
	c.HTML(http.StatusOK, homeTemplate, page)
}
