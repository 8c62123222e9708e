package services

import (
	portssvc "github.com/SscSPs/cash_breakdown/internal/core/ports/services"
	"github.com/SscSPs/cash_breakdown/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// events may be nil to disable analytics.
func NewServiceContainer(cfg *config.Config, events portssvc.EventPublisher) *portssvc.ServiceContainer {
	options := []ConversionServiceOption{WithMaxAmount(cfg.MaxAmount)}
	if events != nil {
		options = append(options, WithEventPublisher(events))
	}

	return &portssvc.ServiceContainer{
		Conversion: NewConversionService(cfg.ScaleFactor, options...),
	}
}
