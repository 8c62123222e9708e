package services

// ServiceContainer holds instances of all the application services.
// It is the entry point handlers and the CLI use to reach service functionality.
type ServiceContainer struct {
	Conversion ConversionSvcFacade
}

// EventPublisher sends analytics events. Implementations must be safe to call when disabled.
type EventPublisher interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}
