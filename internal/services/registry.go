package services

// ServiceContainer bundles the services for handler wiring.
type ServiceContainer struct {
	VideoService  VideoService
	WidgetService WidgetService
}
