package handlers

// AppHandlers bundles the handlers for route registration.
type AppHandlers struct {
	VideoHandler     *VideoHandler
	WidgetHandler    *WidgetHandler
	SignHandler      *SignHandler
	DashboardHandler *DashboardHandler
	PublicHandler    *PublicHandler
}
