package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	PropertyHandler  *PropertyHandler
	DashboardHandler *DashboardHandler
	BookingHandler   *BookingHandler
	PaymentHandler   *PaymentHandler
	ChatHandler      *ChatHandler
	HealthHandler    *HealthHandler
}
