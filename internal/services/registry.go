package services

import "villa_backend/internal/email"

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService      AuthService
	UserService      UserService
	PropertyService  PropertyService
	DashboardService DashboardService
	BookingService   BookingService
	PaymentService   PaymentService
	ChatService      ChatService
	EmailProvider    email.Provider
}
