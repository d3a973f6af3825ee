package dto

import "villa_backend/internal/models"

// DashboardStats - счетчики личного кабинета
type DashboardStats struct {
	SavedCount    int64 `json:"savedCount"`
	BookingsCount int64 `json:"bookingsCount"`
	PaymentsCount int64 `json:"paymentsCount"`
	MessagesCount int64 `json:"messagesCount"`
}

// AdminStats - агрегаты по всей платформе
type AdminStats struct {
	TotalProperties    int64            `json:"totalProperties"`
	TotalUsers         int64            `json:"totalUsers"`
	TotalRevenue       float64          `json:"totalRevenue"`
	UnreadMessages     int64            `json:"unreadMessages"`
	RecentTransactions []models.Payment `json:"recentTransactions"`
}
