package routes

import (
	"villa_backend/internal/handlers"
	"villa_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Setup регистрирует все маршруты приложения под /api
func Setup(r *gin.Engine, h *handlers.AppHandlers) {
	api := r.Group("/api")

	api.GET("/health", h.HealthHandler.Check)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.Register)
		auth.POST("/login", h.AuthHandler.Login)
	}

	// Публичный каталог
	properties := api.Group("/properties")
	{
		properties.GET("", h.PropertyHandler.List)
		properties.GET("/:id", h.PropertyHandler.GetByID)
	}

	// Маршруты авторизованного пользователя
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/users/profile", h.UserHandler.GetProfile)
		authed.PUT("/users/profile", h.UserHandler.UpdateProfile)
		authed.PUT("/users/password", h.AuthHandler.ChangePassword)

		authed.POST("/properties/:id/save", h.PropertyHandler.Save)
		authed.DELETE("/properties/:id/save", h.PropertyHandler.Unsave)

		authed.POST("/bookings", h.BookingHandler.Create)
		authed.GET("/bookings", h.BookingHandler.List)
		authed.PUT("/bookings/:id/cancel", h.BookingHandler.Cancel)

		authed.POST("/payments", h.PaymentHandler.Create)
		authed.GET("/payments", h.PaymentHandler.List)

		authed.POST("/messages", h.ChatHandler.Send)
		authed.GET("/messages", h.ChatHandler.List)
		authed.PUT("/messages/:id/read", h.ChatHandler.MarkRead)

		authed.GET("/dashboard/stats", h.DashboardHandler.Stats)
		authed.GET("/dashboard/saved-properties", h.PropertyHandler.ListSaved)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/properties", h.PropertyHandler.Create)
		admin.PUT("/properties/:id", h.PropertyHandler.Update)
		admin.DELETE("/properties/:id", h.PropertyHandler.Delete)

		admin.GET("/stats", h.DashboardHandler.AdminStats)
		admin.GET("/users", h.UserHandler.ListClients)
		admin.PUT("/users/:id/status", h.UserHandler.SetUserStatus)
	}
}
