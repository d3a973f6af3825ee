package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"villa_backend/database"
	"villa_backend/internal/config"
	"villa_backend/internal/email"
	"villa_backend/internal/handlers"
	"villa_backend/internal/logger"
	"villa_backend/internal/middleware"
	"villa_backend/internal/models"
	"villa_backend/internal/repositories"
	"villa_backend/internal/routes"
	"villa_backend/internal/services"
	"villa_backend/internal/validator"
	"villa_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	bookingWorker := workers.NewBookingWorker(gormDB, repositories.NewBookingRepository())
	bookingWorker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает приложение вокруг переданного подключения.
// Интеграционные тесты используют его напрямую, без Run.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.Setup(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseTLS:    cfg.Email.UseTLS,
		})
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = email.NewMockProvider()
		logger.Warn("SMTP is not configured, emails are collected in memory")
	}

	userRepo := repositories.NewUserRepository()
	propertyRepo := repositories.NewPropertyRepository()
	savedRepo := repositories.NewSavedPropertyRepository()
	bookingRepo := repositories.NewBookingRepository()
	paymentRepo := repositories.NewPaymentRepository()
	messageRepo := repositories.NewMessageRepository()

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	propertyService := services.NewPropertyService(propertyRepo, savedRepo)
	dashboardService := services.NewDashboardService(savedRepo, bookingRepo, paymentRepo, messageRepo, userRepo, propertyRepo)
	bookingService := services.NewBookingService(bookingRepo, propertyRepo, userRepo, emailProvider)
	paymentService := services.NewPaymentService(paymentRepo, bookingRepo, services.NewSimulatedProvider(time.Now().UnixNano()))
	chatService := services.NewChatService(messageRepo, userRepo, services.NewSimulatedResponder())

	return &services.ServiceContainer{
		AuthService:      authService,
		UserService:      userService,
		PropertyService:  propertyService,
		DashboardService: dashboardService,
		BookingService:   bookingService,
		PaymentService:   paymentService,
		ChatService:      chatService,
		EmailProvider:    emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:      handlers.NewUserHandler(baseHandler, container.UserService),
		PropertyHandler:  handlers.NewPropertyHandler(baseHandler, container.PropertyService),
		DashboardHandler: handlers.NewDashboardHandler(baseHandler, container.DashboardService),
		BookingHandler:   handlers.NewBookingHandler(baseHandler, container.BookingService),
		PaymentHandler:   handlers.NewPaymentHandler(baseHandler, container.PaymentService),
		ChatHandler:      handlers.NewChatHandler(baseHandler, container.ChatService),
		HealthHandler:    handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		FirstName:    "Admin",
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
