package main

import (
	"log"
	"net/http"
	"os"

	_ "swachvillage/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"swachvillage/internal/auth"
	"swachvillage/internal/cache"
	"swachvillage/internal/config"
	"swachvillage/internal/db"
	"swachvillage/internal/handler"
	"swachvillage/internal/model"
	"swachvillage/internal/repository"
	"swachvillage/internal/router"
	"swachvillage/internal/service"
)

// @title Swach Village API
// @version 1.0
// @description Product certification and feedback platform with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Println("WARNING: JWT_SECRET not set, using development default")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.ProductVerification{},
			&model.Feedback{},
			&model.Product{},
			&model.BusinessCertification{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.BusinessCertification{},
		&model.Product{},
		&model.Feedback{},
		&model.ProductVerification{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	certRepo := repository.NewCertificationRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)
	verificationRepo := repository.NewVerificationRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, certRepo, jwtService)
	certService := service.NewCertificationService(certRepo, userRepo)
	dashboardService := service.NewDashboardService(certRepo, userRepo, productRepo, feedbackRepo, verificationRepo)
	productService := service.NewProductService(productRepo, certRepo, feedbackRepo, verificationRepo, cacheClient)
	feedbackService := service.NewFeedbackService(feedbackRepo, productRepo)
	consumerService := service.NewConsumerService(userRepo, feedbackRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, jwtService)
	businessHandler := handler.NewBusinessHandler(certService, dashboardService)
	productHandler := handler.NewProductHandler(productService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	consumerHandler := handler.NewConsumerHandler(consumerService, productService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		businessHandler,
		productHandler,
		feedbackHandler,
		consumerHandler,
	)

	// Log swagger full path
	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
