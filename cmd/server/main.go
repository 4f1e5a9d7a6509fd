package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"domus/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"domus/internal/auth"
	"domus/internal/cache"
	"domus/internal/config"
	"domus/internal/db"
	"domus/internal/handler"
	"domus/internal/model"
	"domus/internal/repository"
	"domus/internal/router"
	"domus/internal/service"
	"domus/internal/storage"
)

// @title Domus Listing API
// @version 1.0
// @description Real-estate listing catalog with wishlists, uploads and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
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
			&model.Wishlist{},
			&model.House{},
			&model.Customer{},
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
		&model.Customer{},
		&model.House{},
		&model.Wishlist{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	imageStore, err := storage.NewImageStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("image store init: %v", err)
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(gormDB)
	houseRepo := repository.NewHouseRepository(gormDB)
	wishlistRepo := repository.NewWishlistRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	loginLimiter := auth.NewLoginLimiter(
		cacheClient,
		cfg.LoginRateLimit,
		time.Duration(cfg.LoginRateWindow)*time.Minute,
	)

	// Initialize services
	authService := service.NewAuthService(customerRepo, jwtService)
	houseService := service.NewHouseService(houseRepo, imageStore, cacheClient)
	wishlistService := service.NewWishlistService(wishlistRepo, houseRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	houseHandler := handler.NewHouseHandler(houseService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)
	uploadHandler := handler.NewUploadHandler(imageStore)

	// Register routes
	router.Register(
		e,
		cfg,
		loginLimiter,
		authHandler,
		houseHandler,
		wishlistHandler,
		uploadHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
