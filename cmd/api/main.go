package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-catalog-api/internal/config"
	"go-catalog-api/internal/handler"
	"go-catalog-api/internal/router"
	"go-catalog-api/internal/service"
	"go-catalog-api/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if cfg.APIKey == "" {
		log.Println("Warning: API_KEY not set, all API-key checks will fail")
	}
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set, login and bearer checks will fail")
	}

	// 2. Load read-only user records
	users, err := store.LoadUsers(cfg.UsersFile, cfg.UsersFileLegacy)
	if err != nil {
		log.Fatal("Failed to load users:", err)
	}
	log.Printf("Loaded %d users", len(users))

	// 3. Dependency Injection (Wiring Layers)
	productStore := store.NewFileStore(cfg.ProductsFile, cfg.ProductsFileLegacy)

	productService := service.NewProductService(productStore)
	authService := service.NewAuthService(users, cfg.JWTSecret)

	productHandler := handler.NewProductHandler(productService)
	authHandler := handler.NewAuthHandler(authService)

	// 4. Setup Fiber
	app := router.New(cfg, productHandler, authHandler)

	// 5. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
