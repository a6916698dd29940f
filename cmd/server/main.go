package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/akorfaa/ecommerce-api/internal/config"
	"github.com/akorfaa/ecommerce-api/internal/database"
	"github.com/akorfaa/ecommerce-api/internal/handlers"
	"github.com/akorfaa/ecommerce-api/internal/middleware"
	"github.com/akorfaa/ecommerce-api/internal/routes"
)

func main() {
	cfg := config.Load()

	database.ConnectDatabases(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx); err != nil {
		log.Fatalf("❌ Failed to create user indexes: %v", err)
	}
	log.Println("✅ Unique indexes on users.username / users.email ensured")

	r := gin.Default()
	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.New(database.Collections())
	routes.RegisterRoutes(r, h)

	log.Println("🚀 E-commerce API listening on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
