package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/akorfaa/ecommerce-api/internal/handlers"
	"github.com/akorfaa/ecommerce-api/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/", h.Home)

	// Catalog
	r.GET("/products", h.GetProducts)
	r.GET("/products/:product_id", h.GetProductByID)

	// Accounts
	r.POST("/register", middleware.RegisterRateLimit(), h.Register)
	r.POST("/login", middleware.LoginRateLimit(), h.Login)

	// Cart & checkout
	r.POST("/cart", h.AddToCart)
	r.GET("/cart/:user_id", h.GetCart)
	r.POST("/checkout/:user_id", h.Checkout)
}
