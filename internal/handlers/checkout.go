package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/akorfaa/ecommerce-api/internal/models"
	"github.com/akorfaa/ecommerce-api/internal/store"
)

// Checkout aggregates a user's cart into an order summary. Cart lines whose
// product no longer resolves are reported in "skipped" instead of failing
// the request. The cart is left untouched and nothing is persisted.
func (h *Handler) Checkout(c *gin.Context) {
	userID := c.Param("user_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	user, err := findByID(ctx, h.store.Users, userID)
	if errors.Is(err, store.ErrNoDocument) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load user"})
		return
	}
	user = store.ReplaceMongoID(user)

	rows, err := h.store.Carts.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load cart"})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cart is empty"})
		return
	}

	summary := models.OrderSummary{
		User: models.OrderUser{
			ID:       asString(user["id"]),
			Username: asString(user["username"]),
			Email:    asString(user["email"]),
		},
		OrderItems: make([]models.OrderItem, 0, len(rows)),
		Skipped:    make([]string, 0),
	}

	for _, row := range rows {
		item, ok := row["item"].(bson.M)
		if !ok {
			continue
		}
		productID := asString(item["product_id"])

		product, err := findByID(ctx, h.store.Products, productID)
		if errors.Is(err, store.ErrNoDocument) {
			summary.Skipped = append(summary.Skipped, productID)
			continue
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load product"})
			return
		}
		product = store.ReplaceMongoID(product)

		quantity := asInt(item["quantity"])
		price := asFloat(product["price"])
		subtotal := price * float64(quantity)
		summary.Total += subtotal

		summary.OrderItems = append(summary.OrderItems, models.OrderItem{
			ProductID: asString(product["id"]),
			Name:      asString(product["name"]),
			Price:     price,
			Quantity:  quantity,
			Subtotal:  subtotal,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Order summary",
		"user":        summary.User,
		"order_items": summary.OrderItems,
		"skipped":     summary.Skipped,
		"total":       summary.Total,
	})
}
