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

// AddToCart validates the referenced user and product live against the
// store, then inserts a new cart document. Adds are never merged.
func (h *Handler) AddToCart(c *gin.Context) {
	var cart models.UserCart
	if err := c.ShouldBindJSON(&cart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if cart.Item.Quantity == 0 {
		cart.Item.Quantity = 1
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	if _, err := findByID(ctx, h.store.Users, cart.UserID); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load user"})
		return
	}

	if _, err := findByID(ctx, h.store.Products, cart.Item.ProductID); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load product"})
		return
	}

	id, err := h.store.Carts.InsertOne(ctx, cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to add item to cart"})
		return
	}

	saved, err := h.store.Carts.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load cart item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"cart":    store.ReplaceMongoID(saved),
	})
}

// GetCart lists the cart documents of a user. An unknown user simply has
// an empty cart.
func (h *Handler) GetCart(c *gin.Context) {
	userID := c.Param("user_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	docs, err := h.store.Carts.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load cart"})
		return
	}

	items := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		items = append(items, store.ReplaceMongoID(doc))
	}

	c.JSON(http.StatusOK, gin.H{"cart": items})
}
