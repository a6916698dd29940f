package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/akorfaa/ecommerce-api/internal/store"
)

// GetProducts lists the whole catalog, read live from the store.
func (h *Handler) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	docs, err := h.store.Products.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load products"})
		return
	}

	products := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		products = append(products, store.ReplaceMongoID(doc))
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProductByID scans the catalog for a matching public id.
func (h *Handler) GetProductByID(c *gin.Context) {
	productID := c.Param("product_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	docs, err := h.store.Products.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load products"})
		return
	}

	for _, doc := range docs {
		product := store.ReplaceMongoID(doc)
		if product["id"] == productID {
			c.JSON(http.StatusOK, gin.H{"product": product})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
}
