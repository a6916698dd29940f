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

// Register creates a user unless the username or email is already taken.
// The live pre-check gives the caller a clean 400; the unique indexes on
// users make the insert itself the authoritative guard, so a concurrent
// duplicate surfaces as ErrDuplicateKey and maps to the same response.
func (h *Handler) Register(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	_, err := h.store.Users.FindOne(ctx, bson.M{
		"$or": []bson.M{
			{"username": input.Username},
			{"email": input.Email},
		},
	})
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Username or email already registered"})
		return
	}
	if !errors.Is(err, store.ErrNoDocument) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to check existing users"})
		return
	}

	id, err := h.store.Users.InsertOne(ctx, input)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Username or email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to register user"})
		return
	}

	saved, err := h.store.Users.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load registered user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user":    store.ReplaceMongoID(saved),
	})
}

type loginInput struct {
	UserName     string `json:"user_name"`
	UserPassword string `json:"user_password"`
}

// Login matches username and password exactly against the store. Credentials
// come from query parameters, with a JSON body accepted as fallback.
func (h *Handler) Login(c *gin.Context) {
	input := loginInput{
		UserName:     c.Query("user_name"),
		UserPassword: c.Query("user_password"),
	}
	if input.UserName == "" && input.UserPassword == "" {
		_ = c.ShouldBindJSON(&input)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	user, err := h.store.Users.FindOne(ctx, bson.M{
		"username": input.UserName,
		"password": input.UserPassword,
	})
	if errors.Is(err, store.ErrNoDocument) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    store.ReplaceMongoID(user),
	})
}
