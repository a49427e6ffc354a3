package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/baajeelectronics/baaje-golang/internal/store"
	"github.com/gin-gonic/gin"
)

// GetFavorites returns the caller's favorited products, most recently
// added first.
func (h *Handlers) GetFavorites(c *gin.Context) {
	userID := c.GetInt64("userID")

	products, err := h.Store.ListFavoriteProducts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// AddFavorite marks a product as a favorite. Adding the same product twice
// is a 400 — the storage constraint catches it, not a pre-check.
func (h *Handlers) AddFavorite(c *gin.Context) {
	userID := c.GetInt64("userID")

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	err = h.Store.AddFavorite(userID, productID)
	if errors.Is(err, store.ErrDuplicate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already in favorites"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Added to favorites"})
}

// RemoveFavorite deletes the pair; re-adding afterwards works again.
func (h *Handlers) RemoveFavorite(c *gin.Context) {
	userID := c.GetInt64("userID")

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	err = h.Store.RemoveFavorite(userID, productID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}
