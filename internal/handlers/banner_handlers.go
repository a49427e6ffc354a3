package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/baajeelectronics/baaje-golang/internal/models"
	"github.com/baajeelectronics/baaje-golang/internal/store"
	"github.com/gin-gonic/gin"
)

// BannerInput defaults to an active banner at the top of the display order
// when the optional fields are omitted.
type BannerInput struct {
	Title      string  `json:"title" binding:"required"`
	ImageURL   string  `json:"image_url" binding:"required"`
	Link       *string `json:"link"`
	IsActive   *bool   `json:"is_active"`
	OrderIndex int     `json:"order_index"`
}

func (in *BannerInput) toModel() *models.Banner {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return &models.Banner{
		Title:      in.Title,
		ImageURL:   in.ImageURL,
		Link:       in.Link,
		IsActive:   active,
		OrderIndex: in.OrderIndex,
	}
}

// GetBanners (Public) — by display order; ?active_only=true hides inactive ones.
func (h *Handlers) GetBanners(c *gin.Context) {
	activeOnly := false
	if raw := c.Query("active_only"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid active_only flag"})
			return
		}
		activeOnly = parsed
	}

	banners, err := h.Store.ListBanners(activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, banners)
}

// CreateBanner (Admin Only)
func (h *Handlers) CreateBanner(c *gin.Context) {
	var input BannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Store.CreateBanner(input.toModel())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "message": "Banner created"})
}

// UpdateBanner (Admin Only)
func (h *Handlers) UpdateBanner(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid banner ID"})
		return
	}

	var input BannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.Store.UpdateBanner(id, input.toModel())
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner updated"})
}

// DeleteBanner (Admin Only)
func (h *Handlers) DeleteBanner(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid banner ID"})
		return
	}

	err = h.Store.DeleteBanner(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
}
