package handlers

import (
	"errors"
	"net/http"

	"github.com/baajeelectronics/baaje-golang/internal/store"
	"github.com/gin-gonic/gin"
)

type AboutInput struct {
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"image_url"`
}

// GetAbout (Public) — the current about-us content.
func (h *Handlers) GetAbout(c *gin.Context) {
	about, err := h.Store.GetAbout()
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "About content not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, about)
}

// UpdateAbout (Admin Only) — replaces the singleton row, creating it if the
// page has never been written.
func (h *Handlers) UpdateAbout(c *gin.Context) {
	var input AboutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.UpsertAbout(input.Content, input.ImageURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update about content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "About Us updated"})
}
