package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/baajeelectronics/baaje-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBannersOrderAndActiveFilter(t *testing.T) {
	ta := newTestApp(t)
	admin := ta.adminToken(t)

	// Add an inactive banner behind the seed's three active ones.
	w := ta.do(t, http.MethodPost, "/api/banners", admin, gin.H{
		"title":       "Coming Soon",
		"image_url":   "https://example.com/soon.jpg",
		"is_active":   false,
		"order_index": 3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = ta.do(t, http.MethodGet, "/api/banners", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var all []models.Banner
	decode(t, w, &all)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].OrderIndex, all[i].OrderIndex)
	}

	w = ta.do(t, http.MethodGet, "/api/banners?active_only=true", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var active []models.Banner
	decode(t, w, &active)
	require.Len(t, active, 3)
	for _, b := range active {
		assert.True(t, b.IsActive)
	}
}

func TestBannerAdminCRUD(t *testing.T) {
	ta := newTestApp(t)
	admin := ta.adminToken(t)

	w := ta.do(t, http.MethodPost, "/api/banners", admin, gin.H{
		"title":     "Monsoon Offer",
		"image_url": "https://example.com/monsoon.jpg",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		ID int64 `json:"id"`
	}
	decode(t, w, &created)
	path := fmt.Sprintf("/api/banners/%d", created.ID)

	// Omitted is_active defaults to on.
	w = ta.do(t, http.MethodGet, "/api/banners?active_only=true", "", nil)
	var active []models.Banner
	decode(t, w, &active)
	assert.Len(t, active, 4)

	w = ta.do(t, http.MethodPut, path, admin, gin.H{
		"title":     "Monsoon Offer Extended",
		"image_url": "https://example.com/monsoon.jpg",
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = ta.do(t, http.MethodDelete, path, admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ta.do(t, http.MethodPut, path, admin, gin.H{
		"title": "Ghost", "image_url": "https://example.com/x.jpg",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ta.do(t, http.MethodDelete, path, admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing required image_url is a validation failure.
	w = ta.do(t, http.MethodPost, "/api/banners", admin, gin.H{"title": "No Image"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
