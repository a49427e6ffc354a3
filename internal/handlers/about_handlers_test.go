package handlers_test

import (
	"net/http"
	"testing"

	"github.com/baajeelectronics/baaje-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAboutSeeded(t *testing.T) {
	ta := newTestApp(t)

	w := ta.do(t, http.MethodGet, "/api/about", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var about models.AboutUs
	decode(t, w, &about)
	assert.Contains(t, about.Content, "Baaje Electronics")
}

func TestUpdateAboutReplacesSingleton(t *testing.T) {
	ta := newTestApp(t)
	admin := ta.adminToken(t)

	w := ta.do(t, http.MethodGet, "/api/about", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var before models.AboutUs
	decode(t, w, &before)

	w = ta.do(t, http.MethodPut, "/api/about", admin, gin.H{
		"content": "We moved to a bigger showroom in 2024.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = ta.do(t, http.MethodGet, "/api/about", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var after models.AboutUs
	decode(t, w, &after)

	// Same row, new content: the singleton is replaced in place, not appended.
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, "We moved to a bigger showroom in 2024.", after.Content)
	assert.Nil(t, after.ImageURL)
}

func TestUpdateAboutIsAdminOnly(t *testing.T) {
	ta := newTestApp(t)

	w := ta.do(t, http.MethodPut, "/api/about", "", gin.H{"content": "hacked"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	userToken := ta.signup(t, "about-user@example.com", "secret123", "User")
	w = ta.do(t, http.MethodPut, "/api/about", userToken, gin.H{"content": "hacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
