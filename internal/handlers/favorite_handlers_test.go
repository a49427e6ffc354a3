package handlers_test

import (
	"net/http"
	"testing"

	"github.com/baajeelectronics/baaje-golang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesRequireAuth(t *testing.T) {
	ta := newTestApp(t)

	w := ta.do(t, http.MethodGet, "/api/favorites", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ta.do(t, http.MethodPost, "/api/favorites/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFavoriteLifecycle(t *testing.T) {
	ta := newTestApp(t)
	token := ta.signup(t, "fav-user@example.com", "secret123", "Fav User")

	// First add succeeds.
	w := ta.do(t, http.MethodPost, "/api/favorites/3", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Duplicate pair hits the uniqueness constraint.
	w = ta.do(t, http.MethodPost, "/api/favorites/3", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Already in favorites")

	// The listing returns the product itself.
	w = ta.do(t, http.MethodGet, "/api/favorites", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	decode(t, w, &products)
	require.Len(t, products, 1)
	assert.Equal(t, int64(3), products[0].ID)
	assert.Equal(t, "LED Bulb 12W", products[0].Name)

	// Remove, then removing again is NotFound.
	w = ta.do(t, http.MethodDelete, "/api/favorites/3", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ta.do(t, http.MethodDelete, "/api/favorites/3", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Re-adding after removal works again.
	w = ta.do(t, http.MethodPost, "/api/favorites/3", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFavoritesArePerUser(t *testing.T) {
	ta := newTestApp(t)
	alice := ta.signup(t, "alice@example.com", "secret123", "Alice")
	bob := ta.signup(t, "bob@example.com", "secret123", "Bob")

	w := ta.do(t, http.MethodPost, "/api/favorites/5", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The same product is independently addable by another user.
	w = ta.do(t, http.MethodPost, "/api/favorites/5", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ta.do(t, http.MethodGet, "/api/favorites", bob, nil)
	var products []models.Product
	decode(t, w, &products)
	assert.Len(t, products, 1)
}
