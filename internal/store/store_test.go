package store

import (
	"database/sql"
	"testing"

	"github.com/baajeelectronics/baaje-golang/internal/database"
	"github.com/baajeelectronics/baaje-golang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return New(db)
}

func TestProductSpecsSerializationBoundary(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateProduct(&models.Product{
		Name:  "Extension Cord 5m",
		Price: 650,
		Specs: map[string]string{"Length": "5 meters", "Sockets": "4"},
		Stock: 30,
	})
	require.NoError(t, err)

	got, err := s.GetProduct(id)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Length": "5 meters", "Sockets": "4"}, got.Specs)

	// The column itself holds serialized text, not some driver-native blob.
	var raw string
	require.NoError(t, s.db.QueryRow("SELECT specs FROM products WHERE id = ?", id).Scan(&raw))
	assert.JSONEq(t, `{"Length": "5 meters", "Sockets": "4"}`, raw)

	// Empty specs store as NULL and read back as a nil map.
	id2, err := s.CreateProduct(&models.Product{Name: "Plain Plug", Price: 80})
	require.NoError(t, err)
	got2, err := s.GetProduct(id2)
	require.NoError(t, err)
	assert.Nil(t, got2.Specs)
}

func TestOrderItemsSerializationBoundary(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateOrder(&models.Order{
		CustomerName:     "Test Customer",
		CustomerEmail:    "c@example.com",
		CustomerPhone:    "9800000000",
		CustomerLocation: "Kathmandu",
		Items: []models.OrderItem{
			{ID: 7, Name: "Smart Switch", Price: 1200, Quantity: 2},
		},
		TotalAmount: 2400,
	})
	require.NoError(t, err)

	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, id, orders[0].ID)
	assert.Equal(t, "pending", orders[0].Status)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, models.OrderItem{ID: 7, Name: "Smart Switch", Price: 1200, Quantity: 2}, orders[0].Items[0])
}

func TestDuplicateFavoriteIsTranslated(t *testing.T) {
	s := newTestStore(t)

	userID, err := s.CreateUser("fav@example.com", nil, "Fav")
	require.NoError(t, err)
	productID, err := s.CreateProduct(&models.Product{Name: "Fan", Price: 1000})
	require.NoError(t, err)

	require.NoError(t, s.AddFavorite(userID, productID))
	assert.ErrorIs(t, s.AddFavorite(userID, productID), ErrDuplicate)

	require.NoError(t, s.RemoveFavorite(userID, productID))
	assert.ErrorIs(t, s.RemoveFavorite(userID, productID), ErrNotFound)
	require.NoError(t, s.AddFavorite(userID, productID))
}

func TestDuplicateUserEmail(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUser("taken@example.com", nil, "First")
	require.NoError(t, err)

	_, err = s.CreateUser("taken@example.com", nil, "Second")
	assert.ErrorIs(t, err, ErrDuplicate)
}
