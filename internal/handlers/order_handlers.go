package handlers

import (
	"net/http"

	"github.com/baajeelectronics/baaje-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// OrderInput is the public checkout payload. The line items and total are
// recorded exactly as submitted — this endpoint trusts the client's math,
// which is a documented trust boundary of the system.
type OrderInput struct {
	CustomerName     string             `json:"customer_name" binding:"required"`
	CustomerEmail    string             `json:"customer_email" binding:"required,email"`
	CustomerPhone    string             `json:"customer_phone" binding:"required"`
	CustomerLocation string             `json:"customer_location" binding:"required"`
	Items            []models.OrderItem `json:"items" binding:"required"`
	TotalAmount      float64            `json:"total_amount"`
}

// CreateOrder (Public) — guest checkout, no token needed.
func (h *Handlers) CreateOrder(c *gin.Context) {
	var input OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Store.CreateOrder(&models.Order{
		CustomerName:     input.CustomerName,
		CustomerEmail:    input.CustomerEmail,
		CustomerPhone:    input.CustomerPhone,
		CustomerLocation: input.CustomerLocation,
		Items:            input.Items,
		TotalAmount:      input.TotalAmount,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "message": "Order created successfully"})
}

// GetOrders (Admin Only) — every order, newest first.
func (h *Handlers) GetOrders(c *gin.Context) {
	orders, err := h.Store.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetUserOrders returns the caller's own orders, matched by the email on
// their account.
func (h *Handlers) GetUserOrders(c *gin.Context) {
	userID := c.GetInt64("userID")

	orders, err := h.Store.ListOrdersByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}
