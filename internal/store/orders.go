package store

import (
	"database/sql"
	"encoding/json"

	"github.com/baajeelectronics/baaje-golang/internal/models"
)

const orderColumns = "id, user_id, customer_name, customer_email, customer_phone, customer_location, items, total_amount, status, created_at"

func scanOrder(row interface{ Scan(...any) error }) (models.Order, error) {
	var o models.Order
	var items string
	err := row.Scan(&o.ID, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.CustomerLocation, &items, &o.TotalAmount, &o.Status, &o.CreatedAt)
	if err != nil {
		return o, err
	}
	if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
		return o, err
	}
	return o, nil
}

// CreateOrder records a checkout as submitted. Line items and the total are
// the client's numbers; nothing recomputes price * quantity here. Status
// starts at "pending" and nothing in this system ever transitions it.
func (s *Store) CreateOrder(o *models.Order) (int64, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO orders (user_id, customer_name, customer_email, customer_phone, customer_location, items, total_amount, status, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, 'pending', ?)`,
			o.UserID, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.CustomerLocation,
			string(items), o.TotalAmount, now(),
		)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

func (s *Store) ListOrders() ([]models.Order, error) {
	return s.queryOrders("SELECT " + orderColumns + " FROM orders ORDER BY created_at DESC, id DESC")
}

// ListOrdersByUser returns the orders whose customer email matches the given
// account's email, newest first. The match is by email, not user_id: guest
// checkouts with the same address count too.
func (s *Store) ListOrdersByUser(userID int64) ([]models.Order, error) {
	return s.queryOrders(
		`SELECT `+orderColumns+` FROM orders
		 WHERE customer_email = (SELECT email FROM users WHERE id = ?)
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
}

func (s *Store) queryOrders(query string, args ...any) ([]models.Order, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
