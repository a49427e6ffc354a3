package database

import (
	"database/sql"
	"time"
)

type seedCategory struct {
	name     string
	imageURL string
}

type seedProduct struct {
	name        string
	description string
	price       float64
	categoryID  int64
	imageURL    string
	specs       string
	stock       int
	featured    bool
}

type seedBanner struct {
	title      string
	imageURL   string
	orderIndex int
}

var seedCategories = []seedCategory{
	{"Fans", "https://images.unsplash.com/photo-1607400201889-565b1ee75f8e?w=400"},
	{"Lights", "https://images.unsplash.com/photo-1513506003901-1e6a229e2d15?w=400"},
	{"Heaters", "https://images.unsplash.com/photo-1545259742-25a6d78aeffc?w=400"},
	{"Wires & Cables", "https://images.unsplash.com/photo-1473186578172-c141e6798cf4?w=400"},
	{"Switches", "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400"},
	{"Home Appliances", "https://images.unsplash.com/photo-1556911220-bff31c812dba?w=400"},
}

var seedProducts = []seedProduct{
	{"Ceiling Fan Deluxe", "High-speed ceiling fan with remote control", 4500.0, 1, "https://images.unsplash.com/photo-1607400201515-c2c41c07e14c?w=600", `{"Speed": "3 levels", "Size": "48 inch", "Warranty": "2 years"}`, 25, true},
	{"Table Fan Pro", "Portable table fan with oscillation", 2200.0, 1, "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=600", `{"Speed": "3 levels", "Size": "16 inch", "Warranty": "1 year"}`, 40, true},
	{"LED Bulb 12W", "Energy efficient LED bulb", 350.0, 2, "https://images.unsplash.com/photo-1524484485831-a92ffc0de03f?w=600", `{"Power": "12W", "Color": "Cool White", "Warranty": "1 year"}`, 100, false},
	{"Smart LED Strip", "RGB LED strip with app control", 1800.0, 2, "https://images.unsplash.com/photo-1513506003901-1e6a229e2d15?w=600", `{"Length": "5 meters", "Control": "App & Remote", "Warranty": "1 year"}`, 30, true},
	{"Room Heater 2000W", "Powerful room heater for winter", 6500.0, 3, "https://images.unsplash.com/photo-1545259742-25a6d78aeffc?w=600", `{"Power": "2000W", "Features": "Auto shutoff", "Warranty": "2 years"}`, 15, true},
	{"Oil Heater", "Silent oil-filled heater", 8900.0, 3, "https://images.unsplash.com/photo-1603893185127-4cc0e48d2b0a?w=600", `{"Power": "2500W", "Features": "Silent operation", "Warranty": "2 years"}`, 10, false},
	{"Copper Wire 2.5mm", "Premium quality copper wire", 850.0, 4, "https://images.unsplash.com/photo-1473186578172-c141e6798cf4?w=600", `{"Size": "2.5mm", "Length": "90 meters", "Material": "Pure Copper"}`, 50, false},
	{"HDMI Cable 2m", "High-speed HDMI cable", 450.0, 4, "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=600", `{"Length": "2 meters", "Version": "HDMI 2.0", "Warranty": "6 months"}`, 80, false},
	{"Modular Switch White", "2-way modular switch", 280.0, 5, "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=600", `{"Type": "2-way", "Color": "White", "Warranty": "1 year"}`, 150, false},
	{"Smart Switch", "WiFi enabled smart switch", 1200.0, 5, "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=600", `{"Type": "Smart WiFi", "Control": "App & Voice", "Warranty": "1 year"}`, 35, true},
	{"Microwave Oven", "20L microwave oven", 9500.0, 6, "https://images.unsplash.com/photo-1585659722983-3a675dabf23d?w=600", `{"Capacity": "20L", "Power": "800W", "Warranty": "1 year"}`, 12, true},
	{"Electric Kettle", "1.8L electric kettle", 1800.0, 6, "https://images.unsplash.com/photo-1556911220-bff31c812dba?w=600", `{"Capacity": "1.8L", "Material": "Stainless Steel", "Warranty": "1 year"}`, 45, false},
}

var seedBanners = []seedBanner{
	{"Winter Sale - Up to 50% Off!", "https://images.unsplash.com/photo-1607082348824-0a96f2a4b9da?w=1200", 0},
	{"New Arrivals - Smart Home Devices", "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=1200", 1},
	{"Premium Fans - Beat the Heat", "https://images.unsplash.com/photo-1607400201515-c2c41c07e14c?w=1200", 2},
}

const seedAboutContent = `Baaje Electronics has been serving Buddhanagar, Kathmandu since 2010. We are your trusted partner for all electronics needs, offering quality products at competitive prices. Our commitment to customer satisfaction and after-sales service has made us a household name in the community.`

const seedAboutImage = "https://images.unsplash.com/photo-1556911220-bff31c812dba?w=800"

// Seed inserts the sample catalog, but only when there are no categories yet.
// It runs in one transaction so a crash mid-seed leaves the database empty
// rather than half-filled.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	for _, cat := range seedCategories {
		if _, err := tx.Exec(
			"INSERT INTO categories (name, image_url, created_at) VALUES (?, ?, ?)",
			cat.name, cat.imageURL, now,
		); err != nil {
			tx.Rollback()
			return err
		}
	}

	for _, p := range seedProducts {
		if _, err := tx.Exec(
			`INSERT INTO products (name, description, price, category_id, image_url, specs, stock, is_featured, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.name, p.description, p.price, p.categoryID, p.imageURL, p.specs, p.stock, p.featured, now,
		); err != nil {
			tx.Rollback()
			return err
		}
	}

	for _, b := range seedBanners {
		if _, err := tx.Exec(
			"INSERT INTO banners (title, image_url, link, is_active, order_index, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			b.title, b.imageURL, nil, true, b.orderIndex, now,
		); err != nil {
			tx.Rollback()
			return err
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO about_us (content, image_url, updated_at) VALUES (?, ?, ?)",
		seedAboutContent, seedAboutImage, now,
	); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
