package database

import (
	"database/sql"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// Open initializes the connection pool for the single database file.
// WAL lets readers proceed alongside the one writer sqlite allows, and the
// busy timeout keeps concurrent writers queued instead of failing fast.
// Foreign keys stay OFF (sqlite's default): category references on products
// are weak by design, and deleting a category must not be blocked or cascade.
func Open(path string) (*sql.DB, error) {
	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Printf("Error connecting to database at %s: %v", path, err)
		return nil, err
	}

	return db, nil
}

// Migrate creates every table if it does not exist yet. Safe to run on
// every startup.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT,
			name TEXT NOT NULL,
			profile_picture TEXT,
			auth_provider TEXT DEFAULT 'email',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			image_url TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			price REAL NOT NULL,
			category_id INTEGER,
			image_url TEXT,
			specs TEXT,
			stock INTEGER DEFAULT 0,
			is_featured BOOLEAN DEFAULT 0,
			created_at TEXT NOT NULL,
			FOREIGN KEY (category_id) REFERENCES categories (id)
		)`,
		`CREATE TABLE IF NOT EXISTS banners (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			image_url TEXT NOT NULL,
			link TEXT,
			is_active BOOLEAN DEFAULT 1,
			order_index INTEGER DEFAULT 0,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			customer_name TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			customer_location TEXT NOT NULL,
			items TEXT NOT NULL,
			total_amount REAL NOT NULL,
			status TEXT DEFAULT 'pending',
			created_at TEXT NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users (id)
		)`,
		`CREATE TABLE IF NOT EXISTS favorites (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			product_id INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users (id),
			FOREIGN KEY (product_id) REFERENCES products (id),
			UNIQUE(user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS about_us (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			content TEXT NOT NULL,
			image_url TEXT,
			updated_at TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
