package config

import "database/sql"

// EnsureSchema creates the tables the service needs when they do not exist yet.
// Mirrors the SQL bootstrap the deployment scripts run in production.
func EnsureSchema(db *sql.DB) error {
	ddls := []string{
		`CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	client_type VARCHAR(50) NOT NULL,
	client_name VARCHAR(255) NOT NULL,
	client_email VARCHAR(255) NOT NULL,
	client_phone VARCHAR(50) NOT NULL,
	pickup_address TEXT NOT NULL,
	destination VARCHAR(50) NOT NULL,
	pickup_datetime VARCHAR(50) NOT NULL,
	bag_count VARCHAR(10) NOT NULL,
	special_instructions TEXT,
	estimated_price DECIMAL(10,2) NOT NULL,
	status VARCHAR(30) NOT NULL DEFAULT 'en_attente',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NULL,
	KEY idx_bookings_status (status),
	KEY idx_bookings_created (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS admin_users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	full_name VARCHAR(255) NOT NULL,
	role VARCHAR(50) NOT NULL DEFAULT 'admin',
	is_active TINYINT(1) NOT NULL DEFAULT 1,
	last_login TIMESTAMP NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS pricing_rules (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	client_type VARCHAR(50) NOT NULL,
	destination VARCHAR(50) NOT NULL,
	base_price DECIMAL(10,2) NOT NULL,
	supplement DECIMAL(10,2) NOT NULL,
	is_active TINYINT(1) NOT NULL DEFAULT 1,
	UNIQUE KEY uniq_rule (client_type, destination)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for _, ddl := range ddls {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
