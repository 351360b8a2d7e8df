package migrations

import "database/sql"

func initPaymentTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE payments (
			id UUID PRIMARY KEY,
			transaction_id VARCHAR(32) NOT NULL,
			seat_id VARCHAR(16) NOT NULL DEFAULT '',
			passenger_name VARCHAR(255) NOT NULL DEFAULT '',
			amount NUMERIC(10, 2) NOT NULL DEFAULT 0,
			status VARCHAR(16) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)

	return err
}
