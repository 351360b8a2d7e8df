package migrations

import "database/sql"

func initSeatSelectionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE seat_selections (
			id UUID PRIMARY KEY,
			seat_id VARCHAR(16) NOT NULL REFERENCES seats(id) ON DELETE CASCADE,
			passenger_name VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)

	return err
}
