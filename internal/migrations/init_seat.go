package migrations

import "database/sql"

func initSeatTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE seats (
			id VARCHAR(16) PRIMARY KEY,
			deck VARCHAR(16) NOT NULL,
			type VARCHAR(32) NOT NULL,
			price NUMERIC(10, 2) NOT NULL,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			position INTEGER NOT NULL
		);
	`)

	return err
}
