package migrations

import "database/sql"

func initRouteTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE routes (
			id SERIAL PRIMARY KEY,
			operator VARCHAR(255) NOT NULL,
			type VARCHAR(255) NOT NULL,
			seating VARCHAR(255) NOT NULL,
			source VARCHAR(255) NOT NULL,
			destination VARCHAR(255) NOT NULL,
			departure VARCHAR(32) NOT NULL,
			arrival VARCHAR(32) NOT NULL,
			duration VARCHAR(32) NOT NULL,
			date DATE NOT NULL,
			price NUMERIC(10, 2) NOT NULL,
			discount_price NUMERIC(10, 2) NOT NULL,
			rating NUMERIC(2, 1) NOT NULL DEFAULT 0,
			reviews INTEGER NOT NULL DEFAULT 0,
			available_seats INTEGER NOT NULL DEFAULT 0,
			amenities TEXT[] NOT NULL DEFAULT '{}',
			image TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX routes_source_destination_idx ON routes (LOWER(source), LOWER(destination));
	`)

	return err
}
