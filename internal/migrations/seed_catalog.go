package migrations

import "database/sql"

func seedRoutes(tx *sql.Tx) error {
	_, err := tx.Exec(`
		INSERT INTO routes
			(id, operator, type, seating, source, destination, departure, arrival, duration, date,
			 price, discount_price, rating, reviews, available_seats, amenities, image)
		VALUES
			(1, 'TGSRTC Express', 'AC Sleeper', '2+1 Seating', 'Hyderabad', 'Bangalore',
			 '08:30 AM', '02:15 PM', '5h 45m', '2025-10-19', 45.00, 40.00, 4.5, 234, 18,
			 '{"WiFi","Charging Port","Water Bottle"}',
			 'https://images.unsplash.com/photo-1606135673631-1ff4dda17834'),
			(2, 'RedBus Premium', 'AC Semi-Sleeper', '2+2 Seating', 'Hyderabad', 'Bangalore',
			 '10:15 AM', '04:30 PM', '6h 15m', '2025-10-19', 38.00, 38.00, 4.2, 156, 5,
			 '{"WiFi","Blanket","Reading Light"}',
			 'https://images.unsplash.com/photo-1608090192135-cac58333d3c2');

		SELECT setval('routes_id_seq', (SELECT MAX(id) FROM routes));
	`)

	return err
}

func seedSeats(tx *sql.Tx) error {
	_, err := tx.Exec(`
		INSERT INTO seats (id, deck, type, price, available, position)
		VALUES
			('U1A', 'upper', 'sleeper', 45, TRUE, 1),
			('U2A', 'upper', 'sleeper', 45, FALSE, 2),
			('U3A', 'upper', 'sleeper', 45, TRUE, 3),
			('U1B', 'upper', 'sleeper', 45, TRUE, 4),
			('U2B', 'upper', 'sleeper', 45, TRUE, 5),
			('U3B', 'upper', 'sleeper', 45, FALSE, 6),
			('L1A', 'lower', 'semi-sleeper', 38, TRUE, 7),
			('L2A', 'lower', 'semi-sleeper', 38, TRUE, 8),
			('L3A', 'lower', 'semi-sleeper', 38, FALSE, 9),
			('L1B', 'lower', 'semi-sleeper', 38, TRUE, 10),
			('L2B', 'lower', 'semi-sleeper', 38, FALSE, 11),
			('L3B', 'lower', 'semi-sleeper', 38, TRUE, 12);
	`)

	return err
}
