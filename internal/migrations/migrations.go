package migrations

import "github.com/lopezator/migrator"

// Migrations contains all database migrations in the order they must be applied.
var Migrations = []any{
	&migrator.MigrationNoTx{
		Name: "Init routes table",
		Func: initRouteTable,
	},
	&migrator.MigrationNoTx{
		Name: "Init seats table",
		Func: initSeatTable,
	},
	&migrator.MigrationNoTx{
		Name: "Init seat selections table",
		Func: initSeatSelectionTable,
	},
	&migrator.MigrationNoTx{
		Name: "Init payments table",
		Func: initPaymentTable,
	},
	&migrator.Migration{
		Name: "Seed routes",
		Func: seedRoutes,
	},
	&migrator.Migration{
		Name: "Seed seats",
		Func: seedSeats,
	},
}
