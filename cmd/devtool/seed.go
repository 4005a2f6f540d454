package main

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed database with data (test, staging)"
}

// testUsers are the accounts inserted by `devtool seed test`. Balances are in
// cents; the admin account doubles as the API smoke-test identity.
var testUsers = []struct {
	email   string
	balance int64
	role    string
}{
	{"admin@casedrop.test", 10000000, "admin"},
	{"alice@casedrop.test", 100000, "user"},
	{"bob@casedrop.test", 999, "user"},   // below any case price
	{"carol@casedrop.test", 0, "user"},   // broke account for error paths
}

func (c *SeedCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: test, staging")
	}
	subcmd := args[0]

	dbURL := databaseURL()
	PrintInfo("Connecting to database: %s", redactPassword(dbURL))

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	switch subcmd {
	case "test":
		return c.seedTest(db)
	case "staging":
		// Staging gets only the admin account; the catalog sync on app
		// startup provides everything else.
		return c.seedUsers(db, testUsers[:1])
	default:
		return fmt.Errorf("unknown seed target: %s", subcmd)
	}
}

func (c *SeedCommand) seedTest(db *sql.DB) error {
	PrintHeader("Seeding test data")
	if err := c.seedUsers(db, testUsers); err != nil {
		return err
	}
	PrintSuccess("Seeded %d test users", len(testUsers))
	return nil
}

func (c *SeedCommand) seedUsers(db *sql.DB, users []struct {
	email   string
	balance int64
	role    string
}) error {
	for _, u := range users {
		_, err := db.Exec(
			`INSERT INTO users (user_id, email, balance, role)
			 VALUES (gen_random_uuid(), $1, $2, $3)
			 ON CONFLICT (email) DO NOTHING`,
			u.email, u.balance, u.role,
		)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.email, err)
		}
	}
	return nil
}
