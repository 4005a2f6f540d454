package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casedrop/casedrop/internal/domain"
)

var (
	testPool          *pgxpool.Pool
	migrationsApplied bool
	migrationsMux     sync.Mutex
)

// requireTestPool skips the test when no database is available and applies
// migrations exactly once.
func requireTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	ensureMigrations(t)
	return testPool
}

func ensureMigrations(t *testing.T) {
	migrationsMux.Lock()
	defer migrationsMux.Unlock()

	if migrationsApplied {
		return
	}

	ctx := context.Background()
	if err := applyMigrations(ctx, t, testPool, "../../../migrations"); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	migrationsApplied = true
}

// applyMigrations runs all migration files in order, stripping goose markers
// so they apply as plain SQL.
func applyMigrations(ctx context.Context, t *testing.T, pool *pgxpool.Pool, migrationsDir string) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var migrationFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			migrationFiles = append(migrationFiles, filepath.Join(migrationsDir, entry.Name()))
		}
	}
	sort.Strings(migrationFiles)

	for _, file := range migrationFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		contentStr := strings.Replace(string(content), "-- +goose Up", "", 1)
		if downIdx := strings.Index(contentStr, "-- +goose Down"); downIdx != -1 {
			contentStr = contentStr[:downIdx]
		}
		contentStr = strings.TrimSpace(contentStr)

		t.Logf("Executing: %s", filepath.Base(file))
		if _, err := pool.Exec(ctx, contentStr); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

// createTestUser inserts a user with the given balance and returns its ID.
func createTestUser(t *testing.T, pool *pgxpool.Pool, email string, balance domain.Cents) string {
	t.Helper()

	var userID string
	err := pool.QueryRow(context.Background(), `
		INSERT INTO users (email, balance, role) VALUES ($1, $2, 'user')
		RETURNING user_id
	`, email, int64(balance)).Scan(&userID)
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM users WHERE user_id = $1`, userID)
	})
	return userID
}

// seedTestCatalog writes a collection, three cards and a case the tests draw
// against. Idempotent; safe to call from several tests.
func seedTestCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	repo := NewCatalogRepository(pool)
	if err := repo.UpsertCollection(ctx, domain.Collection{ID: "col-chess", Name: "Chess Pieces"}); err != nil {
		t.Fatalf("failed to seed collection: %v", err)
	}

	cards := []domain.Card{
		{ID: "card-common", Name: "Rusty Pawn", Rarity: domain.RarityCommon, Price: domain.MustParseCents("0.50"), CollectionID: "col-chess"},
		{ID: "card-gold", Name: "Gold Rook", Rarity: domain.RarityGold, Price: domain.MustParseCents("25.00"), CollectionID: "col-chess"},
		{ID: "card-legendary", Name: "Legendary King", Rarity: domain.RarityLegendary, Price: domain.MustParseCents("990.01"), CollectionID: "col-chess"},
	}
	for _, c := range cards {
		if err := repo.UpsertCard(ctx, c); err != nil {
			t.Fatalf("failed to seed card %s: %v", c.ID, err)
		}
	}

	def := domain.CaseDefinition{
		ID:    "case-starter",
		Name:  "Starter Case",
		Price: domain.MustParseCents("9.99"),
		Outcomes: []domain.CardOutcome{
			cards[0].Outcome(90),
			cards[1].Outcome(9.7),
			cards[2].Outcome(0.3),
		},
	}
	if err := repo.UpsertCase(ctx, def); err != nil {
		t.Fatalf("failed to seed case: %v", err)
	}
}
