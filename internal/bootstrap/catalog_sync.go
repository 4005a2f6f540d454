package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/casedrop/casedrop/internal/catalog"
	"github.com/casedrop/casedrop/internal/repository"
)

// SyncCatalog loads the JSON catalog seed at path, validates it, and
// upserts it into the catalog repository. A missing seed file is not an
// error; the database copy is left as-is so admin edits survive restarts.
func SyncCatalog(ctx context.Context, path string, repo repository.Catalog) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Info(LogMsgCatalogSeedMissing, "path", path)
		return nil
	}

	slog.Info(LogMsgSyncingCatalog, "path", path)

	loader := catalog.NewLoader()
	file, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	if err := loader.Validate(file); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidCatalog, err)
	}

	result, err := loader.SyncToDatabase(ctx, file, repo)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	slog.Info(LogMsgCatalogSynced,
		"collections", result.Collections,
		"cards", result.Cards,
		"cases", result.Cases)
	return nil
}
