package repository

import (
	"context"
	"strings"

	"github.com/casedrop/casedrop/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error. Rolling back an
// already-committed transaction is expected on the happy path and not logged.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		if strings.Contains(err.Error(), "closed") {
			return
		}
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
