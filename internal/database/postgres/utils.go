package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// parseUserUUID parses a user ID string with a consistent error message.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", ErrMsgInvalidUserID, domain.ErrUserNotFound)
	}
	return u, nil
}

// parseItemUUIDs parses inventory item IDs. A malformed ID cannot match any
// owned item, so it maps to the same error an unowned item would.
func parseItemUUIDs(itemIDs []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(itemIDs))
	for i, id := range itemIDs {
		u, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", ErrMsgInvalidItemID, id, domain.ErrItemNotOwned)
		}
		out[i] = u
	}
	return out, nil
}

// isUniqueViolation reports whether err is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// nullableText maps empty strings to NULL for optional columns.
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullableTime maps the zero time to NULL so column defaults apply.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
