package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/repository"
)

// OpeningRepository implements opening-transaction persistence for
// PostgreSQL. The drawn outcome is stored as a JSONB snapshot so the pending
// row survives later catalog edits unchanged.
type OpeningRepository struct {
	db *pgxpool.Pool
}

// NewOpeningRepository creates a new OpeningRepository
func NewOpeningRepository(db *pgxpool.Pool) *OpeningRepository {
	return &OpeningRepository{db: db}
}

func (r *OpeningRepository) GetPendingByID(ctx context.Context, txID string) (*domain.OpeningTransaction, error) {
	txUUID, err := uuid.Parse(txID)
	if err != nil {
		// A malformed ID cannot name any pending opening.
		return nil, nil
	}

	return scanOpening(r.db.QueryRow(ctx, openingSelectQuery+` WHERE transaction_id = $1 AND state = $2`,
		txUUID, string(domain.OpeningStatePending)))
}

func (r *OpeningRepository) GetPendingByUser(ctx context.Context, userID string) (*domain.OpeningTransaction, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	return scanOpening(r.db.QueryRow(ctx, openingSelectQuery+` WHERE user_id = $1 AND state = $2`,
		userUUID, string(domain.OpeningStatePending)))
}

func (r *OpeningRepository) BeginTx(ctx context.Context) (repository.OpeningTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &openingTx{tx: tx}, nil
}

// openingTx is one atomic unit of opening work: the begin-open sequence or
// one resolution path.
type openingTx struct {
	tx pgx.Tx
}

func (t *openingTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *openingTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

// HasPending locks the user's row, then checks for a pending opening. The
// lock makes a concurrent begin-open for the same user wait behind this one.
func (t *openingTx) HasPending(ctx context.Context, userID string) (bool, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}

	var balance int64
	err = t.tx.QueryRow(ctx, `SELECT balance FROM users WHERE user_id = $1 FOR UPDATE`, userUUID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, domain.ErrUserNotFound
		}
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToLockUserRow, err)
	}

	var pending bool
	err = t.tx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM opening_transactions
			WHERE user_id = $1 AND state = $2
		)
	`, userUUID, string(domain.OpeningStatePending)).Scan(&pending)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckPending, err)
	}
	return pending, nil
}

// DebitIfSufficient debits amount only when the balance covers it, in one
// guarded statement. Zero rows with an existing user means the funds fell
// short.
func (t *openingTx) DebitIfSufficient(ctx context.Context, userID string, amount domain.Cents) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx, `
		UPDATE users
		SET balance = balance - $2
		WHERE user_id = $1 AND balance >= $2
	`, userUUID, int64(amount))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDebitBalance, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if checkErr := t.tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`, userUUID).Scan(&exists); checkErr != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToDebitBalance, checkErr)
		}
		if !exists {
			return domain.ErrUserNotFound
		}
		return domain.ErrInsufficientFunds
	}
	return nil
}

func (t *openingTx) Credit(ctx context.Context, userID string, amount domain.Cents) (domain.Cents, error) {
	return applyDelta(ctx, t.tx, userID, amount)
}

func (t *openingTx) InsertPending(ctx context.Context, opening domain.OpeningTransaction) error {
	userUUID, err := parseUserUUID(opening.UserID)
	if err != nil {
		return err
	}

	outcomeJSON, err := json.Marshal(opening.DrawnOutcome)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalOutcome, err)
	}

	_, err = t.tx.Exec(ctx, `
		INSERT INTO opening_transactions
			(transaction_id, user_id, case_id, debited_amount, drawn_outcome, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, opening.ID, userUUID, opening.CaseID, int64(opening.DebitedAmount),
		outcomeJSON, string(opening.State), opening.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOpeningPending
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPending, err)
	}
	return nil
}

// DeletePending removes the pending row. False means some other resolution
// got there first.
func (t *openingTx) DeletePending(ctx context.Context, txID string) (bool, error) {
	txUUID, err := uuid.Parse(txID)
	if err != nil {
		return false, fmt.Errorf("%s %q: %w", ErrMsgInvalidTransactionID, txID, domain.ErrNoPendingOpening)
	}

	tag, err := t.tx.Exec(ctx, `
		DELETE FROM opening_transactions
		WHERE transaction_id = $1 AND state = $2
	`, txUUID, string(domain.OpeningStatePending))
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToDeletePending, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (t *openingTx) AddInventoryItem(ctx context.Context, userID string, item domain.InventoryItem) error {
	return addInventoryItem(ctx, t.tx, userID, item)
}

const openingSelectQuery = `
	SELECT transaction_id, user_id, case_id, debited_amount, drawn_outcome, state, created_at
	FROM opening_transactions
`

func scanOpening(row pgx.Row) (*domain.OpeningTransaction, error) {
	var txn domain.OpeningTransaction
	var debited int64
	var outcomeJSON []byte
	err := row.Scan(&txn.ID, &txn.UserID, &txn.CaseID, &debited, &outcomeJSON, &txn.State, &txn.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // nothing pending
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPending, err)
	}
	txn.DebitedAmount = domain.Cents(debited)

	if err := json.Unmarshal(outcomeJSON, &txn.DrawnOutcome); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalOutcome, err)
	}
	return &txn, nil
}
