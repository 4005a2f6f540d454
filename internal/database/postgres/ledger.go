package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/repository"
)

// LedgerRepository implements balance and inventory persistence for
// PostgreSQL. Balance writes are single guarded UPDATE statements; the row
// lock serializes concurrent deltas.
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) ApplyDelta(ctx context.Context, userID string, delta domain.Cents) (domain.Cents, error) {
	return applyDelta(ctx, r.db, userID, delta)
}

func (r *LedgerRepository) GetBalance(ctx context.Context, userID string) (domain.Cents, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.db.QueryRow(ctx, `SELECT balance FROM users WHERE user_id = $1`, userUUID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	return domain.Cents(balance), nil
}

func (r *LedgerRepository) AddItem(ctx context.Context, userID string, item domain.InventoryItem) error {
	return addInventoryItem(ctx, r.db, userID, item)
}

func (r *LedgerRepository) RemoveItem(ctx context.Context, userID, itemID string) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgInvalidItemID, itemID, domain.ErrItemNotOwned)
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM inventory_items WHERE user_id = $1 AND item_id = $2`, userUUID, itemUUID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRemoveItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotOwned
	}
	return nil
}

func (r *LedgerRepository) GetInventory(ctx context.Context, userID string) ([]domain.OwnedCard, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, inventoryJoinQuery+` WHERE i.user_id = $1`, userUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	defer rows.Close()

	return scanOwnedCards(rows)
}

func (r *LedgerRepository) GetItems(ctx context.Context, userID string, itemIDs []string) ([]domain.OwnedCard, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	itemUUIDs, err := parseItemUUIDs(itemIDs)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		inventoryJoinQuery+` WHERE i.user_id = $1 AND i.item_id = ANY($2)`, userUUID, itemUUIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}
	defer rows.Close()

	return scanOwnedCards(rows)
}

func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &ledgerTx{tx: tx}, nil
}

// ledgerTx is the transactional slice of the ledger: one aggregate credit and
// the matching removals commit together.
type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *ledgerTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

func (t *ledgerTx) ApplyDelta(ctx context.Context, userID string, delta domain.Cents) (domain.Cents, error) {
	return applyDelta(ctx, t.tx, userID, delta)
}

func (t *ledgerTx) RemoveItems(ctx context.Context, userID string, itemIDs []string) (int, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}
	itemUUIDs, err := parseItemUUIDs(itemIDs)
	if err != nil {
		return 0, err
	}

	tag, err := t.tx.Exec(ctx,
		`DELETE FROM inventory_items WHERE user_id = $1 AND item_id = ANY($2)`, userUUID, itemUUIDs)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToRemoveItems, err)
	}
	return int(tag.RowsAffected()), nil
}

// rowQuerier is the subset of pgx shared by pools and transactions, so the
// balance and inventory writes work identically inside and outside a tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const inventoryJoinQuery = `
	SELECT i.item_id, i.card_id, i.acquired_at,
	       c.card_id, c.card_name, c.rarity, c.price,
	       COALESCE(c.collection_id, ''), COALESCE(c.image_url, '')
	FROM inventory_items i
	JOIN cards c ON c.card_id = i.card_id
`

// applyDelta adds a signed amount to the balance, refusing to overdraw. The
// sole balance mutation; every credit and debit in the system routes here or
// through the opening tx equivalents.
func applyDelta(ctx context.Context, q rowQuerier, userID string, delta domain.Cents) (domain.Cents, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}

	var balance int64
	err = q.QueryRow(ctx, `
		UPDATE users
		SET balance = balance + $2
		WHERE user_id = $1 AND balance + $2 >= 0
		RETURNING balance
	`, userUUID, int64(delta)).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the user is missing or the delta would overdraw.
			var exists bool
			if checkErr := q.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`, userUUID).Scan(&exists); checkErr != nil {
				return 0, fmt.Errorf("%s: %w", ErrMsgFailedToApplyDelta, checkErr)
			}
			if !exists {
				return 0, domain.ErrUserNotFound
			}
			return 0, domain.ErrInsufficientFunds
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToApplyDelta, err)
	}
	return domain.Cents(balance), nil
}

func addInventoryItem(ctx context.Context, q rowQuerier, userID string, item domain.InventoryItem) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	itemID := item.ID
	if itemID == "" {
		itemID = uuid.NewString()
	}

	err = q.QueryRow(ctx, `
		INSERT INTO inventory_items (item_id, user_id, card_id, acquired_at)
		VALUES ($1, $2, $3, COALESCE($4, NOW()))
		RETURNING item_id
	`, itemID, userUUID, item.CardID, nullableTime(item.AcquiredAt)).Scan(&itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddItem, err)
	}
	return nil
}

func scanOwnedCards(rows pgx.Rows) ([]domain.OwnedCard, error) {
	cards := []domain.OwnedCard{}
	for rows.Next() {
		var oc domain.OwnedCard
		var price int64
		err := rows.Scan(&oc.ID, &oc.CardID, &oc.AcquiredAt,
			&oc.Card.ID, &oc.Card.Name, &oc.Card.Rarity, &price,
			&oc.Card.CollectionID, &oc.Card.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanInventory, err)
		}
		oc.Card.Price = domain.Cents(price)
		cards = append(cards, oc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	return cards, nil
}
