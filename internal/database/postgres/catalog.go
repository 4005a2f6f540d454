package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casedrop/casedrop/internal/domain"
)

// CatalogRepository implements the catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetCase(ctx context.Context, caseID string) (*domain.CaseDefinition, error) {
	query := `
		SELECT case_id, case_name, price, COALESCE(image_url, '')
		FROM cases
		WHERE case_id = $1
	`
	var def domain.CaseDefinition
	var price int64
	err := r.db.QueryRow(ctx, query, caseID).Scan(&def.ID, &def.Name, &price, &def.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCase, err)
	}
	def.Price = domain.Cents(price)

	outcomes, err := r.getOutcomes(ctx, caseID)
	if err != nil {
		return nil, err
	}
	def.Outcomes = outcomes
	return &def, nil
}

func (r *CatalogRepository) ListCases(ctx context.Context) ([]domain.CaseDefinition, error) {
	rows, err := r.db.Query(ctx, `
		SELECT case_id, case_name, price, COALESCE(image_url, '')
		FROM cases
		ORDER BY case_id
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCases, err)
	}
	defer rows.Close()

	cases := []domain.CaseDefinition{}
	for rows.Next() {
		var def domain.CaseDefinition
		var price int64
		if err := rows.Scan(&def.ID, &def.Name, &price, &def.ImageURL); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCases, err)
		}
		def.Price = domain.Cents(price)
		cases = append(cases, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCases, err)
	}

	for i := range cases {
		outcomes, err := r.getOutcomes(ctx, cases[i].ID)
		if err != nil {
			return nil, err
		}
		cases[i].Outcomes = outcomes
	}
	return cases, nil
}

// UpsertCase writes the case row and replaces its outcome table in one
// transaction, so readers never see a half-written table.
func (r *CatalogRepository) UpsertCase(ctx context.Context, def domain.CaseDefinition) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO cases (case_id, case_name, price, image_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (case_id) DO UPDATE
		SET case_name = EXCLUDED.case_name,
		    price = EXCLUDED.price,
		    image_url = EXCLUDED.image_url
	`, def.ID, def.Name, int64(def.Price), nullableText(def.ImageURL))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertCase, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM case_outcomes WHERE case_id = $1`, def.ID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToReplaceOutcomes, err)
	}
	for i, o := range def.Outcomes {
		_, err := tx.Exec(ctx, `
			INSERT INTO case_outcomes (case_id, card_id, weight, position)
			VALUES ($1, $2, $3, $4)
		`, def.ID, o.ID, o.Weight, i)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToReplaceOutcomes, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *CatalogRepository) DeleteCase(ctx context.Context, caseID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cases WHERE case_id = $1`, caseID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteCase, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}

func (r *CatalogRepository) GetCard(ctx context.Context, cardID string) (*domain.Card, error) {
	query := `
		SELECT card_id, card_name, rarity, price, COALESCE(collection_id, ''), COALESCE(image_url, '')
		FROM cards
		WHERE card_id = $1
	`
	var c domain.Card
	var price int64
	err := r.db.QueryRow(ctx, query, cardID).
		Scan(&c.ID, &c.Name, &c.Rarity, &price, &c.CollectionID, &c.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCard, err)
	}
	c.Price = domain.Cents(price)
	return &c, nil
}

func (r *CatalogRepository) GetCardsByIDs(ctx context.Context, cardIDs []string) ([]domain.Card, error) {
	if len(cardIDs) == 0 {
		return []domain.Card{}, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT card_id, card_name, rarity, price, COALESCE(collection_id, ''), COALESCE(image_url, '')
		FROM cards
		WHERE card_id = ANY($1)
	`, cardIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCards, err)
	}
	defer rows.Close()

	return scanCards(rows)
}

func (r *CatalogRepository) ListCards(ctx context.Context) ([]domain.Card, error) {
	rows, err := r.db.Query(ctx, `
		SELECT card_id, card_name, rarity, price, COALESCE(collection_id, ''), COALESCE(image_url, '')
		FROM cards
		ORDER BY card_id
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCards, err)
	}
	defer rows.Close()

	return scanCards(rows)
}

func (r *CatalogRepository) UpsertCard(ctx context.Context, card domain.Card) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO cards (card_id, card_name, rarity, price, collection_id, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (card_id) DO UPDATE
		SET card_name = EXCLUDED.card_name,
		    rarity = EXCLUDED.rarity,
		    price = EXCLUDED.price,
		    collection_id = EXCLUDED.collection_id,
		    image_url = EXCLUDED.image_url
	`, card.ID, card.Name, string(card.Rarity), int64(card.Price),
		nullableText(card.CollectionID), nullableText(card.ImageURL))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertCard, err)
	}
	return nil
}

func (r *CatalogRepository) DeleteCard(ctx context.Context, cardID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cards WHERE card_id = $1`, cardID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteCard, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCardNotFound
	}
	return nil
}

func (r *CatalogRepository) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	rows, err := r.db.Query(ctx, `
		SELECT collection_id, collection_name, COALESCE(description, '')
		FROM collections
		ORDER BY collection_id
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCollections, err)
	}
	defer rows.Close()

	collections := []domain.Collection{}
	for rows.Next() {
		var c domain.Collection
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCollections, err)
		}
		collections = append(collections, c)
	}
	return collections, rows.Err()
}

func (r *CatalogRepository) UpsertCollection(ctx context.Context, col domain.Collection) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO collections (collection_id, collection_name, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection_id) DO UPDATE
		SET collection_name = EXCLUDED.collection_name,
		    description = EXCLUDED.description
	`, col.ID, col.Name, nullableText(col.Description))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertCollection, err)
	}
	return nil
}

func (r *CatalogRepository) DeleteCollection(ctx context.Context, collectionID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM collections WHERE collection_id = $1`, collectionID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteCollection, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCollectionNotFound
	}
	return nil
}

// getOutcomes loads a case's outcome table in authored order.
func (r *CatalogRepository) getOutcomes(ctx context.Context, caseID string) ([]domain.CardOutcome, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.card_id, c.card_name, c.rarity, c.price,
		       COALESCE(c.collection_id, ''), COALESCE(c.image_url, ''),
		       o.weight
		FROM case_outcomes o
		JOIN cards c ON c.card_id = o.card_id
		WHERE o.case_id = $1
		ORDER BY o.position
	`, caseID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOutcomes, err)
	}
	defer rows.Close()

	outcomes := []domain.CardOutcome{}
	for rows.Next() {
		var o domain.CardOutcome
		var price int64
		if err := rows.Scan(&o.ID, &o.Name, &o.Rarity, &price, &o.CollectionID, &o.ImageURL, &o.Weight); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOutcomes, err)
		}
		o.Price = domain.Cents(price)
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}

func scanCards(rows pgx.Rows) ([]domain.Card, error) {
	cards := []domain.Card{}
	for rows.Next() {
		var c domain.Card
		var price int64
		if err := rows.Scan(&c.ID, &c.Name, &c.Rarity, &price, &c.CollectionID, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCards, err)
		}
		c.Price = domain.Cents(price)
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCards, err)
	}
	return cards, nil
}
