// Package ledger owns balances and inventories. Every balance change in the
// system funnels through ApplyDelta or the transactional credit paths here and
// in the opening coordinator; nothing else writes balances.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/casedrop/casedrop/internal/concurrency"
	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/event"
	"github.com/casedrop/casedrop/internal/logger"
	"github.com/casedrop/casedrop/internal/repository"
)

// InventoryQuery narrows and orders an inventory read.
type InventoryQuery struct {
	SortBy       string
	Rarity       domain.RarityTier
	CollectionID string
}

// BulkSellResult reports an aggregate sell: how many items went away and the
// single credit applied for all of them.
type BulkSellResult struct {
	ItemsSold  int          `json:"items_sold"`
	Credited   domain.Cents `json:"credited"`
	NewBalance domain.Cents `json:"new_balance"`
}

// BulkDeleteResult reports a bulk discard. No credit is ever applied.
type BulkDeleteResult struct {
	ItemsDeleted int `json:"items_deleted"`
}

// Service defines the balance and inventory operations.
type Service interface {
	GetBalance(ctx context.Context, userID string) (domain.Cents, error)
	// AdjustBalance applies a signed delta and returns the new total. Used by
	// the admin surface; a negative delta that would drive the balance below
	// zero is refused with ErrInsufficientFunds.
	AdjustBalance(ctx context.Context, userID string, delta domain.Cents) (domain.Cents, error)

	GetInventory(ctx context.Context, userID string, query InventoryQuery) ([]domain.OwnedCard, error)
	// SellItems credits the sum of the selected cards' prices as one delta,
	// then removes all selected items, atomically.
	SellItems(ctx context.Context, userID string, itemIDs []string) (*BulkSellResult, error)
	// DeleteItems removes the selected items without any credit.
	DeleteItems(ctx context.Context, userID string, itemIDs []string) (*BulkDeleteResult, error)
}

type service struct {
	repo     repository.Ledger
	eventBus event.Bus
	locks    *concurrency.LockManager
}

// NewService creates a new ledger service.
func NewService(repo repository.Ledger, eventBus event.Bus, locks *concurrency.LockManager) Service {
	return &service{
		repo:     repo,
		eventBus: eventBus,
		locks:    locks,
	}
}

func (s *service) GetBalance(ctx context.Context, userID string) (domain.Cents, error) {
	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToGetBalance, err)
	}
	return balance, nil
}

func (s *service) AdjustBalance(ctx context.Context, userID string, delta domain.Cents) (domain.Cents, error) {
	log := logger.FromContext(ctx)

	var newBalance domain.Cents
	err := s.locks.WithLock(userID, func() error {
		var err error
		newBalance, err = s.repo.ApplyDelta(ctx, userID, delta)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToApplyDelta, err)
	}

	log.Info(LogMsgBalanceAdjusted, "user_id", userID, "delta", delta, "new_balance", newBalance)
	s.publish(ctx, event.BalanceAdjusted, event.BalanceAdjustedPayloadV1{
		UserID:     userID,
		Delta:      delta,
		NewBalance: newBalance,
		Timestamp:  time.Now().Unix(),
	})
	return newBalance, nil
}

func (s *service) GetInventory(ctx context.Context, userID string, query InventoryQuery) ([]domain.OwnedCard, error) {
	cards, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetInventory, err)
	}

	cards = domain.FilterOwnedCards(cards, query.Rarity, query.CollectionID)
	domain.SortOwnedCards(cards, query.SortBy)
	return cards, nil
}

func (s *service) SellItems(ctx context.Context, userID string, itemIDs []string) (*BulkSellResult, error) {
	if len(itemIDs) == 0 {
		return nil, domain.ErrEmptySelection
	}

	log := logger.FromContext(ctx)

	var result *BulkSellResult
	err := s.locks.WithLock(userID, func() error {
		owned, err := s.repo.GetItems(ctx, userID, itemIDs)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToPriceItems, err)
		}
		if len(owned) != len(itemIDs) {
			return fmt.Errorf("%w: %d of %d items found", domain.ErrItemNotOwned, len(owned), len(itemIDs))
		}

		var total domain.Cents
		cardIDs := make([]string, 0, len(owned))
		for _, oc := range owned {
			total += oc.Card.Price
			cardIDs = append(cardIDs, oc.CardID)
		}

		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
		}
		defer repository.SafeRollback(ctx, tx)

		newBalance, err := tx.ApplyDelta(ctx, userID, total)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToCreditSale, err)
		}
		removed, err := tx.RemoveItems(ctx, userID, itemIDs)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToRemoveItems, err)
		}
		if removed != len(itemIDs) {
			// Someone raced the ownership check; abort rather than credit
			// for items that are already gone.
			return fmt.Errorf("%w: %d of %d items removed", domain.ErrItemNotOwned, removed, len(itemIDs))
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
		}

		result = &BulkSellResult{
			ItemsSold:  removed,
			Credited:   total,
			NewBalance: newBalance,
		}

		s.publish(ctx, event.CardsSoldBulk, event.CardsSoldBulkPayloadV1{
			UserID:    userID,
			CardIDs:   cardIDs,
			Credited:  total,
			Timestamp: time.Now().Unix(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgItemsSold, "user_id", userID, "items", result.ItemsSold, "credited", result.Credited)
	return result, nil
}

func (s *service) DeleteItems(ctx context.Context, userID string, itemIDs []string) (*BulkDeleteResult, error) {
	if len(itemIDs) == 0 {
		return nil, domain.ErrEmptySelection
	}

	log := logger.FromContext(ctx)

	var result *BulkDeleteResult
	err := s.locks.WithLock(userID, func() error {
		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
		}
		defer repository.SafeRollback(ctx, tx)

		removed, err := tx.RemoveItems(ctx, userID, itemIDs)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToRemoveItems, err)
		}
		if removed != len(itemIDs) {
			return fmt.Errorf("%w: %d of %d items removed", domain.ErrItemNotOwned, removed, len(itemIDs))
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
		}

		result = &BulkDeleteResult{ItemsDeleted: removed}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgItemsDeleted, "user_id", userID, "items", result.ItemsDeleted)
	return result, nil
}

func (s *service) publish(ctx context.Context, eventType event.Type, payload interface{}) {
	if s.eventBus == nil {
		return
	}
	evt := event.Event{Version: event.SchemaVersion, Type: eventType, Payload: payload}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(ErrContextFailedToPublishEvent, "event_type", eventType, "error", err)
	}
}
