// Package opening coordinates the case-opening transaction: the atomic
// check-debit-draw that creates a pending opening, and the two mutually
// exclusive resolution paths. The draw commits before any animation is built,
// so a refresh mid-spin can never change or repeat an outcome.
package opening

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/casedrop/casedrop/internal/catalog"
	"github.com/casedrop/casedrop/internal/concurrency"
	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/draw"
	"github.com/casedrop/casedrop/internal/event"
	"github.com/casedrop/casedrop/internal/logger"
	"github.com/casedrop/casedrop/internal/metrics"
	"github.com/casedrop/casedrop/internal/presentation"
	"github.com/casedrop/casedrop/internal/repository"
)

// SellResult reports a resolve-sell: the card given up and the credit applied.
type SellResult struct {
	CardID     string       `json:"card_id"`
	Credited   domain.Cents `json:"credited"`
	NewBalance domain.Cents `json:"new_balance"`
}

// KeepResult reports a resolve-keep: the inventory item the card became.
type KeepResult struct {
	Item domain.InventoryItem `json:"item"`
	Card domain.CardOutcome   `json:"card"`
}

// Service defines the opening coordinator.
type Service interface {
	// BeginOpen atomically verifies no pending opening exists, debits the case
	// price, draws the outcome, and persists the pending transaction. The
	// returned reel is cosmetic; the outcome inside it is already committed.
	BeginOpen(ctx context.Context, userID, caseID string) (*domain.OpeningResult, error)
	// ResolveKeep moves the pending opening's card into the inventory.
	// A missing or already-resolved id fails with ErrNoPendingOpening.
	ResolveKeep(ctx context.Context, txID string) (*KeepResult, error)
	// ResolveSell credits the card's sell price instead. Exclusive with keep:
	// exactly one resolution path consumes a given transaction.
	ResolveSell(ctx context.Context, txID string) (*SellResult, error)
	// GetPending returns the user's pending opening with a freshly built reel
	// so an interrupted client can resume, or ErrNoPendingOpening.
	GetPending(ctx context.Context, userID string) (*domain.OpeningResult, error)
}

type service struct {
	repo     repository.Opening
	catalog  catalog.Service
	engine   *draw.Engine
	adapter  presentation.Adapter
	eventBus event.Bus
	locks    *concurrency.LockManager
}

// NewService creates a new opening coordinator.
func NewService(
	repo repository.Opening,
	catalogSvc catalog.Service,
	engine *draw.Engine,
	adapter presentation.Adapter,
	eventBus event.Bus,
	locks *concurrency.LockManager,
) Service {
	return &service{
		repo:     repo,
		catalog:  catalogSvc,
		engine:   engine,
		adapter:  adapter,
		eventBus: eventBus,
		locks:    locks,
	}
}

func (s *service) BeginOpen(ctx context.Context, userID, caseID string) (*domain.OpeningResult, error) {
	log := logger.FromContext(ctx)

	caseDef, err := s.catalog.GetCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetCase, err)
	}

	var txn domain.OpeningTransaction
	err = s.locks.WithLock(userID, func() error {
		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
		}
		defer repository.SafeRollback(ctx, tx)

		pending, err := tx.HasPending(ctx, userID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToCheckState, err)
		}
		if pending {
			return domain.ErrOpeningPending
		}

		if err := tx.DebitIfSufficient(ctx, userID, caseDef.Price); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToDebit, err)
		}

		// Exactly one draw per opening.
		outcome, err := s.engine.Draw(caseDef.Outcomes)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToDraw, err)
		}

		txn = domain.OpeningTransaction{
			ID:            uuid.NewString(),
			UserID:        userID,
			CaseID:        caseID,
			DebitedAmount: caseDef.Price,
			DrawnOutcome:  outcome,
			State:         domain.OpeningStatePending,
			CreatedAt:     time.Now().UTC(),
		}
		if err := tx.InsertPending(ctx, txn); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToPersist, err)
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			metrics.InsufficientFunds.Inc()
		}
		return nil, err
	}

	log.Info(LogMsgOpeningStarted,
		"user_id", userID,
		"case_id", caseID,
		"transaction_id", txn.ID,
		"rarity", txn.DrawnOutcome.Rarity)

	s.publish(ctx, event.OpeningStarted, event.OpeningStartedPayloadV1{
		TransactionID: txn.ID,
		UserID:        userID,
		CaseID:        caseID,
		Debited:       txn.DebitedAmount,
		Timestamp:     time.Now().Unix(),
	})

	// The outcome is committed; tell the presentation layer before any reel
	// exists. A failure here is logged, never propagated: the opening stands.
	if err := s.adapter.OnDrawResolved(ctx, txn); err != nil {
		log.Warn(LogMsgAdapterNotifyErr, "transaction_id", txn.ID, "error", err)
	}

	reel, err := s.engine.BuildReel(caseDef.Outcomes, txn.DrawnOutcome, draw.DefaultReelLength, draw.DefaultRevealIndex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBuildReel, err)
	}

	return &domain.OpeningResult{Transaction: txn, Reel: reel}, nil
}

func (s *service) ResolveKeep(ctx context.Context, txID string) (*KeepResult, error) {
	log := logger.FromContext(ctx)

	pending, err := s.pendingByID(ctx, txID)
	if err != nil {
		return nil, err
	}
	userID := pending.UserID

	var result *KeepResult
	err = s.locks.WithLock(userID, func() error {
		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
		}
		defer repository.SafeRollback(ctx, tx)

		deleted, err := tx.DeletePending(ctx, pending.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToCheckState, err)
		}
		if !deleted {
			return domain.ErrNoPendingOpening
		}

		item := domain.InventoryItem{
			ID:         uuid.NewString(),
			CardID:     pending.DrawnOutcome.ID,
			AcquiredAt: time.Now().UTC(),
		}
		if err := tx.AddInventoryItem(ctx, userID, item); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToAddItem, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
		}

		result = &KeepResult{Item: item, Card: pending.DrawnOutcome}

		s.publish(ctx, event.CardKept, event.CardKeptPayloadV1{
			TransactionID: pending.ID,
			UserID:        userID,
			CardID:        pending.DrawnOutcome.ID,
			Timestamp:     time.Now().Unix(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgOpeningKept, "user_id", userID, "card_id", result.Card.ID)
	return result, nil
}

func (s *service) ResolveSell(ctx context.Context, txID string) (*SellResult, error) {
	log := logger.FromContext(ctx)

	pending, err := s.pendingByID(ctx, txID)
	if err != nil {
		return nil, err
	}
	userID := pending.UserID

	var result *SellResult
	err = s.locks.WithLock(userID, func() error {
		tx, err := s.repo.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
		}
		defer repository.SafeRollback(ctx, tx)

		deleted, err := tx.DeletePending(ctx, pending.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToCheckState, err)
		}
		if !deleted {
			return domain.ErrNoPendingOpening
		}

		newBalance, err := tx.Credit(ctx, userID, pending.DrawnOutcome.Price)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToCredit, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
		}

		result = &SellResult{
			CardID:     pending.DrawnOutcome.ID,
			Credited:   pending.DrawnOutcome.Price,
			NewBalance: newBalance,
		}

		s.publish(ctx, event.CardSold, event.CardSoldPayloadV1{
			UserID:    userID,
			CardID:    pending.DrawnOutcome.ID,
			Credited:  pending.DrawnOutcome.Price,
			Timestamp: time.Now().Unix(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgOpeningSold, "user_id", userID, "card_id", result.CardID, "credited", result.Credited)
	return result, nil
}

func (s *service) GetPending(ctx context.Context, userID string) (*domain.OpeningResult, error) {
	pending, err := s.pendingFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	caseDef, err := s.catalog.GetCase(ctx, pending.CaseID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetCase, err)
	}

	// Rebuilt reels differ in filler but always reveal the committed outcome.
	reel, err := s.engine.BuildReel(caseDef.Outcomes, pending.DrawnOutcome, draw.DefaultReelLength, draw.DefaultRevealIndex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBuildReel, err)
	}

	return &domain.OpeningResult{Transaction: *pending, Reel: reel}, nil
}

func (s *service) pendingFor(ctx context.Context, userID string) (*domain.OpeningTransaction, error) {
	pending, err := s.repo.GetPendingByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPending, err)
	}
	if pending == nil {
		return nil, domain.ErrNoPendingOpening
	}
	return pending, nil
}

func (s *service) pendingByID(ctx context.Context, txID string) (*domain.OpeningTransaction, error) {
	pending, err := s.repo.GetPendingByID(ctx, txID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPending, err)
	}
	if pending == nil {
		return nil, domain.ErrNoPendingOpening
	}
	return pending, nil
}

func (s *service) publish(ctx context.Context, eventType event.Type, payload interface{}) {
	if s.eventBus == nil {
		return
	}
	evt := event.Event{Version: event.SchemaVersion, Type: eventType, Payload: payload}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(ErrContextFailedToPublish, "event_type", eventType, "error", err)
	}
}
