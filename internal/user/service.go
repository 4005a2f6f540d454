// Package user manages accounts: registration with the starting grant, profile
// reads, and the admin role surface.
package user

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/casedrop/casedrop/internal/concurrency"
	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/event"
	"github.com/casedrop/casedrop/internal/ledger"
	"github.com/casedrop/casedrop/internal/logger"
	"github.com/casedrop/casedrop/internal/repository"
)

// Profile is the account view the storefront renders: the user plus their
// current balance straight from the ledger.
type Profile struct {
	User    domain.User  `json:"user"`
	Balance domain.Cents `json:"balance"`
}

// Service defines the account operations.
type Service interface {
	// Register creates an account and grants the starting balance.
	Register(ctx context.Context, email string) (*domain.User, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	// SetRole changes a user's role. Admin surface only.
	SetRole(ctx context.Context, userID string, role domain.Role) error
	DeleteUser(ctx context.Context, userID string) error
}

type service struct {
	repo            repository.User
	ledger          ledger.Service
	eventBus        event.Bus
	locks           *concurrency.LockManager
	startingBalance domain.Cents
}

// NewService creates a new user service.
func NewService(
	repo repository.User,
	ledgerSvc ledger.Service,
	eventBus event.Bus,
	locks *concurrency.LockManager,
	startingBalance domain.Cents,
) Service {
	return &service{
		repo:            repo,
		ledger:          ledgerSvc,
		eventBus:        eventBus,
		locks:           locks,
		startingBalance: startingBalance,
	}
}

func (s *service) Register(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserAlreadyExists, email)
	}

	u := &domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		Balance:   0,
		Role:      domain.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateUser, err)
	}

	// The grant goes through the ledger like any other credit, so even the
	// signup bonus shows up as a signed delta.
	if s.startingBalance > 0 {
		newBalance, err := s.ledger.AdjustBalance(ctx, u.ID, s.startingBalance)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToGrantStart, err)
		}
		u.Balance = newBalance
	}

	log.Info(LogMsgUserRegistered, "user_id", u.ID, "starting_balance", u.Balance)
	return u, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	u, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Balance = balance

	return &Profile{User: *u, Balance: balance}, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if u == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, email)
	}
	return u, nil
}

func (s *service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListUsers, err)
	}
	return users, nil
}

func (s *service) SetRole(ctx context.Context, userID string, role domain.Role) error {
	log := logger.FromContext(ctx)

	if _, err := domain.ParseRole(string(role)); err != nil {
		return err
	}

	err := s.locks.WithLock(userID, func() error {
		if _, err := s.getUser(ctx, userID); err != nil {
			return err
		}
		if err := s.repo.UpdateRole(ctx, userID, role); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToUpdateRole, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info(LogMsgRoleChanged, "user_id", userID, "role", role)
	s.publish(ctx, event.RoleChanged, event.RoleChangedPayloadV1{
		UserID:    userID,
		Role:      role,
		Timestamp: time.Now().Unix(),
	})
	return nil
}

func (s *service) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	return s.locks.WithLock(userID, func() error {
		if _, err := s.getUser(ctx, userID); err != nil {
			return err
		}
		if err := s.repo.DeleteUser(ctx, userID); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToDeleteUser, err)
		}
		log.Info(LogMsgUserDeleted, "user_id", userID)
		return nil
	})
}

func (s *service) getUser(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if u == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return u, nil
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
