package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/casedrop/casedrop/internal/concurrency"
	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/event"
)

const startingBalance = domain.Cents(100000) // 1000.00

func newTestService(repo *MockRepository, led *MockLedger, bus event.Bus) Service {
	return NewService(repo, led, bus, concurrency.NewLockManager(), startingBalance)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account with starting grant", func(t *testing.T) {
		repo := new(MockRepository)
		led := new(MockLedger)
		svc := newTestService(repo, led, nil)

		repo.On("GetUserByEmail", ctx, "alice@example.com").Return(nil, nil)
		repo.On("CreateUser", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
		led.On("AdjustBalance", ctx, mock.AnythingOfType("string"), startingBalance).Return(startingBalance, nil)

		u, err := svc.Register(ctx, "Alice@Example.com ")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, domain.MustParseCents("1000.00"), u.Balance)
		assert.Equal(t, domain.RoleUser, u.Role)
		assert.NotEmpty(t, u.ID)

		led.AssertNumberOfCalls(t, "AdjustBalance", 1)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockLedger), nil)

		repo.On("GetUserByEmail", ctx, "alice@example.com").Return(&domain.User{ID: "user-1"}, nil)

		_, err := svc.Register(ctx, "alice@example.com")
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := newTestService(new(MockRepository), new(MockLedger), nil)

		_, err := svc.Register(ctx, "not-an-email")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns live balance", func(t *testing.T) {
		repo := new(MockRepository)
		led := new(MockLedger)
		svc := newTestService(repo, led, nil)

		repo.On("GetUserByID", ctx, "user-1").Return(&domain.User{
			ID:        "user-1",
			Email:     "alice@example.com",
			Role:      domain.RoleUser,
			CreatedAt: time.Now().UTC(),
		}, nil)
		led.On("GetBalance", ctx, "user-1").Return(domain.MustParseCents("990.01"), nil)

		profile, err := svc.GetProfile(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, domain.MustParseCents("990.01"), profile.Balance)
		assert.Equal(t, profile.Balance, profile.User.Balance)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockLedger), nil)

		repo.On("GetUserByID", ctx, "user-ghost").Return(nil, nil)

		_, err := svc.GetProfile(ctx, "user-ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestSetRole(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes to admin and publishes", func(t *testing.T) {
		repo := new(MockRepository)
		bus := event.NewMemoryBus()

		var published []event.Event
		bus.Subscribe(event.RoleChanged, func(_ context.Context, e event.Event) error {
			published = append(published, e)
			return nil
		})

		svc := newTestService(repo, new(MockLedger), bus)

		repo.On("GetUserByID", ctx, "user-1").Return(&domain.User{ID: "user-1", Role: domain.RoleUser}, nil)
		repo.On("UpdateRole", ctx, "user-1", domain.RoleAdmin).Return(nil)

		require.NoError(t, svc.SetRole(ctx, "user-1", domain.RoleAdmin))

		require.Len(t, published, 1)
		payload := published[0].Payload.(event.RoleChangedPayloadV1)
		assert.Equal(t, domain.RoleAdmin, payload.Role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockLedger), nil)

		err := svc.SetRole(ctx, "user-1", domain.Role("superuser"))
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
		repo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, new(MockLedger), nil)

		repo.On("GetUserByID", ctx, "user-ghost").Return(nil, nil)

		err := svc.SetRole(ctx, "user-ghost", domain.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
