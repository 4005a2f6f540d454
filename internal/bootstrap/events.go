package bootstrap

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/casedrop/casedrop/internal/config"
	"github.com/casedrop/casedrop/internal/event"
)

// InitializeEventSystem creates the in-memory event bus wrapped in a
// resilient publisher that retries failed deliveries and dead-letters
// events it cannot deliver.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	publisher, err := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries:     EventDefaultMaxRetries,
		RetryDelay:     EventDefaultRetryDelay,
		DeadLetterPath: filepath.Join(cfg.LogDir, EventDeadLetterFileName),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay.String())
	return bus, publisher, nil
}
