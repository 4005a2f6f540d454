package event

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/casedrop/casedrop/internal/logger"
)

// DeadLetterSchemaVersion is the current version of the dead-letter log format.
const DeadLetterSchemaVersion = "1.0"

// ResilientConfig configures the ResilientPublisher.
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// ResilientPublisher wraps a Bus to add retry logic and dead-letter queuing.
// Publish never surfaces a transient failure to the caller; failed events
// retry in the background and land in the dead-letter file when every attempt
// fails.
type ResilientPublisher struct {
	inner      Bus
	config     ResilientConfig
	deadLetter *deadLetterWriter
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a ResilientPublisher writing failed events to
// config.DeadLetterPath.
func NewResilientPublisher(inner Bus, config ResilientConfig) (*ResilientPublisher, error) {
	dlw, err := newDeadLetterWriter(config.DeadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dead-letter file: %w", err)
	}
	return &ResilientPublisher{
		inner:      inner,
		config:     config,
		deadLetter: dlw,
	}, nil
}

// Publish attempts to publish the event. On failure it hands the event to a
// background retry loop and reports success, decoupling the caller from the
// retry mechanism.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn("Failed to publish event, initiating async retry",
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	// Detached from the request context; the request may finish first.
	p.wg.Add(1)
	go p.retryLoop(event, err)

	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown waits for in-flight retries to finish, then closes the
// dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return p.deadLetter.Close()
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()

	ctx := context.Background()
	log := logger.FromContext(ctx)

	for i := 1; i <= p.config.MaxRetries; i++ {
		time.Sleep(p.config.RetryDelay * time.Duration(i)) // linear backoff

		err := p.inner.Publish(ctx, event)
		if err == nil {
			log.Info("Successfully published event after retry",
				"event_type", event.Type,
				"attempt", i)
			return
		}
		lastErr = err

		log.Warn("Retry failed",
			"event_type", event.Type,
			"attempt", i,
			"error", err)
	}

	if err := p.deadLetter.Write(event, p.config.MaxRetries, lastErr); err != nil {
		log.Error("Failed to write to dead letter file", "error", err)
	}
}

// deadLetterWriter appends failed events to a JSONL file.
type deadLetterWriter struct {
	file *os.File
	mu   sync.Mutex
}

// DeadLetterEntry is one line of the dead-letter file: an event that failed
// to publish after all retries.
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

func newDeadLetterWriter(path string) (*deadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &deadLetterWriter{file: f}, nil
}

func (dlw *deadLetterWriter) Write(event Event, attempts int, lastError error) error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()

	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now(),
		Event:         event,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = dlw.file.Write(append(data, '\n'))
	return err
}

func (dlw *deadLetterWriter) Close() error {
	return dlw.file.Close()
}
