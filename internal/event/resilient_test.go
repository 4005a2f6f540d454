package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	callCount := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(callCount) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{}

	rp, err := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     3,
		RetryDelay:     10 * time.Millisecond,
		DeadLetterPath: tmpFile,
	})
	require.NoError(t, err)

	testEvent := Event{Type: OpeningStarted, Payload: map[string]any{"test": "data"}}
	require.NoError(t, rp.Publish(context.Background(), testEvent))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.CallCount(), "Event should be published once")

	content, _ := os.ReadFile(tmpFile)
	assert.Empty(t, content, "No dead-letter entries expected")
}

func TestResilientPublisher_RetrySuccess(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{shouldFail: func(attempt int) bool { return attempt == 1 }}

	rp, err := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     3,
		RetryDelay:     10 * time.Millisecond,
		DeadLetterPath: tmpFile,
	})
	require.NoError(t, err)

	// Caller sees success even though the first attempt failed
	require.NoError(t, rp.Publish(context.Background(), Event{Type: CardSold}))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 2, bus.CallCount(), "Retry should have published the event")

	content, _ := os.ReadFile(tmpFile)
	assert.Empty(t, content, "No dead-letter entries expected")
}

func TestResilientPublisher_DeadLetterAfterExhaustedRetries(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{shouldFail: func(attempt int) bool { return true }}

	rp, err := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     2,
		RetryDelay:     5 * time.Millisecond,
		DeadLetterPath: tmpFile,
	})
	require.NoError(t, err)

	require.NoError(t, rp.Publish(context.Background(), Event{
		Version: SchemaVersion,
		Type:    BalanceAdjusted,
	}))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 3, bus.CallCount(), "initial attempt plus two retries")

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	require.NotEmpty(t, content, "dead-letter entry expected")

	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(content, &entry))
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, BalanceAdjusted, entry.Event.Type)
	assert.Equal(t, 2, entry.Attempts)
	assert.Contains(t, entry.LastError, "mock publish error")
}

func TestResilientPublisher_ShutdownTimeout(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{shouldFail: func(attempt int) bool { return true }}

	rp, err := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     5,
		RetryDelay:     200 * time.Millisecond,
		DeadLetterPath: tmpFile,
	})
	require.NoError(t, err)

	require.NoError(t, rp.Publish(context.Background(), Event{Type: CardKept}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = rp.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
