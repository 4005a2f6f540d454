package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/casedrop/casedrop/internal/event"
	"github.com/casedrop/casedrop/internal/metrics"
)

// RegisterEventHandlers attaches the cross-cutting event subscribers to
// the bus. Handlers subscribe to the bus directly; publishing still goes
// through the resilient publisher.
func RegisterEventHandlers(bus event.Bus) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)
	return nil
}
