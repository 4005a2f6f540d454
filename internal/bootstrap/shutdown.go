package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/casedrop/casedrop/internal/event"
	"github.com/casedrop/casedrop/internal/server"
)

// ShutdownComponents holds everything that needs an orderly stop.
type ShutdownComponents struct {
	Server             *server.Server
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops the server first so no new work arrives, then
// drains the resilient publisher so in-flight event retries finish or
// dead-letter before the process exits.
func GracefulShutdown(components *ShutdownComponents, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		} else {
			slog.Info(LogMsgServerStopped)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}
}
