package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/casedrop/casedrop/internal/config"
	"github.com/casedrop/casedrop/internal/logger"
)

// SetupLogger configures slog to write to both stdout and a timestamped
// session file under cfg.LogDir. Older session files beyond the retention
// count are removed. The caller owns closing the returned file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logPath := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	multiWriter := io.MultiWriter(os.Stdout, logFile)

	logCfg := logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "casedrop",
		Environment: cfg.Environment,
	}
	opts := &slog.HandlerOptions{Level: logCfg.LogLevel()}
	var handler slog.Handler
	if strings.ToLower(cfg.LogFormat) == "json" {
		handler = slog.NewJSONHandler(multiWriter, opts)
	} else {
		handler = slog.NewTextHandler(multiWriter, opts)
	}
	slog.SetDefault(slog.New(handler).With("service", logCfg.ServiceName, "environment", logCfg.Environment))

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel().String(), "format", cfg.LogFormat, "file", logPath)
	return logFile, nil
}

// cleanupLogs removes the oldest session logs, keeping the newest
// LogFileRetentionCount files. Cleanup failures are ignored; logging
// must not block startup.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), "session_") && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}

	if len(logFiles) <= LogFileRetentionCount {
		return
	}

	// Timestamped names sort chronologically.
	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-LogFileRetentionCount] {
		_ = os.Remove(filepath.Join(logDir, name))
	}
}
