package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogQueryHooks logs query events through a charmbracelet logger.
// Start events log at debug level, completions at info (or error).
type LogQueryHooks struct {
	Logger *log.Logger
}

// NewLogQueryHooks creates query hooks backed by the given logger.
// A nil logger falls back to log.Default().
func NewLogQueryHooks(l *log.Logger) *LogQueryHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogQueryHooks{Logger: l}
}

func (h *LogQueryHooks) OnQueryStart(ctx context.Context, id, network, node string) {
	h.Logger.Debug("query start", "id", id, "network", network, "node", node)
}

func (h *LogQueryHooks) OnQueryComplete(ctx context.Context, id, network, node string, observed bool, duration time.Duration, err error) {
	if err != nil {
		h.Logger.Error("query failed", "id", id, "network", network, "node", node, "err", err, "duration", duration.Round(time.Microsecond))
		return
	}
	h.Logger.Info("query complete", "id", id, "network", network, "node", node, "observed", observed, "duration", duration.Round(time.Microsecond))
}

// LogStoreHooks logs store operations through a charmbracelet logger.
type LogStoreHooks struct {
	Logger *log.Logger
}

// NewLogStoreHooks creates store hooks backed by the given logger.
// A nil logger falls back to log.Default().
func NewLogStoreHooks(l *log.Logger) *LogStoreHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogStoreHooks{Logger: l}
}

func (h *LogStoreHooks) OnStoreOp(ctx context.Context, op, network string, duration time.Duration, err error) {
	if err != nil {
		h.Logger.Error("store op failed", "op", op, "network", network, "err", err)
		return
	}
	h.Logger.Debug("store op", "op", op, "network", network, "duration", duration.Round(time.Microsecond))
}

// Ensure the log-backed hooks satisfy their interfaces.
var (
	_ QueryHooks = (*LogQueryHooks)(nil)
	_ StoreHooks = (*LogStoreHooks)(nil)
)
