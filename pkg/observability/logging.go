package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/branchtale/pkg/domain"
)

// LogHooks returns lifecycle hooks that write every event to logger at Debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			logger.DebugContext(ctx, "Enter Node", "node_id", e.NodeID, "type", e.NodeType, "depth", e.Depth, "session_id", e.SessionID)
		},
		OnChoiceSelected: func(ctx context.Context, e *domain.ChoiceEvent) {
			logger.DebugContext(ctx, "Choice Selected", "choice_id", e.ChoiceID, "from", e.From, "to", e.To, "session_id", e.SessionID)
		},
		OnMissingNode: func(ctx context.Context, e *domain.NodeEvent) {
			logger.DebugContext(ctx, "Missing Node", "node_id", e.NodeID, "session_id", e.SessionID)
		},
		OnSummary: func(ctx context.Context, e *domain.NodeEvent) {
			logger.DebugContext(ctx, "Summary", "node_id", e.NodeID, "steps", e.Depth, "session_id", e.SessionID)
		},
		OnRestart: func(ctx context.Context, e *domain.EventBase) {
			logger.DebugContext(ctx, "Restart", "session_id", e.SessionID)
		},
	}
}
