package runtime

import (
	"log/slog"

	"github.com/aretw0/branchtale/pkg/domain"
)

// ControllerOption defines a functional option for configuring the Controller.
type ControllerOption func(*Controller)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) ControllerOption {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStartNode configures the canonical entry node (default: domain.DefaultStartNodeID).
func WithStartNode(nodeID string) ControllerOption {
	return func(c *Controller) {
		if nodeID != "" {
			c.start = nodeID
		}
	}
}

// WithSessionIDFunc overrides how traversal session ids are generated.
func WithSessionIDFunc(fn func() string) ControllerOption {
	return func(c *Controller) {
		if fn != nil {
			c.newSessionID = fn
		}
	}
}
