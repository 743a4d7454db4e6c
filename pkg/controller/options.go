package controller

import (
	"log/slog"

	"github.com/aretw0/notequiz/pkg/domain"
)

// Option defines a functional option for configuring the Controller.
type Option func(*Controller)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability callbacks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// WithStaleResponseGuard tags every request with a token and drops responses
// whose token was superseded by a newer request or by Restart.
// Without it the last response to arrive wins.
func WithStaleResponseGuard() Option {
	return func(c *Controller) {
		c.guardStale = true
	}
}
