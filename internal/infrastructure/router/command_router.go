package router

import (
	"linebook-service/internal/usecase"
	"linebook-service/pkg/logger"
)

// CommandRouter routes inbound text to command handlers. Handlers are
// evaluated in registration order; the first whose CanHandle matches wins.
type CommandRouter struct {
	handlers []usecase.CommandHandler
	logger   logger.Logger
}

// NewCommandRouter creates a new command router
func NewCommandRouter(logger logger.Logger) *CommandRouter {
	return &CommandRouter{
		handlers: make([]usecase.CommandHandler, 0),
		logger:   logger,
	}
}

// Register registers a handler. Order matters: "check reservations" must be
// registered before the "reserve" prefix handler.
func (r *CommandRouter) Register(handler usecase.CommandHandler) {
	r.handlers = append(r.handlers, handler)
	r.logger.Info("Registered command handler", "command", handler.Name())
}

// GetHandler returns the first handler matching the given text, or nil
func (r *CommandRouter) GetHandler(text string) usecase.CommandHandler {
	for _, handler := range r.handlers {
		if handler.CanHandle(text) {
			return handler
		}
	}
	return nil
}
