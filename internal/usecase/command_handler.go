package usecase

import "context"

// CommandHandler defines the interface for reservation command handlers
type CommandHandler interface {
	// Name returns the command identifier used for routing logs and metrics
	Name() string

	// CanHandle determines if this handler can process the given message text
	CanHandle(text string) bool

	// Handle runs the command and sends exactly one reply
	Handle(ctx context.Context, text, userID, replyToken string) error
}

// CommandRouter routes message text to the appropriate handler
type CommandRouter interface {
	// Register registers a handler; registration order decides precedence
	Register(handler CommandHandler)

	// GetHandler returns the first matching handler for the text, or nil
	GetHandler(text string) CommandHandler
}
