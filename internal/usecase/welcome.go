package usecase

import (
	"context"

	"linebook-service/internal/domain/repository"
	"linebook-service/templates"
)

// WelcomeHandler is the fallback for unrecognized messages
type WelcomeHandler struct {
	replyRepo repository.ReplyRepository
}

// NewWelcomeHandler creates a new welcome handler
func NewWelcomeHandler(replyRepo repository.ReplyRepository) *WelcomeHandler {
	return &WelcomeHandler{
		replyRepo: replyRepo,
	}
}

func (h *WelcomeHandler) Name() string {
	return "welcome"
}

// CanHandle always matches; the dispatcher uses this handler when the
// router finds nothing.
func (h *WelcomeHandler) CanHandle(text string) bool {
	return true
}

func (h *WelcomeHandler) Handle(ctx context.Context, text, userID, replyToken string) error {
	return h.replyRepo.ReplyText(ctx, replyToken, templates.Welcome)
}
