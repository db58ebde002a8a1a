package usecase

import (
	"context"

	"linebook-service/internal/domain/repository"
	"linebook-service/pkg/logger"
	"linebook-service/templates"
)

// CheckHandler lists the requesting user's pending reservations
type CheckHandler struct {
	reservationRepo repository.ReservationRepository
	replyRepo       repository.ReplyRepository
	logger          logger.Logger
}

// NewCheckHandler creates a new check command handler
func NewCheckHandler(reservationRepo repository.ReservationRepository, replyRepo repository.ReplyRepository, logger logger.Logger) *CheckHandler {
	return &CheckHandler{
		reservationRepo: reservationRepo,
		replyRepo:       replyRepo,
		logger:          logger,
	}
}

func (h *CheckHandler) Name() string {
	return "check"
}

// CanHandle matches the exact fixed phrase only
func (h *CheckHandler) CanHandle(text string) bool {
	return text == "check reservations"
}

// Handle replies with the user's pending reservations in store order, or a
// fixed message when there are none. Cancelled and confirmed records are
// never listed.
func (h *CheckHandler) Handle(ctx context.Context, text, userID, replyToken string) error {
	reservations, err := h.reservationRepo.FindPendingByUser(ctx, userID)
	if err != nil {
		return err
	}

	if len(reservations) == 0 {
		return h.replyRepo.ReplyText(ctx, replyToken, templates.NoReservations)
	}

	return h.replyRepo.ReplyText(ctx, replyToken, templates.ReservationList(reservations))
}
