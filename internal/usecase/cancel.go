package usecase

import (
	"context"
	"strings"

	"linebook-service/internal/domain/entity"
	"linebook-service/internal/domain/repository"
	"linebook-service/pkg/logger"
	"linebook-service/pkg/utils"
	"linebook-service/templates"
)

// CancelHandler cancels a pending reservation matched by exact date
type CancelHandler struct {
	reservationRepo repository.ReservationRepository
	replyRepo       repository.ReplyRepository
	logger          logger.Logger
}

// NewCancelHandler creates a new cancel command handler
func NewCancelHandler(reservationRepo repository.ReservationRepository, replyRepo repository.ReplyRepository, logger logger.Logger) *CancelHandler {
	return &CancelHandler{
		reservationRepo: reservationRepo,
		replyRepo:       replyRepo,
		logger:          logger,
	}
}

func (h *CancelHandler) Name() string {
	return "cancel"
}

func (h *CancelHandler) CanHandle(text string) bool {
	return strings.HasPrefix(text, "cancel")
}

// Handle marks the matching pending reservation cancelled. When several
// pending reservations share the date, the store picks one arbitrarily.
// Records are never deleted.
func (h *CancelHandler) Handle(ctx context.Context, text, userID, replyToken string) error {
	parts := utils.SplitCommand(text)
	if len(parts) < 2 {
		return h.replyRepo.ReplyText(ctx, replyToken, templates.CancelFormatError)
	}

	date, err := utils.ParseDate(parts[1])
	if err != nil {
		h.logger.Debug("Rejecting unparseable cancel date", "token", parts[1], "userId", userID)
		return h.replyRepo.ReplyText(ctx, replyToken, templates.CancelFormatError)
	}

	reservation, err := h.reservationRepo.FindOnePending(ctx, userID, date)
	if err != nil {
		return err
	}
	if reservation == nil {
		return h.replyRepo.ReplyText(ctx, replyToken, templates.CancelNotFound)
	}

	reservation.Status = entity.StatusCancelled
	if err := h.reservationRepo.Save(ctx, reservation); err != nil {
		return err
	}

	h.logger.Info("Reservation cancelled", "userId", userID, "date", parts[1])
	return h.replyRepo.ReplyText(ctx, replyToken, templates.CancelConfirmed)
}
