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

// The platform display name is not fetched; every reservation carries
// this placeholder.
const placeholderUserName = "User"

// ReserveHandler creates a reservation from "reserve [date] [time] [service]"
type ReserveHandler struct {
	reservationRepo repository.ReservationRepository
	replyRepo       repository.ReplyRepository
	logger          logger.Logger
}

// NewReserveHandler creates a new reserve command handler
func NewReserveHandler(reservationRepo repository.ReservationRepository, replyRepo repository.ReplyRepository, logger logger.Logger) *ReserveHandler {
	return &ReserveHandler{
		reservationRepo: reservationRepo,
		replyRepo:       replyRepo,
		logger:          logger,
	}
}

func (h *ReserveHandler) Name() string {
	return "reserve"
}

// CanHandle matches any message starting with the reserve prefix. The
// router must be asked about "check reservations" first.
func (h *ReserveHandler) CanHandle(text string) bool {
	return strings.HasPrefix(text, "reserve")
}

// Handle parses the command, persists a pending reservation, and echoes the
// raw date, time, and service tokens back to the user. Tokens past the
// service name are dropped.
func (h *ReserveHandler) Handle(ctx context.Context, text, userID, replyToken string) error {
	parts := utils.SplitCommand(text)
	if len(parts) < 4 {
		return h.replyRepo.ReplyText(ctx, replyToken, templates.ReserveFormatError)
	}

	date, err := utils.ParseDate(parts[1])
	if err != nil {
		h.logger.Debug("Rejecting unparseable reservation date", "token", parts[1], "userId", userID)
		return h.replyRepo.ReplyText(ctx, replyToken, templates.ReserveFormatError)
	}

	reservation := &entity.Reservation{
		UserID:   userID,
		UserName: placeholderUserName,
		Date:     date,
		Time:     parts[2],
		Service:  parts[3],
		Status:   entity.StatusPending,
	}

	if err := h.reservationRepo.Create(ctx, reservation); err != nil {
		return err
	}

	h.logger.Info("Reservation created", "userId", userID, "date", parts[1], "service", parts[3])
	return h.replyRepo.ReplyText(ctx, replyToken, templates.ReserveConfirmation(parts[1], parts[2], parts[3]))
}
