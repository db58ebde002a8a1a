package usecase

import (
	"context"

	"linebook-service/internal/domain/repository"
	"linebook-service/pkg/logger"
	"linebook-service/templates"
)

// HelpHandler replies with the fixed command summary. When a service
// catalog is configured the known service names are appended.
type HelpHandler struct {
	catalogRepo repository.ServiceCatalogRepository
	replyRepo   repository.ReplyRepository
	logger      logger.Logger
}

// NewHelpHandler creates a new help command handler. catalogRepo may be nil
// when no catalog database is configured.
func NewHelpHandler(catalogRepo repository.ServiceCatalogRepository, replyRepo repository.ReplyRepository, logger logger.Logger) *HelpHandler {
	return &HelpHandler{
		catalogRepo: catalogRepo,
		replyRepo:   replyRepo,
		logger:      logger,
	}
}

func (h *HelpHandler) Name() string {
	return "help"
}

func (h *HelpHandler) CanHandle(text string) bool {
	return text == "help"
}

// Handle sends the help text. A catalog lookup failure degrades to the
// plain help message rather than the error reply.
func (h *HelpHandler) Handle(ctx context.Context, text, userID, replyToken string) error {
	if h.catalogRepo == nil {
		return h.replyRepo.ReplyText(ctx, replyToken, templates.Help)
	}

	services, err := h.catalogRepo.GetAll(ctx)
	if err != nil {
		h.logger.Warn("Service catalog lookup failed", "error", err)
		return h.replyRepo.ReplyText(ctx, replyToken, templates.Help)
	}

	return h.replyRepo.ReplyText(ctx, replyToken, templates.HelpWithServices(services))
}
