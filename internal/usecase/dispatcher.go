package usecase

import (
	"context"
	"time"

	"linebook-service/internal/domain/entity"
	"linebook-service/internal/domain/repository"
	"linebook-service/pkg/logger"
	"linebook-service/pkg/metrics"
	"linebook-service/templates"
)

// Dispatcher classifies inbound text messages and runs the matching
// command handler. Every failure inside one event's handling is contained
// here; nothing propagates to sibling events or the transport.
type Dispatcher struct {
	router         CommandRouter
	defaultHandler CommandHandler
	replyRepo      repository.ReplyRepository
	metrics        *metrics.Metrics
	logger         logger.Logger
}

// NewDispatcher creates a new message dispatcher
func NewDispatcher(
	router CommandRouter,
	defaultHandler CommandHandler,
	replyRepo repository.ReplyRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		router:         router,
		defaultHandler: defaultHandler,
		replyRepo:      replyRepo,
		metrics:        metrics,
		logger:         logger,
	}
}

// DispatchEvent handles one inbound event. Non-message and non-text events
// are ignored without a reply.
func (d *Dispatcher) DispatchEvent(ctx context.Context, event *entity.MessageEvent) {
	if !event.IsTextMessage() {
		return
	}

	d.metrics.EventsReceived.Inc()
	start := time.Now()
	defer func() {
		d.metrics.DispatchTime.Observe(time.Since(start).Seconds())
	}()

	handler := d.router.GetHandler(event.Message.Text)
	if handler == nil {
		handler = d.defaultHandler
	}

	d.metrics.CommandsTotal.WithLabelValues(handler.Name()).Inc()
	d.logger.Debug("Dispatching command", "command", handler.Name(), "userId", event.Source.UserID)

	if err := handler.Handle(ctx, event.Message.Text, event.Source.UserID, event.ReplyToken); err != nil {
		d.metrics.ErrorsCount.WithLabelValues(handler.Name()).Inc()
		d.logger.Error("Error handling message", "command", handler.Name(), "userId", event.Source.UserID, "error", err)

		if err := d.replyRepo.ReplyText(ctx, event.ReplyToken, templates.GenericError); err != nil {
			d.logger.Error("Failed to send error reply", "error", err)
		}
	}
}
